package delivery

import (
	"net/http"
	"strconv"

	authdelivery "notes-backend/internal/auth/delivery"
	notedto "notes-backend/internal/note/dto"
	"notes-backend/internal/note/usecase"
	"notes-backend/pkg/apperr"
	"notes-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles note-related HTTP requests
type NoteHandler struct {
	noteUsecase usecase.NoteUsecase
	resolver    *authdelivery.IdentityResolver
}

func NewNoteHandler(noteUsecase usecase.NoteUsecase, resolver *authdelivery.IdentityResolver) *NoteHandler {
	return &NoteHandler{
		noteUsecase: noteUsecase,
		resolver:    resolver,
	}
}

// List returns the caller's notes, or every note for admins.
// GET /api/notes?page=1&limit=10&sortBy=createdAt&order=asc
func (h *NoteHandler) List(c *gin.Context) {
	identity, err := h.resolver.Resolve(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	sortBy := c.DefaultQuery("sortBy", "createdAt")
	order := c.DefaultQuery("order", "asc")

	result, err := h.noteUsecase.List(identity.UserID, identity.IsAdmin, page, limit, sortBy, order)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result, "Notes fetched successfully")
}

// Create makes a new note owned by the caller.
// POST /api/notes
func (h *NoteHandler) Create(c *gin.Context) {
	identity, err := h.resolver.Resolve(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req notedto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Title & Description are required"))
		return
	}

	note, err := h.noteUsecase.Create(identity.UserID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, note, "Note created successfully")
}

// GetByID returns one note, subject to the ownership/admin rule.
// GET /api/notes/:id
func (h *NoteHandler) GetByID(c *gin.Context) {
	identity, err := h.resolver.Resolve(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	note, err := h.noteUsecase.GetByID(identity.UserID, identity.IsAdmin, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, note, "Note fetched successfully")
}

// Update modifies title/description of a note.
// PUT /api/notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
	identity, err := h.resolver.Resolve(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req notedto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request body"))
		return
	}

	note, err := h.noteUsecase.Update(identity.UserID, identity.IsAdmin, c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, note, "Note updated successfully")
}

// Delete removes a note permanently.
// DELETE /api/notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	identity, err := h.resolver.Resolve(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.noteUsecase.Delete(identity.UserID, identity.IsAdmin, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, nil, "Note deleted successfully")
}
