package usecase

import (
	"strings"

	notedomain "notes-backend/internal/note/domain"
	notedto "notes-backend/internal/note/dto"
	"notes-backend/internal/note/repository"
	"notes-backend/pkg/apperr"
)

// noteUsecase implements NoteUsecase
type noteUsecase struct {
	noteRepo repository.NoteRepository
}

func NewNoteUsecase(noteRepo repository.NoteRepository) NoteUsecase {
	return &noteUsecase{noteRepo: noteRepo}
}

func (u *noteUsecase) Create(userID string, req *notedto.CreateNoteRequest) (*notedomain.Note, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, apperr.Validation("Title & Description are required")
	}

	note := &notedomain.Note{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     userID,
	}
	if err := u.noteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (u *noteUsecase) GetByID(userID string, isAdmin bool, id string) (*notedomain.Note, error) {
	return u.loadAuthorized(userID, isAdmin, id, "view")
}

// List scopes the query itself: admins see every note, everyone else
// only their own. Totals and pagination therefore never leak other
// users' data.
func (u *noteUsecase) List(userID string, isAdmin bool, page, limit int, sortBy, order string) (*notedto.NoteListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	q := repository.ListQuery{
		Page:   page,
		Limit:  limit,
		SortBy: sortBy,
		Order:  order,
	}
	if !isAdmin {
		owner := userID
		q.OwnerID = &owner
	}

	notes, total, err := u.noteRepo.Find(q)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []*notedomain.Note{}
	}

	return &notedto.NoteListResponse{
		Total: total,
		Page:  page,
		Limit: limit,
		Notes: notes,
	}, nil
}

func (u *noteUsecase) Update(userID string, isAdmin bool, id string, req *notedto.UpdateNoteRequest) (*notedomain.Note, error) {
	note, err := u.loadAuthorized(userID, isAdmin, id, "edit")
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Description != nil {
		note.Description = *req.Description
	}

	if err := u.noteRepo.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (u *noteUsecase) Delete(userID string, isAdmin bool, id string) error {
	if _, err := u.loadAuthorized(userID, isAdmin, id, "delete"); err != nil {
		return err
	}
	return u.noteRepo.Delete(id)
}

func (u *noteUsecase) loadAuthorized(userID string, isAdmin bool, id, action string) (*notedomain.Note, error) {
	if id == "" {
		return nil, apperr.Validation("Note ID is required")
	}

	note, err := u.noteRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperr.NotFound("Note not found")
	}

	if !isAdmin && note.OwnerID != userID {
		return nil, apperr.Forbidden("Forbidden: You cannot " + action + " this note")
	}
	return note, nil
}
