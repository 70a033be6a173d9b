package dto

import notedomain "notes-backend/internal/note/domain"

type CreateNoteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateNoteRequest uses pointers so absent fields are left untouched.
type UpdateNoteRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// NoteListResponse is the data payload of the paginated list endpoint.
type NoteListResponse struct {
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Notes []*notedomain.Note `json:"notes"`
}
