package usecase

import (
	notedomain "notes-backend/internal/note/domain"
	notedto "notes-backend/internal/note/dto"
)

// NoteUsecase applies the ownership/admin rule to every note operation:
// allowed iff the caller is an admin or owns the note.
type NoteUsecase interface {
	Create(userID string, req *notedto.CreateNoteRequest) (*notedomain.Note, error)
	GetByID(userID string, isAdmin bool, id string) (*notedomain.Note, error)
	List(userID string, isAdmin bool, page, limit int, sortBy, order string) (*notedto.NoteListResponse, error)
	Update(userID string, isAdmin bool, id string, req *notedto.UpdateNoteRequest) (*notedomain.Note, error)
	Delete(userID string, isAdmin bool, id string) error
}
