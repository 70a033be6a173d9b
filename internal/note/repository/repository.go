package repository

import notedomain "notes-backend/internal/note/domain"

// ListQuery describes the paginated list. A nil OwnerID lists every
// note (admin); otherwise the filter is applied in the query itself so
// pagination and totals never reflect other users' notes.
type ListQuery struct {
	OwnerID *string
	Page    int
	Limit   int
	SortBy  string
	Order   string // "asc" or "desc"
}

// NoteRepository abstracts note persistence. Lookups return (nil, nil)
// when nothing matches.
type NoteRepository interface {
	Create(note *notedomain.Note) error
	FindByID(id string) (*notedomain.Note, error)
	Find(q ListQuery) ([]*notedomain.Note, int64, error)
	Update(note *notedomain.Note) error
	Delete(id string) error
}
