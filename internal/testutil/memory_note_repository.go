package testutil

import (
	"sort"
	"sync"
	"time"

	notedomain "notes-backend/internal/note/domain"
	noterepo "notes-backend/internal/note/repository"

	"github.com/google/uuid"
)

// MemoryNoteRepository is an in-memory NoteRepository.
type MemoryNoteRepository struct {
	mu    sync.Mutex
	notes map[string]*notedomain.Note
}

var _ noterepo.NoteRepository = (*MemoryNoteRepository)(nil)

func NewMemoryNoteRepository() *MemoryNoteRepository {
	return &MemoryNoteRepository{notes: make(map[string]*notedomain.Note)}
}

func (r *MemoryNoteRepository) Create(note *notedomain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt

	clone := *note
	r.notes[note.ID] = &clone
	return nil
}

func (r *MemoryNoteRepository) FindByID(id string) (*notedomain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.notes[id]
	if !ok {
		return nil, nil
	}
	clone := *note
	return &clone, nil
}

func (r *MemoryNoteRepository) Find(q noterepo.ListQuery) ([]*notedomain.Note, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*notedomain.Note
	for _, note := range r.notes {
		if q.OwnerID != nil && note.OwnerID != *q.OwnerID {
			continue
		}
		clone := *note
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool {
		var less bool
		switch q.SortBy {
		case "title":
			less = matched[i].Title < matched[j].Title
		case "updatedAt", "updated_at":
			less = matched[i].UpdatedAt.Before(matched[j].UpdatedAt)
		default:
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if q.Order == "desc" {
			return !less
		}
		return less
	})

	total := int64(len(matched))
	start := (q.Page - 1) * q.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

func (r *MemoryNoteRepository) Update(note *notedomain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note.UpdatedAt = time.Now()
	clone := *note
	r.notes[note.ID] = &clone
	return nil
}

func (r *MemoryNoteRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.notes, id)
	return nil
}
