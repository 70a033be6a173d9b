package repository

import (
	"errors"
	"fmt"
	"time"

	notedomain "notes-backend/internal/note/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Columns the list endpoint may sort on. Anything else falls back to
// created_at rather than reaching the database.
var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"created_at": "created_at",
	"updatedAt":  "updated_at",
	"updated_at": "updated_at",
	"title":      "title",
}

// gormNoteRepository implements NoteRepository using GORM
type gormNoteRepository struct {
	db *gorm.DB
}

func NewGormNoteRepository(db *gorm.DB) NoteRepository {
	return &gormNoteRepository{db: db}
}

func (r *gormNoteRepository) Create(note *notedomain.Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = time.Now()
	return r.db.Create(note).Error
}

func (r *gormNoteRepository) FindByID(id string) (*notedomain.Note, error) {
	var note notedomain.Note
	err := r.db.Where("id = ?", id).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *gormNoteRepository) Find(q ListQuery) ([]*notedomain.Note, int64, error) {
	var notes []*notedomain.Note
	var total int64

	query := r.db.Model(&notedomain.Note{})
	if q.OwnerID != nil {
		query = query.Where("owner_id = ?", *q.OwnerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if q.Order == "desc" {
		direction = "DESC"
	}

	offset := (q.Page - 1) * q.Limit
	err := query.Order(fmt.Sprintf("%s %s", column, direction)).
		Offset(offset).Limit(q.Limit).
		Preload("Owner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username, email, fullname")
		}).
		Find(&notes).Error

	return notes, total, err
}

func (r *gormNoteRepository) Update(note *notedomain.Note) error {
	note.UpdatedAt = time.Now()
	return r.db.Save(note).Error
}

func (r *gormNoteRepository) Delete(id string) error {
	return r.db.Delete(&notedomain.Note{}, "id = ?", id).Error
}
