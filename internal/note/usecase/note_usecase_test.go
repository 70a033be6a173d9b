package usecase_test

import (
	"fmt"
	"testing"

	notedto "notes-backend/internal/note/dto"
	"notes-backend/internal/note/usecase"
	"notes-backend/internal/testutil"
	"notes-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aliceID = "alice-id"
	bobID   = "bob-id"
	adminID = "admin-id"
)

func newNoteUsecase() usecase.NoteUsecase {
	return usecase.NewNoteUsecase(testutil.NewMemoryNoteRepository())
}

func createNote(t *testing.T, uc usecase.NoteUsecase, ownerID, title string) string {
	t.Helper()
	note, err := uc.Create(ownerID, &notedto.CreateNoteRequest{Title: title, Description: "body of " + title})
	require.NoError(t, err)
	return note.ID
}

func TestCreateNote(t *testing.T) {
	uc := newNoteUsecase()

	note, err := uc.Create(aliceID, &notedto.CreateNoteRequest{Title: "groceries", Description: "milk"})
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, aliceID, note.OwnerID)
	assert.False(t, note.CreatedAt.IsZero())
}

func TestCreateNoteValidation(t *testing.T) {
	uc := newNoteUsecase()

	tests := []notedto.CreateNoteRequest{
		{Title: "", Description: "body"},
		{Title: "title", Description: ""},
		{Title: "  ", Description: "body"},
	}
	for _, req := range tests {
		_, err := uc.Create(aliceID, &req)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	}
}

func TestOwnershipRule(t *testing.T) {
	uc := newNoteUsecase()
	noteID := createNote(t, uc, aliceID, "private")

	t.Run("owner reads", func(t *testing.T) {
		note, err := uc.GetByID(aliceID, false, noteID)
		require.NoError(t, err)
		assert.Equal(t, "private", note.Title)
	})

	t.Run("admin reads", func(t *testing.T) {
		_, err := uc.GetByID(adminID, true, noteID)
		assert.NoError(t, err)
	})

	t.Run("other user forbidden", func(t *testing.T) {
		_, err := uc.GetByID(bobID, false, noteID)
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	})

	t.Run("other user cannot update", func(t *testing.T) {
		title := "stolen"
		_, err := uc.Update(bobID, false, noteID, &notedto.UpdateNoteRequest{Title: &title})
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	})

	t.Run("other user cannot delete", func(t *testing.T) {
		err := uc.Delete(bobID, false, noteID)
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	})

	t.Run("admin updates", func(t *testing.T) {
		title := "renamed"
		note, err := uc.Update(adminID, true, noteID, &notedto.UpdateNoteRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "renamed", note.Title)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, uc.Delete(aliceID, false, noteID))
		_, err := uc.GetByID(aliceID, false, noteID)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestGetUnknownNote(t *testing.T) {
	uc := newNoteUsecase()

	_, err := uc.GetByID(aliceID, false, "missing")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = uc.GetByID(aliceID, false, "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestUpdatePartialFields(t *testing.T) {
	uc := newNoteUsecase()
	noteID := createNote(t, uc, aliceID, "original")

	desc := "new body"
	note, err := uc.Update(aliceID, false, noteID, &notedto.UpdateNoteRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "original", note.Title)
	assert.Equal(t, "new body", note.Description)
}

func TestListScoping(t *testing.T) {
	uc := newNoteUsecase()

	// Bob's notes predate Alice's, so a post-filter over a shared page
	// would surface them; a scoped query must not.
	for i := 0; i < 3; i++ {
		createNote(t, uc, bobID, fmt.Sprintf("bob-%d", i))
	}
	for i := 0; i < 2; i++ {
		createNote(t, uc, aliceID, fmt.Sprintf("alice-%d", i))
	}

	t.Run("non-admin sees only own notes", func(t *testing.T) {
		result, err := uc.List(aliceID, false, 1, 10, "createdAt", "asc")
		require.NoError(t, err)
		assert.EqualValues(t, 2, result.Total)
		for _, note := range result.Notes {
			assert.Equal(t, aliceID, note.OwnerID)
		}
	})

	t.Run("admin sees all notes", func(t *testing.T) {
		result, err := uc.List(adminID, true, 1, 10, "createdAt", "asc")
		require.NoError(t, err)
		assert.EqualValues(t, 5, result.Total)
	})

	t.Run("pagination reflects scope", func(t *testing.T) {
		result, err := uc.List(bobID, false, 2, 2, "createdAt", "asc")
		require.NoError(t, err)
		assert.EqualValues(t, 3, result.Total)
		assert.Len(t, result.Notes, 1)
	})

	t.Run("sort by title desc", func(t *testing.T) {
		result, err := uc.List(bobID, false, 1, 10, "title", "desc")
		require.NoError(t, err)
		require.Len(t, result.Notes, 3)
		assert.Equal(t, "bob-2", result.Notes[0].Title)
	})

	t.Run("defaults applied", func(t *testing.T) {
		result, err := uc.List(aliceID, false, 0, 0, "", "")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 10, result.Limit)
	})
}
