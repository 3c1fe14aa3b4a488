package service

import (
	"testing"
	"time"

	"codedex_backend/internal/model"
	"codedex_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeExerciseFinder struct {
	exercises map[string]*model.Exercise
}

func (f *fakeExerciseFinder) FindBySlug(slug string) (*model.Exercise, error) {
	if e, ok := f.exercises[slug]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeCompletionStore struct {
	rows   map[string]*model.UserProgress
	totals map[string]int
	calls  int
}

func newFakeCompletionStore() *fakeCompletionStore {
	return &fakeCompletionStore{
		rows:   make(map[string]*model.UserProgress),
		totals: make(map[string]int),
	}
}

func (f *fakeCompletionStore) CompleteExercise(userID, exerciseID string, xp int) (*model.UserProgress, int, error) {
	f.calls++
	key := userID + "|" + exerciseID
	row, ok := f.rows[key]
	if !ok {
		row = &model.UserProgress{UserID: userID, ExerciseID: exerciseID}
		f.rows[key] = row
	}
	now := time.Now()
	row.Status = model.StatusCompleted
	row.CompletedAt = &now
	f.totals[userID] += xp
	return row, f.totals[userID], nil
}

func intPtr(v int) *int { return &v }

func newTestProgressService(store *fakeCompletionStore) *ProgressService {
	finder := &fakeExerciseFinder{exercises: map[string]*model.Exercise{
		"hello-world": {
			UUIDBase: model.UUIDBase{ID: "ex-1"},
			Slug:     "hello-world",
			XPValue:  intPtr(10),
		},
		"no-xp": {
			UUIDBase: model.UUIDBase{ID: "ex-2"},
			Slug:     "no-xp",
		},
	}}
	return NewProgressService(finder, store)
}

func TestRecordCompletionUnknownSlug(t *testing.T) {
	store := newFakeCompletionStore()
	svc := newTestProgressService(store)

	result, err := svc.RecordCompletion("user-1", "does-not-exist")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, util.ErrExerciseNotFound)
	assert.Zero(t, store.calls, "a missing exercise must not reach the store")
}

func TestRecordCompletionAwardsXP(t *testing.T) {
	svc := newTestProgressService(newFakeCompletionStore())

	result, err := svc.RecordCompletion("user-1", "hello-world")
	require.NoError(t, err)

	assert.Equal(t, "ex-1", result.ExerciseID)
	assert.Equal(t, model.StatusCompleted, result.Status)
	assert.NotNil(t, result.CompletedAt)
	assert.Equal(t, 10, result.TotalXP)
}

// XP is credited on every call, so re-completing an exercise keeps adding to
// the total.
func TestRecordCompletionRepeatAddsXPAgain(t *testing.T) {
	svc := newTestProgressService(newFakeCompletionStore())

	first, err := svc.RecordCompletion("user-1", "hello-world")
	require.NoError(t, err)
	assert.Equal(t, 10, first.TotalXP)

	second, err := svc.RecordCompletion("user-1", "hello-world")
	require.NoError(t, err)
	assert.Equal(t, 20, second.TotalXP)
	assert.Equal(t, model.StatusCompleted, second.Status)
}

func TestRecordCompletionNilXPValue(t *testing.T) {
	svc := newTestProgressService(newFakeCompletionStore())

	result, err := svc.RecordCompletion("user-1", "no-xp")
	require.NoError(t, err)

	assert.Equal(t, model.StatusCompleted, result.Status)
	assert.Equal(t, 0, result.TotalXP)
	assert.NotNil(t, result.CompletedAt)
}

func TestRecordCompletionPerUserTotals(t *testing.T) {
	store := newFakeCompletionStore()
	svc := newTestProgressService(store)

	_, err := svc.RecordCompletion("user-1", "hello-world")
	require.NoError(t, err)

	result, err := svc.RecordCompletion("user-2", "hello-world")
	require.NoError(t, err)

	assert.Equal(t, 10, result.TotalXP, "totals are per user, not global")
}
