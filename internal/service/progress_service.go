package service

import (
	"time"

	"codedex_backend/internal/model"
	"codedex_backend/internal/util"
	"codedex_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// ExerciseFinder resolves an exercise by its slug.
type ExerciseFinder interface {
	FindBySlug(slug string) (*model.Exercise, error)
}

// CompletionStore applies the completion + XP-credit write pair atomically and
// returns the stamped row plus the resulting ledger total.
type CompletionStore interface {
	CompleteExercise(userID, exerciseID string, xp int) (*model.UserProgress, int, error)
}

type CompletionResult struct {
	ExerciseID  string               `json:"exerciseId"`
	Status      model.ProgressStatus `json:"status"`
	CompletedAt *time.Time           `json:"completedAt"`
	TotalXP     int                  `json:"totalXp"`
}

type ProgressService struct {
	Exercises ExerciseFinder
	Progress  CompletionStore
}

func NewProgressService(exercises ExerciseFinder, progress CompletionStore) *ProgressService {
	return &ProgressService{
		Exercises: exercises,
		Progress:  progress,
	}
}

// RecordCompletion marks the exercise complete for the user and credits its XP
// value. A missing exercise fails before any write happens. XP is awarded on
// every call, including repeats of an already-completed exercise.
func (s *ProgressService) RecordCompletion(userID, exerciseSlug string) (*CompletionResult, error) {
	exercise, err := s.Exercises.FindBySlug(exerciseSlug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrExerciseNotFound
		}
		return nil, err
	}

	xp := 0
	if exercise.XPValue != nil {
		xp = *exercise.XPValue
	}

	progress, totalXP, err := s.Progress.CompleteExercise(userID, exercise.ID, xp)
	if err != nil {
		return nil, err
	}

	monitoring.CompletionCounter.Inc()

	return &CompletionResult{
		ExerciseID:  exercise.ID,
		Status:      progress.Status,
		CompletedAt: progress.CompletedAt,
		TotalXP:     totalXP,
	}, nil
}
