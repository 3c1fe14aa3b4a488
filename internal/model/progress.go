package model

import "time"

type ProgressStatus string

const (
	StatusInProgress ProgressStatus = "IN_PROGRESS"
	StatusCompleted  ProgressStatus = "COMPLETED"
)

// UserProgress holds at most one row per (user, exercise); the composite unique
// index is the upsert key for completion writes.
// swagger:model UserProgress
type UserProgress struct {
	UUIDBase
	UserID      string         `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_user_exercise" json:"userId"`
	ExerciseID  string         `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_user_exercise" json:"exerciseId"`
	Status      ProgressStatus `gorm:"type:enum('IN_PROGRESS','COMPLETED');default:'IN_PROGRESS'" json:"status"`
	CompletedAt *time.Time     `json:"completedAt"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
