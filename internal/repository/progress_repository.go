package repository

import (
	"time"

	"codedex_backend/internal/model"

	"gorm.io/gorm"
)

// ProgressRepository owns the completion rows and the XP ledger; the two are
// written together inside one transaction.
type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// CompleteExercise upserts the (user, exercise) progress row to COMPLETED and
// credits xp to the user's ledger. Both writes commit or fail together.
// Returns the stamped row and the resulting ledger total. XP is credited on
// every call; repeated completions re-stamp completed_at and award again.
func (r *ProgressRepository) CompleteExercise(userID, exerciseID string, xp int) (*model.UserProgress, int, error) {
	var totalXP int
	var progress model.UserProgress

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		progress = model.UserProgress{}
		err := tx.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).First(&progress).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			progress = model.UserProgress{
				UserID:      userID,
				ExerciseID:  exerciseID,
				Status:      model.StatusCompleted,
				CompletedAt: &now,
			}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}
		} else {
			progress.Status = model.StatusCompleted
			progress.CompletedAt = &now
			if err := tx.Save(&progress).Error; err != nil {
				return err
			}
		}

		var ledger model.UserXP
		err = tx.Where("user_id = ?", userID).First(&ledger).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			ledger = model.UserXP{UserID: userID, TotalXP: xp}
			if err := tx.Create(&ledger).Error; err != nil {
				return err
			}
			totalXP = ledger.TotalXP
			return nil
		}

		// Atomic increment so concurrent completions both count.
		if err := tx.Model(&model.UserXP{}).
			Where("user_id = ?", userID).
			Update("total_xp", gorm.Expr("total_xp + ?", xp)).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).First(&ledger).Error; err != nil {
			return err
		}
		totalXP = ledger.TotalXP
		return nil
	})

	if err != nil {
		return nil, 0, err
	}
	return &progress, totalXP, nil
}

func (r *ProgressRepository) ListByUser(userID string) ([]model.UserProgress, error) {
	var records []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).Find(&records).Error
	return records, err
}

func (r *ProgressRepository) GetTotalXP(userID string) (int, error) {
	var ledger model.UserXP
	err := r.DB.Where("user_id = ?", userID).First(&ledger).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return ledger.TotalXP, nil
}

func (r *ProgressRepository) CountCompleted() (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProgress{}).
		Where("status = ?", model.StatusCompleted).
		Count(&count).Error
	return count, err
}

// SumSystemXP totals every user's ledger for the admin stats view.
func (r *ProgressRepository) SumSystemXP() (int64, error) {
	var total int64
	err := r.DB.Model(&model.UserXP{}).
		Select("COALESCE(SUM(total_xp), 0)").
		Scan(&total).Error
	return total, err
}
