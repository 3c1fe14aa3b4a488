package repository

import (
	"codedex_backend/internal/model"

	"gorm.io/gorm"
)

type ExerciseRepository struct {
	DB *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{DB: db}
}

func (r *ExerciseRepository) Create(exercise *model.Exercise) error {
	return r.DB.Create(exercise).Error
}

func (r *ExerciseRepository) FindByID(id string) (*model.Exercise, error) {
	var exercise model.Exercise
	err := r.DB.First(&exercise, "id = ?", id).Error
	return &exercise, err
}

func (r *ExerciseRepository) FindBySlug(slug string) (*model.Exercise, error) {
	var exercise model.Exercise
	err := r.DB.Where("slug = ?", slug).First(&exercise).Error
	return &exercise, err
}

func (r *ExerciseRepository) ListByChapter(chapterID string) ([]model.Exercise, error) {
	var exercises []model.Exercise
	err := r.DB.Where("chapter_id = ?", chapterID).Order("sort_order ASC").Find(&exercises).Error
	return exercises, err
}

func (r *ExerciseRepository) Update(exercise *model.Exercise) error {
	return r.DB.Save(exercise).Error
}

func (r *ExerciseRepository) Delete(id string) error {
	return r.DB.Delete(&model.Exercise{}, "id = ?", id).Error
}
