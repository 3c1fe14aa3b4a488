package repository

import (
	"codedex_backend/internal/model"

	"gorm.io/gorm"
)

type ChapterRepository struct {
	DB *gorm.DB
}

func NewChapterRepository(db *gorm.DB) *ChapterRepository {
	return &ChapterRepository{DB: db}
}

func (r *ChapterRepository) Create(chapter *model.Chapter) error {
	return r.DB.Create(chapter).Error
}

func (r *ChapterRepository) FindByID(id string) (*model.Chapter, error) {
	var chapter model.Chapter
	err := r.DB.First(&chapter, "id = ?", id).Error
	return &chapter, err
}

func (r *ChapterRepository) FindByCourseAndSlug(courseID, slug string) (*model.Chapter, error) {
	var chapter model.Chapter
	err := r.DB.Where("course_id = ? AND slug = ?", courseID, slug).First(&chapter).Error
	return &chapter, err
}

func (r *ChapterRepository) ListByCourse(courseID string) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.Where("course_id = ?", courseID).Order("sort_order ASC").Find(&chapters).Error
	return chapters, err
}

func (r *ChapterRepository) Update(chapter *model.Chapter) error {
	return r.DB.Save(chapter).Error
}

func (r *ChapterRepository) Delete(id string) error {
	return r.DB.Delete(&model.Chapter{}, "id = ?", id).Error
}
