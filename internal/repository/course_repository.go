package repository

import (
	"codedex_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, "id = ?", id).Error
	return &course, err
}

// FindBySlug loads the full content tree for the course page: chapters and
// their exercises in display order.
func (r *CourseRepository) FindBySlug(slug string) (*model.Course, error) {
	var course model.Course
	err := r.DB.
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("chapters.sort_order ASC")
		}).
		Preload("Chapters.Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("exercises.sort_order ASC")
		}).
		Where("slug = ?", slug).
		First(&course).Error
	return &course, err
}

func (r *CourseRepository) FindByTitle(title string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("title = ?", title).First(&course).Error
	return &course, err
}

func (r *CourseRepository) List(skip, take int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	if err := r.DB.Model(&model.Course{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Order("created_at DESC").Offset(skip).Limit(take).Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id string) error {
	return r.DB.Delete(&model.Course{}, "id = ?", id).Error
}
