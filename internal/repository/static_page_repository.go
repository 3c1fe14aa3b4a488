package repository

import (
	"codedex_backend/internal/model"

	"gorm.io/gorm"
)

type StaticPageRepository struct {
	DB *gorm.DB
}

func NewStaticPageRepository(db *gorm.DB) *StaticPageRepository {
	return &StaticPageRepository{DB: db}
}

func (r *StaticPageRepository) List() ([]model.StaticPage, error) {
	var pages []model.StaticPage
	err := r.DB.Order("slug ASC").Find(&pages).Error
	return pages, err
}

func (r *StaticPageRepository) FindBySlug(slug string) (*model.StaticPage, error) {
	var page model.StaticPage
	err := r.DB.Where("slug = ?", slug).First(&page).Error
	return &page, err
}

func (r *StaticPageRepository) Create(page *model.StaticPage) error {
	return r.DB.Create(page).Error
}

func (r *StaticPageRepository) Update(page *model.StaticPage) error {
	return r.DB.Save(page).Error
}

func (r *StaticPageRepository) Delete(slug string) error {
	return r.DB.Delete(&model.StaticPage{}, "slug = ?", slug).Error
}
