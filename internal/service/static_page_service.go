package service

import (
	"codedex_backend/internal/model"
	"codedex_backend/internal/repository"
	"codedex_backend/internal/util"

	"gorm.io/gorm"
)

type StaticPageService struct {
	PageRepo *repository.StaticPageRepository
}

func NewStaticPageService(pageRepo *repository.StaticPageRepository) *StaticPageService {
	return &StaticPageService{PageRepo: pageRepo}
}

func (s *StaticPageService) List() ([]model.StaticPage, error) {
	return s.PageRepo.List()
}

func (s *StaticPageService) GetBySlug(slug string) (*model.StaticPage, error) {
	page, err := s.PageRepo.FindBySlug(slug)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrPageNotFound
	}
	return page, err
}

func (s *StaticPageService) Create(page *model.StaticPage) error {
	if _, err := s.PageRepo.FindBySlug(page.Slug); err == nil {
		return util.ErrSlugTaken
	} else if err != gorm.ErrRecordNotFound {
		return err
	}
	return s.PageRepo.Create(page)
}

func (s *StaticPageService) Update(slug string, update *model.StaticPage) (*model.StaticPage, error) {
	page, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	page.Title = update.Title
	page.Content = update.Content

	if err := s.PageRepo.Update(page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *StaticPageService) Delete(slug string) error {
	if _, err := s.GetBySlug(slug); err != nil {
		return err
	}
	return s.PageRepo.Delete(slug)
}
