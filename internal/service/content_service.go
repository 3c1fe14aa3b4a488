package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"codedex_backend/internal/model"
	"codedex_backend/internal/repository"
	"codedex_backend/internal/util"

	"gorm.io/gorm"
)

// ContentService handles the admin-side CRUD for the course content hierarchy.
// Every write invalidates the public catalog cache.
type ContentService struct {
	CourseRepo   *repository.CourseRepository
	ChapterRepo  *repository.ChapterRepository
	ExerciseRepo *repository.ExerciseRepository
	Catalog      *CatalogService
	Storage      *StorageService
}

func NewContentService(
	courseRepo *repository.CourseRepository,
	chapterRepo *repository.ChapterRepository,
	exerciseRepo *repository.ExerciseRepository,
	catalog *CatalogService,
	storage *StorageService,
) *ContentService {
	return &ContentService{
		CourseRepo:   courseRepo,
		ChapterRepo:  chapterRepo,
		ExerciseRepo: exerciseRepo,
		Catalog:      catalog,
		Storage:      storage,
	}
}

func (s *ContentService) CreateCourse(ctx context.Context, course *model.Course) error {
	if _, err := s.CourseRepo.FindBySlug(course.Slug); err == nil {
		return util.ErrSlugTaken
	} else if err != gorm.ErrRecordNotFound {
		return err
	}
	if _, err := s.CourseRepo.FindByTitle(course.Title); err == nil {
		return util.ErrTitleTaken
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return err
	}
	s.Catalog.InvalidateCache(ctx)
	return nil
}

func (s *ContentService) ListCourses(skip, take int) ([]model.Course, int64, error) {
	return s.CourseRepo.List(skip, take)
}

func (s *ContentService) GetCourse(id string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

func (s *ContentService) UpdateCourse(ctx context.Context, id string, update *model.Course) (*model.Course, error) {
	course, err := s.GetCourse(id)
	if err != nil {
		return nil, err
	}

	if update.Slug != course.Slug {
		if _, err := s.CourseRepo.FindBySlug(update.Slug); err == nil {
			return nil, util.ErrSlugTaken
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	course.Title = update.Title
	course.Slug = update.Slug
	course.Description = update.Description
	if update.ImageURL != "" {
		course.ImageURL = update.ImageURL
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	s.Catalog.InvalidateCache(ctx)
	return course, nil
}

func (s *ContentService) DeleteCourse(ctx context.Context, id string) error {
	if _, err := s.GetCourse(id); err != nil {
		return err
	}
	if err := s.CourseRepo.Delete(id); err != nil {
		return err
	}
	s.Catalog.InvalidateCache(ctx)
	return nil
}

func (s *ContentService) CreateChapter(ctx context.Context, chapter *model.Chapter) error {
	if _, err := s.GetCourse(chapter.CourseID); err != nil {
		return err
	}
	if _, err := s.ChapterRepo.FindByCourseAndSlug(chapter.CourseID, chapter.Slug); err == nil {
		return util.ErrSlugTaken
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	if err := s.ChapterRepo.Create(chapter); err != nil {
		return err
	}
	s.Catalog.InvalidateCache(ctx)
	return nil
}

func (s *ContentService) ListChapters(courseID string) ([]model.Chapter, error) {
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}
	return s.ChapterRepo.ListByCourse(courseID)
}

func (s *ContentService) GetChapter(id string) (*model.Chapter, error) {
	chapter, err := s.ChapterRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrChapterNotFound
	}
	return chapter, err
}

func (s *ContentService) UpdateChapter(ctx context.Context, id string, update *model.Chapter) (*model.Chapter, error) {
	chapter, err := s.GetChapter(id)
	if err != nil {
		return nil, err
	}

	if update.Slug != chapter.Slug {
		if _, err := s.ChapterRepo.FindByCourseAndSlug(chapter.CourseID, update.Slug); err == nil {
			return nil, util.ErrSlugTaken
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	chapter.Title = update.Title
	chapter.Slug = update.Slug
	chapter.Order = update.Order

	if err := s.ChapterRepo.Update(chapter); err != nil {
		return nil, err
	}
	s.Catalog.InvalidateCache(ctx)
	return chapter, nil
}

func (s *ContentService) DeleteChapter(ctx context.Context, id string) error {
	if _, err := s.GetChapter(id); err != nil {
		return err
	}
	if err := s.ChapterRepo.Delete(id); err != nil {
		return err
	}
	s.Catalog.InvalidateCache(ctx)
	return nil
}

func (s *ContentService) CreateExercise(ctx context.Context, exercise *model.Exercise) error {
	if _, err := s.GetChapter(exercise.ChapterID); err != nil {
		return err
	}
	if _, err := s.ExerciseRepo.FindBySlug(exercise.Slug); err == nil {
		return util.ErrSlugTaken
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	if err := s.ExerciseRepo.Create(exercise); err != nil {
		return err
	}
	s.Catalog.InvalidateCache(ctx)
	return nil
}

func (s *ContentService) ListExercises(chapterID string) ([]model.Exercise, error) {
	if _, err := s.GetChapter(chapterID); err != nil {
		return nil, err
	}
	return s.ExerciseRepo.ListByChapter(chapterID)
}

func (s *ContentService) GetExercise(id string) (*model.Exercise, error) {
	exercise, err := s.ExerciseRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrExerciseNotFound
	}
	return exercise, err
}

func (s *ContentService) UpdateExercise(ctx context.Context, id string, update *model.Exercise) (*model.Exercise, error) {
	exercise, err := s.GetExercise(id)
	if err != nil {
		return nil, err
	}

	if update.Slug != exercise.Slug {
		if _, err := s.ExerciseRepo.FindBySlug(update.Slug); err == nil {
			return nil, util.ErrSlugTaken
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	exercise.Title = update.Title
	exercise.Slug = update.Slug
	exercise.Order = update.Order
	exercise.Content = update.Content
	exercise.InitialCode = update.InitialCode
	exercise.ExpectedOutput = update.ExpectedOutput
	exercise.XPValue = update.XPValue

	if err := s.ExerciseRepo.Update(exercise); err != nil {
		return nil, err
	}
	s.Catalog.InvalidateCache(ctx)
	return exercise, nil
}

func (s *ContentService) DeleteExercise(ctx context.Context, id string) error {
	if _, err := s.GetExercise(id); err != nil {
		return err
	}
	if err := s.ExerciseRepo.Delete(id); err != nil {
		return err
	}
	s.Catalog.InvalidateCache(ctx)
	return nil
}

// UploadCourseImage stores an uploaded image and returns its public URL.
func (s *ContentService) UploadCourseImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".svg", ".webp":
	default:
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := "courses/" + time.Now().Format("20060102150405") + "-" +
		strings.ReplaceAll(file.Filename, " ", "-")

	return s.Storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
}
