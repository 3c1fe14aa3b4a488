package service

import (
	"context"
	"encoding/json"
	"time"

	"codedex_backend/internal/model"
	"codedex_backend/internal/repository"
	"codedex_backend/internal/util"
	"codedex_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	catalogCacheKey = "catalog:courses"
	catalogCacheTTL = 5 * time.Minute
)

// CatalogService serves the public course catalog, with the course list cached
// in redis. The cache is best effort; redis being down degrades to the
// database, never to an error.
type CatalogService struct {
	CourseRepo   *repository.CourseRepository
	ProgressRepo *repository.ProgressRepository
	Redis        *redis.Client
}

func NewCatalogService(courseRepo *repository.CourseRepository, progressRepo *repository.ProgressRepository, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		CourseRepo:   courseRepo,
		ProgressRepo: progressRepo,
		Redis:        rdb,
	}
}

func (s *CatalogService) ListCourses(ctx context.Context) ([]model.Course, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, catalogCacheKey).Result(); err == nil {
			var courses []model.Course
			if err := json.Unmarshal([]byte(cached), &courses); err == nil {
				return courses, nil
			}
		}
	}

	courses, _, err := s.CourseRepo.List(0, 100)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(courses); err == nil {
			if err := s.Redis.Set(ctx, catalogCacheKey, payload, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache course catalog", zap.Error(err))
			}
		}
	}

	return courses, nil
}

// CourseDetail is a course tree plus, for signed-in callers, the ids of
// exercises they have already completed.
type CourseDetail struct {
	Course               *model.Course `json:"course"`
	CompletedExerciseIDs []string      `json:"completedExerciseIds,omitempty"`
}

// GetCourseBySlug loads a course with its chapters and exercises. userID may
// be empty for anonymous callers.
func (s *CatalogService) GetCourseBySlug(slug, userID string) (*CourseDetail, error) {
	course, err := s.CourseRepo.FindBySlug(slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	detail := &CourseDetail{Course: course}

	if userID != "" {
		records, err := s.ProgressRepo.ListByUser(userID)
		if err != nil {
			return nil, err
		}
		for _, record := range records {
			if record.Status == model.StatusCompleted {
				detail.CompletedExerciseIDs = append(detail.CompletedExerciseIDs, record.ExerciseID)
			}
		}
	}

	return detail, nil
}

// InvalidateCache drops the cached course list after an admin write.
func (s *CatalogService) InvalidateCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, catalogCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate course catalog cache", zap.Error(err))
	}
}
