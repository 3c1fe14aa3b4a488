package service

import (
	"codedex_backend/internal/repository"
)

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	TotalUsers              int64 `json:"totalUsers"`
	TotalCompletedExercises int64 `json:"totalCompletedExercises"`
	TotalSystemXP           int64 `json:"totalSystemXP"`
}

type StatsService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
}

func NewStatsService(userRepo *repository.UserRepository, progressRepo *repository.ProgressRepository) *StatsService {
	return &StatsService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
	}
}

func (s *StatsService) GetPlatformStats() (*PlatformStats, error) {
	totalUsers, err := s.UserRepo.Count()
	if err != nil {
		return nil, err
	}

	completed, err := s.ProgressRepo.CountCompleted()
	if err != nil {
		return nil, err
	}

	systemXP, err := s.ProgressRepo.SumSystemXP()
	if err != nil {
		return nil, err
	}

	return &PlatformStats{
		TotalUsers:              totalUsers,
		TotalCompletedExercises: completed,
		TotalSystemXP:           systemXP,
	}, nil
}
