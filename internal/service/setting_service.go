package service

import (
	"context"
	"encoding/json"
	"time"

	"codedex_backend/internal/model"
	"codedex_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

const (
	settingsCacheKey = "settings:all"
	settingsCacheTTL = 10 * time.Minute
)

type SettingService struct {
	SettingRepo *repository.SettingRepository
	Redis       *redis.Client
}

func NewSettingService(settingRepo *repository.SettingRepository, rdb *redis.Client) *SettingService {
	return &SettingService{
		SettingRepo: settingRepo,
		Redis:       rdb,
	}
}

func (s *SettingService) GetAll(ctx context.Context) (map[string]string, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, settingsCacheKey).Result(); err == nil {
			var settings map[string]string
			if err := json.Unmarshal([]byte(cached), &settings); err == nil {
				return settings, nil
			}
		}
	}

	rows, err := s.SettingRepo.GetAll()
	if err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(settings); err == nil {
			s.Redis.Set(ctx, settingsCacheKey, payload, settingsCacheTTL)
		}
	}

	return settings, nil
}

// UpdateAll upserts every provided key and drops the cache.
func (s *SettingService) UpdateAll(ctx context.Context, settings map[string]string) error {
	for key, value := range settings {
		if err := s.SettingRepo.Upsert(key, value); err != nil {
			return err
		}
	}

	if s.Redis != nil {
		s.Redis.Del(ctx, settingsCacheKey)
	}
	return nil
}

func (s *SettingService) List() ([]model.Setting, error) {
	return s.SettingRepo.GetAll()
}
