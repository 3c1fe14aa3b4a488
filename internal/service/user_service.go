package service

import (
	"codedex_backend/internal/config"
	"codedex_backend/internal/model"
	"codedex_backend/internal/repository"
	"codedex_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	Cfg          *config.Config
}

func NewUserService(userRepo *repository.UserRepository, progressRepo *repository.ProgressRepository, cfg *config.Config) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		Cfg:          cfg,
	}
}

// Profile combines the user record with their progress totals.
type Profile struct {
	User               *model.User `json:"user"`
	TotalXP            int         `json:"totalXp"`
	CompletedExercises int         `json:"completedExercises"`
}

func (s *UserService) GetProfile(userID string) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	totalXP, err := s.ProgressRepo.GetTotalXP(userID)
	if err != nil {
		return nil, err
	}

	records, err := s.ProgressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	completed := 0
	for _, record := range records {
		if record.Status == model.StatusCompleted {
			completed++
		}
	}

	return &Profile{
		User:               user,
		TotalXP:            totalXP,
		CompletedExercises: completed,
	}, nil
}

// UpdateName changes the user's display name. Validation of the name happens
// at the edge; the service only persists.
func (s *UserService) UpdateName(userID, name string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	user.Name = name
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(skip, take int) ([]model.User, int64, error) {
	return s.UserRepo.List(skip, take)
}

func (s *UserService) UpdateRole(userID string, role model.UserRole) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if err := s.UserRepo.UpdateRole(userID, role); err != nil {
		return nil, err
	}
	user.Role = role
	return user, nil
}

func (s *UserService) DeleteUser(userID string) error {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrUserNotFound
		}
		return err
	}
	return s.UserRepo.Delete(userID)
}

// PromoteByEmail grants ADMIN to a user, guarded by the shared bootstrap
// secret rather than a session. Used to create the first admin.
func (s *UserService) PromoteByEmail(email, secret string) (*model.User, error) {
	promoteSecret := s.Cfg.PromoteSecret()
	if promoteSecret == "" || secret != promoteSecret {
		return nil, util.ErrInvalidSecret
	}

	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if user.Role == model.RoleAdmin {
		return user, nil
	}

	if err := s.UserRepo.UpdateRole(user.ID, model.RoleAdmin); err != nil {
		return nil, err
	}
	user.Role = model.RoleAdmin
	return user, nil
}
