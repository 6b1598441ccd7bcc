package service

import (
	"context"
	"errors"

	"clientportal/internal/model"
	"clientportal/internal/repository"
	"clientportal/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required,oneof=Guest Client-User Client-Admin Firm-Accountant System-Admin"`
}

// --- Interface ---

// UserService defines the business logic for User entities. GetUserByID
// returns (nil, nil) for an absent id: absence is an explicit result here,
// not an error.
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService returns a new instance of UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// --- Implementation ---

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	user := &model.User{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		zap.L().Error("user creation failed", zap.String("email", req.Email), zap.Error(err))
		return nil, apperr.FromStore(err, "user")
	}

	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validationf("invalid user id %q", id)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Absence is a result, not an error
		}
		zap.L().Error("user lookup failed", zap.String("id", id), zap.Error(err))
		return nil, apperr.FromStore(err, "user")
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("user list failed", zap.Error(err))
		return nil, apperr.FromStore(err, "users")
	}
	return users, nil
}
