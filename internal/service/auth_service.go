package service

import (
	"context"
	"errors"
	"time"

	"clientportal/internal/model"
	"clientportal/internal/repository"
	"clientportal/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionTTL = 7 * 24 * time.Hour

// --- DTOs ---

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=Guest Client-User Client-Admin Firm-Accountant System-Admin"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// --- Interface ---

// AuthService implements the credentials sign-in flow: bcrypt-verified
// passwords, HS256 access tokens and a persisted Session row per login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, input LoginInput) (*TokenResponse, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	secret      []byte
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, secret []byte) AuthService {
	return &authService{userRepo: userRepo, sessionRepo: sessionRepo, secret: secret}
}

// --- Implementation ---

func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("password hashing failed", zap.Error(err))
		return nil, apperr.Validationf("unusable password")
	}

	user := &model.User{
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		zap.L().Error("registration failed", zap.String("email", input.Email), zap.Error(err))
		return nil, apperr.FromStore(err, "user")
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validationf("invalid email or password")
		}
		zap.L().Error("login lookup failed", zap.Error(err))
		return nil, apperr.FromStore(err, "user")
	}

	if user.PasswordHash == "" {
		return nil, apperr.Validationf("account has no password sign-in")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperr.Validationf("invalid email or password")
	}

	expires := time.Now().Add(sessionTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"exp":  expires.Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		zap.L().Error("token signing failed", zap.Error(err))
		return nil, apperr.FromStore(err, "session")
	}

	session := &model.Session{
		SessionToken: uuid.NewString(),
		UserID:       user.ID,
		Expires:      expires,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		zap.L().Error("session persist failed", zap.Error(err))
		return nil, apperr.FromStore(err, "session")
	}

	return &TokenResponse{Token: signed, Expires: expires}, nil
}
