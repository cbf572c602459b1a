package service

import (
	"context"
	"time"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"
	"quizdeck/internal/repository"
	"quizdeck/internal/repository/models"
	"quizdeck/internal/util"
	"quizdeck/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService defines the interface for registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error)
}

type authService struct {
	userRepo  repository.UserRepository
	validator *validation.Validator
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{
		userRepo:  userRepo,
		validator: validation.NewValidator(),
	}
}

// Register creates a new account. Credentials are stored as a bcrypt hash;
// a duplicate email surfaces from the repository as a conflict error.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if errs := s.validator.ValidateCredentials(req.Email, req.Password); len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalError("Failed to register user", err)
	}

	user := &models.User{
		ID:           util.NewULID(),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if _, ok := err.(*domain.DomainError); ok {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to register user", err)
	}

	logger.Get().Info("User registered", zap.String("user_id", user.ID))

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Login checks credentials against the stored hash. Unknown email and
// wrong password produce the identical error so accounts cannot be
// enumerated.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	if errs := s.validator.ValidateCredentials(req.Email, req.Password); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.NewInternalError("Failed to log in", err)
	}
	if user == nil {
		return nil, invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, invalidCredentials()
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

func invalidCredentials() *domain.DomainError {
	return domain.NewUnauthorizedError("Invalid email or password")
}
