package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripcraft/tripcraft-api/internal/domain"
	"github.com/tripcraft/tripcraft-api/internal/dto"
	"github.com/tripcraft/tripcraft-api/internal/repository"
	"github.com/tripcraft/tripcraft-api/internal/utils"
)

// authService implements AuthService interface
type authService struct {
	users      repository.UserRepository
	jwtManager *utils.JWTManager
	bcryptCost int
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository, jwtManager *utils.JWTManager, bcryptCost int) AuthService {
	return &authService{
		users:      users,
		jwtManager: jwtManager,
		bcryptCost: bcryptCost,
	}
}

// Register registers a new local user with a bcrypt-hashed password
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return fmt.Errorf("user with email %s already exists: %w", req.Email, repository.ErrDuplicateEmail)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to check user existence: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:    req.Email,
		Password: passwordHash,
		Name:     req.Name,
		Provider: domain.ProviderLocal,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login verifies credentials and issues a token carrying the email as subject
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Federated identities have no stored password and cannot log in locally.
	if user.Password == "" || !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	// Re-resolve after verification; a concurrent profile deletion surfaces
	// here as ErrUserNotFound rather than a stale read.
	user, err = s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	token, err := s.jwtManager.GenerateToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{
		Token: token,
		Name:  user.Name,
	}, nil
}

// ResolveSubject verifies a token and returns the email it carries
func (s *authService) ResolveSubject(token string) (string, error) {
	return s.jwtManager.ExtractSubject(token)
}

// CheckStatus reports whether the token identifies an existing user. Fails
// closed on every error.
func (s *authService) CheckStatus(ctx context.Context, token string) bool {
	subject, err := s.jwtManager.ExtractSubject(token)
	if err != nil {
		return false
	}

	if _, err := s.users.GetByEmail(ctx, subject); err != nil {
		return false
	}

	return s.jwtManager.ValidateToken(token, subject)
}
