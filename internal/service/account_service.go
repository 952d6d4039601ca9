package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	app_errors "imagevault/internal/errors"
	"imagevault/internal/model"
	"imagevault/internal/repository"
)

// apiKeyBytes is the entropy of a generated API key before encoding.
const apiKeyBytes = 48

// RegisterRequest is the payload of POST /api/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80" example:"alice"`
	Email    string `json:"email" validate:"required,email,max=120" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=6,max=72" example:"s3cret-pass"`
}

// LoginRequest is the payload of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"s3cret-pass"`
}

// AccountService registers users and resolves API keys to users.
type AccountService struct {
	repo repository.Repository
}

func NewAccountService(repo repository.Repository) *AccountService {
	return &AccountService{repo: repo}
}

// Register creates a user and returns its first API key.
func (s *AccountService) Register(ctx context.Context, req *RegisterRequest) (string, error) {
	if err := s.ensureFree(ctx, req); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	apiKey, err := GenerateAPIKey()
	if err != nil {
		return "", err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		APIKey:       apiKey,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", fmt.Errorf("%w: username or email already registered", app_errors.ErrConflict)
		}
		return "", fmt.Errorf("could not create user: %w", err)
	}

	slog.Info("Registered new user", "user_id", user.ID, "username", user.Username)
	recordActivity(ctx, s.repo, user.ID, "register", "Registered via API")
	return apiKey, nil
}

func (s *AccountService) ensureFree(ctx context.Context, req *RegisterRequest) error {
	if _, err := s.repo.GetUserByUsername(ctx, req.Username); err == nil {
		return fmt.Errorf("%w: username already exists", app_errors.ErrConflict)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("could not look up username: %w", err)
	}

	if _, err := s.repo.GetUserByEmail(ctx, req.Email); err == nil {
		return fmt.Errorf("%w: email already registered", app_errors.ErrConflict)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("could not look up email: %w", err)
	}
	return nil
}

// Login checks the password of the user registered under req.Email. Unknown
// emails and wrong passwords fail the same way.
func (s *AccountService) Login(ctx context.Context, req *LoginRequest) (*model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", app_errors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("could not look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", app_errors.ErrUnauthorized)
	}

	recordActivity(ctx, s.repo, user.ID, "login", "Logged in via API")
	return user, nil
}

// Authenticate returns the owner of apiKey.
func (s *AccountService) Authenticate(ctx context.Context, apiKey string) (*model.User, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is missing", app_errors.ErrUnauthorized)
	}
	user, err := s.repo.GetUserByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid API key", app_errors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("could not look up API key: %w", err)
	}
	return user, nil
}

// RefreshKey replaces the user's API key. The old key stops working at once.
func (s *AccountService) RefreshKey(ctx context.Context, user *model.User) (string, error) {
	apiKey, err := GenerateAPIKey()
	if err != nil {
		return "", err
	}
	if err := s.repo.UpdateAPIKey(ctx, user.ID, apiKey); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("%w: user %d", app_errors.ErrNotFound, user.ID)
		}
		return "", fmt.Errorf("could not store API key: %w", err)
	}

	user.APIKey = apiKey
	recordActivity(ctx, s.repo, user.ID, "refresh_api_key", "API key regenerated")
	return apiKey, nil
}

// GenerateAPIKey returns 48 random bytes as unpadded URL-safe base64.
func GenerateAPIKey() (string, error) {
	b := make([]byte, apiKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("could not generate API key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
