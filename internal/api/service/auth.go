package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apijwt "github.com/soul/laptopkade/internal/api/jwt"
	"github.com/soul/laptopkade/internal/api/models"
	"github.com/soul/laptopkade/internal/api/repo"
	"github.com/soul/laptopkade/internal/api/transport"
	"github.com/soul/laptopkade/pkg/hash"
	"github.com/soul/laptopkade/pkg/logging"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	Repo     *repo.GormRepo
	Provider *apijwt.Provider
}

const minPasswordLen = 6

func (s *AuthService) Signup(ctx context.Context, req transport.SignupRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", ErrValidation)
	}
	if len(req.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	if exists, err := s.Repo.UsernameExists(ctx, req.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("%w: username already exists", ErrConflict)
	}
	if exists, err := s.Repo.EmailExists(ctx, req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: pwHash,
		Enabled:      true,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	l.Info("user_signed_up", "username", user.Username)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*transport.JwtResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", req.Username)

	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", ErrValidation)
	}

	user, err := s.Repo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, req.Username)
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.Enabled {
		return nil, fmt.Errorf("%w: user account is disabled", ErrValidation)
	}

	tokenStr, err := s.Provider.GenerateToken(user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	token := &models.Token{
		TokenValue: tokenStr,
		UserID:     user.ID,
		IssuedAt:   now,
		ExpiresAt:  now.Add(s.Provider.Expiration),
		Revoked:    false,
		TokenType:  "Bearer",
	}
	if err := s.Repo.CreateToken(ctx, token); err != nil {
		return nil, err
	}

	l.Info("user_logged_in")
	return &transport.JwtResponse{
		Token:     tokenStr,
		Type:      "Bearer",
		ExpiresIn: s.Provider.Expiration.Milliseconds(),
		Username:  user.Username,
		Email:     user.Email,
	}, nil
}

func (s *AuthService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.Repo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	return user, nil
}

// ValidateToken checks signature and expiry only. The stored revoked flag
// is deliberately not consulted: a revoked token that has not yet expired
// still validates.
func (s *AuthService) ValidateToken(ctx context.Context, tokenStr string) bool {
	return s.Provider.ValidateToken(tokenStr)
}

func (s *AuthService) RevokeToken(ctx context.Context, tokenStr string) error {
	l := logging.FromContext(ctx).With("svc", "auth.revoke")

	token, err := s.Repo.FindTokenByValue(ctx, tokenStr)
	if err != nil {
		return fmt.Errorf("%w: token", ErrNotFound)
	}
	if err := s.Repo.RevokeToken(ctx, token.TokenValue); err != nil {
		return err
	}

	l.Info("token_revoked", "token_id", token.ID)
	return nil
}

func (s *AuthService) GetUserActiveTokens(ctx context.Context, userID uint) ([]models.Token, error) {
	return s.Repo.FindActiveTokens(ctx, userID)
}
