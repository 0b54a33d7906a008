package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/odanga/stockledger-api/pkg/apperror"
	"github.com/odanga/stockledger-api/pkg/utils"
)

// AuthService authenticates the single configured operator account.
type AuthService struct {
	adminEmail   string
	passwordHash string
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service. The configured plain password
// is hashed once at startup.
func NewAuthService(adminEmail, adminPassword string, jwtManager *utils.JWTManager) *AuthService {
	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}
	return &AuthService{
		adminEmail:   strings.ToLower(strings.TrimSpace(adminEmail)),
		passwordHash: hash,
		jwtManager:   jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the issued token pair
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
}

// Login authenticates the operator and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email != s.adminEmail || !utils.CheckPasswordHash(input.Password, s.passwordHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(email)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	email, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", apperror.ErrInvalidToken
	}
	if email != s.adminEmail {
		return "", apperror.ErrInvalidToken
	}
	return s.jwtManager.GenerateAccessToken(email)
}
