// Package services implements the server-side business logic on top of the
// repository and storage layers.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/btxcapital/site/internal/common"
	"github.com/btxcapital/site/internal/server/auth"
	"github.com/btxcapital/site/internal/server/config"
	"github.com/btxcapital/site/internal/server/models"
	"github.com/btxcapital/site/internal/server/repositories/repomanager"
)

type AuthService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.AccessTokenValidityDuration,
	}
}

// SeedAdmin creates (or re-keys) the management account with the given
// credentials. Called on startup from configuration.
func (s *AuthService) SeedAdmin(ctx context.Context, userName, password string) error {
	salt, err := auth.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generating salt: %w", err)
	}

	admin := &models.Admin{
		UserName: userName,
		Salt:     salt,
		Verifier: auth.MakeVerifier(auth.DeriveKey([]byte(password), salt)),
	}

	repo := s.repomanager.Admins(s.db)
	if _, err := repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// Login verifies the credentials and issues an access token. Unknown account
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, userName, password string) (string, error) {
	repo := s.repomanager.Admins(s.db)

	admin, err := repo.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword([]byte(password), admin.Salt, admin.Verifier) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(admin.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// ValidateToken checks a bearer token and returns the admin ID it names.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	return auth.GetAdminIDFromToken(tokenString, s.jwtSecret)
}
