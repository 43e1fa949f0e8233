package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/btxcapital/site/internal/server/models"
	"github.com/btxcapital/site/internal/server/repositories/repomanager"
)

var (
	// ErrEmailRequired and ErrMessageRequired reject contact submissions
	// missing a mandatory field.
	ErrEmailRequired   = errors.New("email is required")
	ErrMessageRequired = errors.New("message is required")
)

type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m}
}

// Submit validates and stores one inquiry. Names are optional.
func (s *ContactService) Submit(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	if msg.Email == "" {
		return nil, ErrEmailRequired
	}
	if msg.Message == "" {
		return nil, ErrMessageRequired
	}

	repo := s.repomanager.Contacts(s.db)

	msg, err := repo.Create(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("error creating contact message: %w", err)
	}

	return msg, nil
}

// List returns all stored inquiries, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	repo := s.repomanager.Contacts(s.db)
	return repo.List(ctx)
}
