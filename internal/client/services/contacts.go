package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/btxcapital/site/internal/client/api"
	"github.com/btxcapital/site/internal/client/models"
)

var (
	// ErrEmailRequired and ErrMessageRequired reject a contact draft before
	// any network call is made.
	ErrEmailRequired   = errors.New("email is required")
	ErrMessageRequired = errors.New("message is required")
)

// Fixed status strings shown by the contact form.
const (
	ContactSubmitSuccess = "Message sent successfully!"
	ContactSubmitFailure = "Failed to send message. Please try again."
)

// ContactsService is the contact-message intake and review pipeline: the
// public submission path and the admin-side listing.
type ContactsService struct {
	api *api.Client
}

func NewContactsService(apiClient *api.Client) *ContactsService {
	return &ContactsService{api: apiClient}
}

// Submit validates the draft locally and posts it. Required fields missing
// from the draft fail immediately with zero network calls; the caller keeps
// the draft intact on any failure so the visitor can retry without retyping.
func (s *ContactsService) Submit(ctx context.Context, draft models.ContactDraft) error {
	if draft.Email == "" {
		return ErrEmailRequired
	}
	if draft.Message == "" {
		return ErrMessageRequired
	}

	payload := map[string]string{
		"first_name": draft.FirstName,
		"last_name":  draft.LastName,
		"email":      draft.Email,
		"message":    draft.Message,
	}
	if err := s.api.PostJSON(ctx, "/contacts", payload, nil); err != nil {
		return fmt.Errorf("submitting contact message: %w", err)
	}
	return nil
}

// FetchAll lists every stored contact message for the admin view. The
// credential is attached by the gateway; a rejected or absent credential
// surfaces as a plain fetch failure, not as a re-authentication prompt.
// Messages keep the backend's ordering.
func (s *ContactsService) FetchAll(ctx context.Context) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := s.api.GetJSON(ctx, "/contacts/admin/", &msgs); err != nil {
		return nil, fmt.Errorf("fetching contacts: %w", err)
	}
	return msgs, nil
}
