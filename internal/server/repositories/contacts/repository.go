// Package contacts persists inquiries from the public contact form.
package contacts

import (
	"context"

	"github.com/btxcapital/site/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
}
