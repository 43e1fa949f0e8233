// Package admins persists management accounts.
package admins

import (
	"context"

	"github.com/btxcapital/site/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, admin *models.Admin) (*models.Admin, error)
	GetByUserName(ctx context.Context, userName string) (*models.Admin, error)
}
