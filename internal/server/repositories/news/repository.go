// Package news persists publishable articles.
package news

import (
	"context"

	"github.com/btxcapital/site/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, article *models.NewsArticle) (*models.NewsArticle, error)
	List(ctx context.Context) ([]models.NewsArticle, error)
	GetByID(ctx context.Context, id int64) (*models.NewsArticle, error)
	DeleteByID(ctx context.Context, id int64) error
}
