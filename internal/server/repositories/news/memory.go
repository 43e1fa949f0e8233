package news

import (
	"context"
	"sync"
	"time"

	"github.com/btxcapital/site/internal/common"
	"github.com/btxcapital/site/internal/server/models"
)

// MemoryRepository is an in-memory Repository used in tests and in the
// in-memory repository manager. Listing returns newest first, matching the
// PostgreSQL implementation.
type MemoryRepository struct {
	mu       sync.RWMutex
	articles []models.NewsArticle
	nextID   int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, article *models.NewsArticle) (*models.NewsArticle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	article.ID = r.nextID
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now()
	}
	r.articles = append(r.articles, *article)
	return article, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]models.NewsArticle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.NewsArticle, 0, len(r.articles))
	for i := len(r.articles) - 1; i >= 0; i-- {
		out = append(out, r.articles[i])
	}
	return out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*models.NewsArticle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.articles {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.articles {
		if a.ID == id {
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}
