package contacts

import (
	"context"
	"sync"
	"time"

	"github.com/btxcapital/site/internal/server/models"
)

// MemoryRepository is an in-memory Repository used in tests and in the
// in-memory repository manager. Listing returns newest first, matching the
// PostgreSQL implementation.
type MemoryRepository struct {
	mu     sync.RWMutex
	msgs   []models.ContactMessage
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	msg.ID = r.nextID
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	r.msgs = append(r.msgs, *msg)
	return msg, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]models.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ContactMessage, 0, len(r.msgs))
	for i := len(r.msgs) - 1; i >= 0; i-- {
		out = append(out, r.msgs[i])
	}
	return out, nil
}
