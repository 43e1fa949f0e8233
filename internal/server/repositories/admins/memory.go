package admins

import (
	"context"
	"strconv"
	"sync"

	"github.com/btxcapital/site/internal/common"
	"github.com/btxcapital/site/internal/server/models"
)

// MemoryRepository is an in-memory Repository used in tests and in the
// in-memory repository manager.
type MemoryRepository struct {
	mu     sync.RWMutex
	byName map[string]*models.Admin
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byName: make(map[string]*models.Admin)}
}

func (r *MemoryRepository) Create(_ context.Context, admin *models.Admin) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[admin.UserName]; ok {
		admin.ID = existing.ID
	} else {
		r.nextID++
		admin.ID = strconv.FormatInt(r.nextID, 10)
	}

	stored := *admin
	r.byName[admin.UserName] = &stored
	return admin, nil
}

func (r *MemoryRepository) GetByUserName(_ context.Context, userName string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.byName[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}

	found := *admin
	return &found, nil
}
