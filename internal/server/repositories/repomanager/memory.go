package repomanager

import (
	"context"
	"database/sql"

	"github.com/btxcapital/site/internal/dbx"
	"github.com/btxcapital/site/internal/server/repositories/admins"
	"github.com/btxcapital/site/internal/server/repositories/contacts"
	"github.com/btxcapital/site/internal/server/repositories/news"
)

// MemoryRepositoryManager vends shared in-memory repositories. The DBTX
// argument is ignored; there is no real database underneath. Used in tests.
type MemoryRepositoryManager struct {
	admins   *admins.MemoryRepository
	contacts *contacts.MemoryRepository
	news     *news.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		admins:   admins.NewMemoryRepository(),
		contacts: contacts.NewMemoryRepository(),
		news:     news.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Admins(dbx.DBTX) admins.Repository {
	return m.admins
}

func (m *MemoryRepositoryManager) Contacts(dbx.DBTX) contacts.Repository {
	return m.contacts
}

func (m *MemoryRepositoryManager) News(dbx.DBTX) news.Repository {
	return m.news
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}
