// Package repomanager vends repository implementations bound to a database
// handle, so services can run several repositories inside one transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/btxcapital/site/internal/dbx"
	"github.com/btxcapital/site/internal/server/repositories/admins"
	"github.com/btxcapital/site/internal/server/repositories/contacts"
	"github.com/btxcapital/site/internal/server/repositories/news"
)

// RepositoryManager binds repositories to the provided DBTX, which may be a
// *sql.DB or an open transaction.
type RepositoryManager interface {
	Admins(db dbx.DBTX) admins.Repository
	Contacts(db dbx.DBTX) contacts.Repository
	News(db dbx.DBTX) news.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
