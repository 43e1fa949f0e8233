package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/btxcapital/site/internal/dbx"
	"github.com/btxcapital/site/internal/server/models"
	"github.com/btxcapital/site/internal/server/repositories/repomanager"
	"github.com/btxcapital/site/internal/server/storage"
)

// ErrTitleRequired rejects article creation without a title.
var ErrTitleRequired = errors.New("title is required")

// wordsPerMinute drives the read-time estimate stored with each article.
const wordsPerMinute = 200

// Upload is an in-memory file received with an article submission.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

type NewsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.Storage
}

func NewNewsService(db *sql.DB, m repomanager.RepositoryManager, store storage.Storage) *NewsService {
	return &NewsService{db: db, repomanager: m, store: store}
}

// withTx runs fn transactionally when a real database is attached; with
// in-memory repositories it runs fn directly.
func (s *NewsService) withTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return dbx.WithTx(ctx, s.db, nil, fn)
}

// randomStorageKey builds a collision-free key for an uploaded document,
// keeping the original extension.
func randomStorageKey(fileName string) string {
	d := time.Now()
	return fmt.Sprintf("news/%d/%02d/%v%s", d.Year(), d.Month(), uuid.New(), path.Ext(fileName))
}

// estimateReadTime converts article text into a whole number of minutes,
// never less than one.
func estimateReadTime(text string) int {
	words := len(strings.Fields(text))
	minutes := words / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Create stores a new article. When a PDF upload is attached it is saved to
// the storage backend first and the resulting key and URL are recorded on the
// article. Read time is derived from the content.
func (s *NewsService) Create(ctx context.Context, article *models.NewsArticle, pdf *Upload) (*models.NewsArticle, error) {
	if article.Title == "" {
		return nil, ErrTitleRequired
	}

	if pdf != nil {
		key := randomStorageKey(pdf.Name)
		url, err := s.store.Save(ctx, key, bytes.NewReader(pdf.Data), pdf.ContentType)
		if err != nil {
			return nil, fmt.Errorf("error saving upload: %w", err)
		}
		article.PDFKey = key
		article.PDFURL = url
	}

	article.ReadTime = estimateReadTime(article.Content)

	repo := s.repomanager.News(s.db)

	article, err := repo.Create(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("error creating article: %w", err)
	}

	return article, nil
}

// List returns all articles, newest first.
func (s *NewsService) List(ctx context.Context) ([]models.NewsArticle, error) {
	repo := s.repomanager.News(s.db)
	return repo.List(ctx)
}

// Delete removes an article and, when one is attached, its stored document.
// The row lookup and deletion run in one transaction; the storage cleanup is
// best effort once the row is gone.
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	var pdfKey string

	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.News(s.dbOr(tx))

		article, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		pdfKey = article.PDFKey

		return repo.DeleteByID(ctx, id)
	})
	if err != nil {
		return err
	}

	if pdfKey != "" {
		_ = s.store.Delete(ctx, pdfKey)
	}

	return nil
}

func (s *NewsService) dbOr(tx dbx.DBTX) dbx.DBTX {
	if tx != nil {
		return tx
	}
	return s.db
}
