package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/btxcapital/site/internal/client/api"
	"github.com/btxcapital/site/internal/client/models"
	"github.com/btxcapital/site/internal/client/session"
	"github.com/btxcapital/site/internal/common"
)

// ErrMissingTitle rejects a news draft whose title is empty, before any
// network call is made.
var ErrMissingTitle = errors.New("title is required")

// Fixed status strings shown by the creation form.
const (
	NewsCreateSuccess        = "Article created successfully!"
	NewsCreateFailureGeneric = "Failed to create article"
)

// pdfFieldName is the fixed multipart field carrying the optional attachment.
const pdfFieldName = "pdf"

// NewsList is one FetchAll result. Seq increases monotonically per service so
// a renderer can drop a stale in-flight response that resolves after a newer
// one has already been applied.
type NewsList struct {
	Seq      uint64
	Articles []models.NewsArticle
}

// NewsService is the create/list/delete pipeline for news articles.
type NewsService struct {
	api     *api.Client
	session *session.Store
	seq     atomic.Uint64
}

func NewNewsService(apiClient *api.Client, sess *session.Store) *NewsService {
	return &NewsService{api: apiClient, session: sess}
}

// rawArticle tolerates the field-name drift different backend versions have
// shipped. Normalization happens here and nowhere else; everything above this
// boundary sees only models.NewsArticle.
type rawArticle struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Excerpt      string `json:"excerpt"`
	Content      string `json:"content"`
	Category     string `json:"category"`
	PDFURL       string `json:"pdf_url"`
	PDFURLAlt    string `json:"pdfUrl"`
	ReadTime     string `json:"readTime"`
	ReadTimeMins int    `json:"read_time"`
	Date         string `json:"date"`
	CreatedAt    string `json:"created_at"`
	CreatedAlt   string `json:"createdAt"`
}

func normalize(r rawArticle) models.NewsArticle {
	a := models.NewsArticle{
		ID:       r.ID,
		Title:    r.Title,
		Excerpt:  r.Excerpt,
		Content:  r.Content,
		Category: r.Category,
		PDFURL:   r.PDFURL,
		ReadTime: r.ReadTime,
		Date:     r.Date,
	}
	if a.PDFURL == "" {
		a.PDFURL = r.PDFURLAlt
	}
	if a.ReadTime == "" && r.ReadTimeMins > 0 {
		a.ReadTime = fmt.Sprintf("%d min read", r.ReadTimeMins)
	}
	if a.Date == "" {
		a.Date = r.CreatedAt
	}
	if a.Date == "" {
		a.Date = r.CreatedAlt
	}
	return a
}

// FetchAll lists articles. The same endpoint serves the public news section
// and the admin view; a stored credential rides along but does not change the
// response. The returned Seq orders results across overlapping calls.
func (s *NewsService) FetchAll(ctx context.Context) (NewsList, error) {
	seq := s.seq.Add(1)

	var raw []rawArticle
	if err := s.api.GetJSON(ctx, "/news", &raw); err != nil {
		return NewsList{Seq: seq}, fmt.Errorf("fetching news: %w", err)
	}

	articles := make([]models.NewsArticle, 0, len(raw))
	for _, r := range raw {
		articles = append(articles, normalize(r))
	}
	return NewsList{Seq: seq, Articles: articles}, nil
}

// Create validates and submits a news draft as a multipart payload. An empty
// title fails locally without touching the network. The bearer credential is
// attached explicitly: creation requires authorization even though listing
// does not.
func (s *NewsService) Create(ctx context.Context, draft models.NewsDraft) (models.NewsArticle, error) {
	if draft.Title == "" {
		return models.NewsArticle{}, ErrMissingTitle
	}

	fields := map[string]string{
		"title":    draft.Title,
		"excerpt":  draft.Excerpt,
		"content":  draft.Content,
		"category": draft.Category,
	}
	var file *api.MultipartFile
	if draft.PDF != nil {
		file = &api.MultipartFile{Field: pdfFieldName, Name: draft.PDF.Name, Data: draft.PDF.Data}
	}

	extra := http.Header{}
	if token, ok := s.session.Get(); ok {
		extra.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	var created rawArticle
	if err := s.api.PostMultipart(ctx, "/news/admin", fields, file, extra, &created); err != nil {
		return models.NewsArticle{}, fmt.Errorf("creating article: %w", err)
	}
	return normalize(created), nil
}

// Delete hard-deletes an article. Irreversible; confirmation is the caller's
// responsibility and must happen before this is invoked.
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/news/admin/%d", id)); err != nil {
		return fmt.Errorf("deleting article %d: %w", id, err)
	}
	return nil
}
