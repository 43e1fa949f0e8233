package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btxcapital/site/internal/common"
	"github.com/btxcapital/site/internal/server/models"
	"github.com/btxcapital/site/internal/server/repositories/repomanager"
)

// fakeStore records Save/Delete calls in memory.
type fakeStore struct {
	saved   map[string][]byte
	deleted []string
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string][]byte)}
}

func (f *fakeStore) Save(_ context.Context, key string, data io.Reader, _ string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	b, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	f.saved[key] = b
	return "/uploads/" + key, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func newNewsService(t *testing.T) (*NewsService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	return NewNewsService(nil, repomanager.NewMemoryRepositoryManager(), store), store
}

func TestEstimateReadTime(t *testing.T) {
	assert.Equal(t, 1, estimateReadTime(""))
	assert.Equal(t, 1, estimateReadTime("just a few words"))
	assert.Equal(t, 2, estimateReadTime(strings.Repeat("word ", 450)))
}

func TestNewsService_CreateRequiresTitle(t *testing.T) {
	s, store := newNewsService(t)

	_, err := s.Create(context.Background(), &models.NewsArticle{}, nil)
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Empty(t, store.saved)
}

func TestNewsService_CreateWithPDFStoresUpload(t *testing.T) {
	s, store := newNewsService(t)
	ctx := context.Background()

	article, err := s.Create(ctx, &models.NewsArticle{
		Title:   "Quarterly review",
		Content: "Short content.",
	}, &Upload{Name: "review.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")})
	require.NoError(t, err)

	assert.NotZero(t, article.ID)
	assert.Equal(t, 1, article.ReadTime)
	require.NotEmpty(t, article.PDFKey)
	assert.True(t, strings.HasPrefix(article.PDFKey, "news/"), "key %q", article.PDFKey)
	assert.True(t, strings.HasSuffix(article.PDFKey, ".pdf"), "key %q", article.PDFKey)
	assert.Equal(t, "/uploads/"+article.PDFKey, article.PDFURL)
	assert.Equal(t, []byte("%PDF-1.4"), store.saved[article.PDFKey])
}

func TestNewsService_CreateWithoutPDF(t *testing.T) {
	s, store := newNewsService(t)

	article, err := s.Create(context.Background(), &models.NewsArticle{Title: "Plain"}, nil)
	require.NoError(t, err)

	assert.Empty(t, article.PDFKey)
	assert.Empty(t, article.PDFURL)
	assert.Empty(t, store.saved)
}

func TestNewsService_ListNewestFirst(t *testing.T) {
	s, _ := newNewsService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, &models.NewsArticle{Title: "first"}, nil)
	require.NoError(t, err)
	_, err = s.Create(ctx, &models.NewsArticle{Title: "second"}, nil)
	require.NoError(t, err)

	articles, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "second", articles[0].Title)
}

func TestNewsService_DeleteRemovesRowAndUpload(t *testing.T) {
	s, store := newNewsService(t)
	ctx := context.Background()

	article, err := s.Create(ctx, &models.NewsArticle{Title: "With file"},
		&Upload{Name: "f.pdf", Data: []byte("x")})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, article.ID))

	articles, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, articles)
	assert.Equal(t, []string{article.PDFKey}, store.deleted)
}

func TestNewsService_DeleteMissing(t *testing.T) {
	s, store := newNewsService(t)

	err := s.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Empty(t, store.deleted)
}
