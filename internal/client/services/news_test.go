package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/btxcapital/site/internal/client/api"
	"github.com/btxcapital/site/internal/client/models"
	"github.com/btxcapital/site/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNewsFixture(t *testing.T, handler http.HandlerFunc) (*NewsService, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess, err := session.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewNewsService(api.New(srv.URL, srv.Client(), sess), sess), sess
}

func TestFetchAll_NormalizesFieldNameVariants(t *testing.T) {
	svc, _ := newNewsFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/news", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":1,"title":"snake","pdf_url":"/uploads/a.pdf","read_time":4,"created_at":"2025-03-01"},
			{"id":2,"title":"camel","pdfUrl":"/uploads/b.pdf","readTime":"7 min read","createdAt":"2025-03-02"},
			{"id":3,"title":"date field","date":"2025-03-03"}
		]`))
	})

	list, err := svc.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Articles, 3)

	a, b, c := list.Articles[0], list.Articles[1], list.Articles[2]

	assert.Equal(t, "/uploads/a.pdf", a.PDFURL)
	assert.True(t, a.IsPDF())
	assert.Equal(t, "4 min read", a.ReadTime)
	assert.Equal(t, "2025-03-01", a.Date)

	assert.Equal(t, "/uploads/b.pdf", b.PDFURL)
	assert.Equal(t, "7 min read", b.ReadTime)
	assert.Equal(t, "2025-03-02", b.Date)

	assert.False(t, c.IsPDF())
	assert.Empty(t, c.ReadTime)
	assert.Equal(t, "2025-03-03", c.Date)
}

func TestFetchAll_SequenceIsMonotonic(t *testing.T) {
	svc, _ := newNewsFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	first, err := svc.FetchAll(context.Background())
	require.NoError(t, err)
	second, err := svc.FetchAll(context.Background())
	require.NoError(t, err)

	assert.Greater(t, second.Seq, first.Seq,
		"a renderer must be able to drop results older than the newest applied one")
}

func TestCreate_EmptyTitleFailsLocally(t *testing.T) {
	var calls int
	svc, _ := newNewsFixture(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

	_, err := svc.Create(context.Background(), models.NewsDraft{Excerpt: "no title"})
	assert.ErrorIs(t, err, ErrMissingTitle)
	assert.Zero(t, calls, "local validation must issue zero network calls")
}

func TestCreate_SendsMultipartFieldsAndExplicitBearer(t *testing.T) {
	var (
		gotAuth   string
		gotFields map[string]string
		gotFile   []byte
		gotName   string
	)
	svc, sess := newNewsFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/news/admin", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for k := range r.MultipartForm.Value {
			gotFields[k] = r.FormValue(k)
		}
		f, hdr, err := r.FormFile("pdf")
		require.NoError(t, err)
		defer f.Close()
		gotName = hdr.Filename
		gotFile, err = io.ReadAll(f)
		require.NoError(t, err)

		_, _ = w.Write([]byte(`{"id":11,"title":"Q1 Report","pdf_url":"/uploads/q1.pdf","read_time":1}`))
	})
	require.NoError(t, sess.Set("create-tok"))

	draft := models.NewsDraft{
		Title:    "Q1 Report",
		Excerpt:  "Summary",
		Content:  "Para1\n\nPara2",
		Category: "Markets",
		PDF:      &models.DraftFile{Name: "q1.pdf", Data: []byte("%PDF-1.4 fake")},
	}
	created, err := svc.Create(context.Background(), draft)
	require.NoError(t, err)

	assert.Equal(t, "Bearer create-tok", gotAuth)
	assert.Equal(t, "Q1 Report", gotFields["title"])
	assert.Equal(t, "Summary", gotFields["excerpt"])
	assert.Equal(t, "Para1\n\nPara2", gotFields["content"])
	assert.Equal(t, "Markets", gotFields["category"])
	assert.Equal(t, "q1.pdf", gotName)
	assert.Equal(t, []byte("%PDF-1.4 fake"), gotFile)

	assert.Equal(t, int64(11), created.ID)
	assert.True(t, created.IsPDF())
	assert.Equal(t, "1 min read", created.ReadTime)
}

func TestCreate_WithoutFileOmitsPart(t *testing.T) {
	svc, _ := newNewsFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("pdf")
		assert.Error(t, err, "no pdf part expected")
		_, _ = w.Write([]byte(`{"id":12,"title":"Plain"}`))
	})

	created, err := svc.Create(context.Background(), models.NewsDraft{Title: "Plain"})
	require.NoError(t, err)
	assert.False(t, created.IsPDF())
}

func TestCreate_SurfacesServerMessage(t *testing.T) {
	svc, _ := newNewsFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"msg":"category unknown"}`))
	})

	_, err := svc.Create(context.Background(), models.NewsDraft{Title: "X"})
	require.Error(t, err)
	assert.Equal(t, "category unknown", api.ServerMessage(err))
}

func TestDelete_CallsEndpointWithID(t *testing.T) {
	var gotPath, gotMethod string
	svc, _ := newNewsFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, svc.Delete(context.Background(), 42))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/news/admin/42", gotPath)
}

func TestDelete_FailurePropagates(t *testing.T) {
	svc, _ := newNewsFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"no such article"}`))
	})

	err := svc.Delete(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, "no such article", api.ServerMessage(err))
}
