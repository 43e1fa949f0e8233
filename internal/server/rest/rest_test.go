package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/btxcapital/site/internal/logging"
	"github.com/btxcapital/site/internal/server/config"
	"github.com/btxcapital/site/internal/server/repositories/repomanager"
	"github.com/btxcapital/site/internal/server/services"
)

// fakeStore records Save/Delete calls in memory.
type fakeStore struct {
	saved   map[string][]byte
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string][]byte)}
}

func (f *fakeStore) Save(_ context.Context, key string, data io.Reader, _ string) (string, error) {
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

type testEnv struct {
	handler  http.Handler
	store    *fakeStore
	auth     *services.AuthService
	contacts *services.ContactService
	news     *services.NewsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.AccessTokenValidityDuration = time.Hour

	m := repomanager.NewMemoryRepositoryManager()
	store := newFakeStore()

	auth := services.NewAuthService(nil, m, cfg)
	require.NoError(t, auth.SeedAdmin(context.Background(), "root", "s3cret"))

	contacts := services.NewContactService(nil, m)
	news := services.NewNewsService(nil, m, store)

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	handler := NewRouter(logger, auth, contacts, news, RouterOptions{})

	return &testEnv{
		handler:  handler,
		store:    store,
		auth:     auth,
		contacts: contacts,
		news:     news,
	}
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	token, err := e.auth.Login(context.Background(), "root", "s3cret")
	require.NoError(t, err)
	return token
}
