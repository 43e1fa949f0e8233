package cli

import (
	"bufio"
	"context"
	"net/http"
	"os"
	"sync/atomic"

	"github.com/btxcapital/site/internal/client/api"
	"github.com/btxcapital/site/internal/client/config"
	"github.com/btxcapital/site/internal/client/models"
	"github.com/btxcapital/site/internal/client/services"
	"github.com/btxcapital/site/internal/client/session"
)

// authService, contactService and newsService describe the slice of the
// service layer the console needs. The concrete services satisfy them;
// tests provide lightweight stubs.
type authService interface {
	Login(ctx context.Context, username, password string) error
	Logout()
	IsAuthenticated() bool
}

type contactService interface {
	Submit(ctx context.Context, draft models.ContactDraft) error
	FetchAll(ctx context.Context) ([]models.ContactMessage, error)
}

type newsService interface {
	FetchAll(ctx context.Context) (services.NewsList, error)
	Create(ctx context.Context, draft models.NewsDraft) (models.NewsArticle, error)
	Delete(ctx context.Context, id int64) error
}

type App struct {
	config          *config.Config
	authService     authService
	contactsService contactService
	newsService     newsService
	draft           models.NewsDraft
	appliedSeq      atomic.Uint64
	reader          *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	sess, err := session.NewStore(c.StateDir)
	if err != nil {
		return nil, err
	}

	apiClient := api.New(c.BaseURL, &http.Client{Timeout: c.RequestTimeout}, sess)

	return &App{
		config:          c,
		authService:     services.NewAuthService(apiClient, sess),
		contactsService: services.NewContactsService(apiClient),
		newsService:     services.NewNewsService(apiClient, sess),
		reader:          bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsAuthenticated()
}

// applySeq records a fetch sequence number and reports whether the result it
// belongs to is current. A response that resolves after a newer fetch has
// already been applied is stale and must be dropped.
func (a *App) applySeq(seq uint64) bool {
	for {
		cur := a.appliedSeq.Load()
		if seq <= cur {
			return false
		}
		if a.appliedSeq.CompareAndSwap(cur, seq) {
			return true
		}
	}
}
