package rest

import (
	"net/http"
	"strings"

	"github.com/btxcapital/site/internal/logging"
	"github.com/btxcapital/site/internal/server/services"
)

// RouterOptions carries the optional pieces of the HTTP surface.
type RouterOptions struct {
	// StaticDir, when set, is served under StaticPrefix so locally stored
	// uploads are reachable by URL.
	StaticDir    string
	StaticPrefix string
}

// NewRouter assembles the public and admin endpoints. Admin routes sit
// behind bearer-token auth; everything is wrapped with CORS and request
// logging.
func NewRouter(
	logger logging.Logger,
	auth *services.AuthService,
	contacts *services.ContactService,
	news *services.NewsService,
	opts RouterOptions,
) http.Handler {
	authHandler := NewAuthHandler(auth)
	contactHandler := NewContactHandler(contacts)
	newsHandler := NewNewsHandler(news)

	requireAuth := RequireAuth(auth)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	mux.HandleFunc("POST /api/contacts", contactHandler.Submit)
	mux.Handle("GET /api/contacts/admin/", requireAuth(http.HandlerFunc(contactHandler.AdminList)))

	mux.HandleFunc("GET /api/news", newsHandler.List)
	mux.Handle("POST /api/news/admin", requireAuth(http.HandlerFunc(newsHandler.Create)))
	mux.Handle("DELETE /api/news/admin/{id}", requireAuth(http.HandlerFunc(newsHandler.Delete)))

	if opts.StaticDir != "" {
		prefix := opts.StaticPrefix
		if !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
		fs := http.FileServer(http.Dir(opts.StaticDir))
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, fs))
	}

	var handler http.Handler = mux
	handler = CORS(handler)
	handler = WithLogging(logger)(handler)
	return handler
}
