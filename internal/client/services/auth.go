// Package services contains the application services behind the management
// panel and the public site: the authentication flow, the contact intake
// pipeline, and the news management pipeline. Each service talks to the
// backend exclusively through the api gateway client.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/btxcapital/site/internal/client/api"
	"github.com/btxcapital/site/internal/client/session"
)

var (
	// ErrNoToken means the backend accepted the login but returned no usable
	// token. Treated as a failure despite HTTP success.
	ErrNoToken = errors.New("no token returned")

	// ErrInvalidCredentials means the backend rejected the username/password
	// pair. The wrapped message, when present, comes from the server.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService exchanges a username/password pair for a bearer credential and
// owns the login/logout lifecycle of the session store.
type AuthService struct {
	api     *api.Client
	session *session.Store
}

func NewAuthService(apiClient *api.Client, sess *session.Store) *AuthService {
	return &AuthService{api: apiClient, session: sess}
}

// loginResponse probes the token field names different backend versions have
// used, in the order the panel has always checked them.
type loginResponse struct {
	AccessToken      string `json:"access_token"`
	Token            string `json:"token"`
	AccessTokenCamel string `json:"accessToken"`
}

func (r loginResponse) token() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	if r.Token != "" {
		return r.Token
	}
	return r.AccessTokenCamel
}

// Login authenticates against the backend and persists the returned token.
//
// The token is durably stored before Login returns success, so a caller that
// navigates to the management panel on a nil error is guaranteed to observe
// an authenticated session even across an immediate restart.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	var resp loginResponse
	err := s.api.PostJSON(ctx, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if err != nil {
		if msg := api.ServerMessage(err); msg != "" {
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, msg)
		}
		return ErrInvalidCredentials
	}

	token := resp.token()
	if token == "" {
		return ErrNoToken
	}

	if err := s.session.Set(token); err != nil {
		return fmt.Errorf("storing token: %w", err)
	}
	return nil
}

// Logout clears the stored credential. Unconditional; a missing token is not
// an error and a storage hiccup is swallowed (the next request simply goes
// out unauthenticated).
func (s *AuthService) Logout() {
	_ = s.session.Clear()
}

// IsAuthenticated reports whether a credential is stored. The check is
// purely local, so an expired token still answers true here and fails only
// once an authorized call reaches the backend.
func (s *AuthService) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}
