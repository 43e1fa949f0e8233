package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/btxcapital/site/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *session.Store {
	t.Helper()
	s, err := session.NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestClient_AttachesBearerWhenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	sess := newSession(t)
	c := New(srv.URL, srv.Client(), sess)

	_, err := c.Do(context.Background(), http.MethodGet, "/news", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "no credential stored, no header expected")

	require.NoError(t, sess.Set("tok-1"))
	_, err = c.Do(context.Background(), http.MethodGet, "/news", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestClient_ExtraHeadersTakePrecedence(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	sess := newSession(t)
	require.NoError(t, sess.Set("stored-token"))
	c := New(srv.URL, srv.Client(), sess)

	h := http.Header{}
	h.Set("Authorization", "Bearer explicit-token")
	_, err := c.Do(context.Background(), http.MethodPost, "/news/admin", nil, h)
	require.NoError(t, err)
	assert.Equal(t, "Bearer explicit-token", gotAuth)
}

func TestClient_ErrorMessagePriority(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"msg wins", `{"msg":"bad password","error":"other"}`, "bad password"},
		{"error as fallback", `{"error":"server blew up"}`, "server blew up"},
		{"generic fallback", `{"detail":"nope"}`, "request failed"},
		{"non-json body", `<html>teapot</html>`, "request failed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := New(srv.URL, srv.Client(), newSession(t))
			_, err := c.Do(context.Background(), http.MethodGet, "/contacts/admin/", nil, nil)
			require.Error(t, err)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestClient_TransportFailureIsNotTyped(t *testing.T) {
	c := New("http://127.0.0.1:0", nil, newSession(t))
	_, err := c.Do(context.Background(), http.MethodGet, "/news", nil, nil)
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "network failures carry no HTTP status")
}

func TestClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"title":"hello"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), newSession(t))
	var out []struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, c.GetJSON(context.Background(), "/news", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "hello", out[0].Title)
}

func TestServerMessage(t *testing.T) {
	assert.Equal(t, "boom", ServerMessage(&Error{Status: 500, Message: "boom"}))
	assert.Empty(t, ServerMessage(&Error{Status: 500, Message: "request failed"}))
	assert.Empty(t, ServerMessage(errors.New("dial tcp: refused")))
}
