// Package api is the gateway through which every backend call passes.
//
// The client attaches the bearer credential from the session store to each
// outgoing request, merges caller-supplied headers on top, and converts
// non-2xx responses into typed errors carrying the status code and the
// server-supplied message. It does not retry and it does not cache.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/btxcapital/site/internal/client/session"
	"github.com/btxcapital/site/internal/common"
)

// Client issues HTTP requests against the backend base URL.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
}

// New builds a Client. The session store is consulted on every request; a
// credential appearing after construction is picked up automatically.
func New(baseURL string, httpClient *http.Client, sess *session.Store) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		session: sess,
	}
}

// errorBody is the shape probed for a server-supplied failure message.
// Fields are checked in priority order: msg, then error.
type errorBody struct {
	Msg   string `json:"msg"`
	Error string `json:"error"`
}

// Do performs one request. body may be nil. extra headers are applied after
// the credential injection, so a caller-supplied Authorization (or
// Content-Type for multipart) takes precedence.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, extra http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}

	if token, ok := c.session.Get(); ok {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	for k, vs := range extra {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Status: resp.StatusCode, Message: extractMessage(data)}
	}
	return data, nil
}

func extractMessage(data []byte) string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Msg != "" {
			return body.Msg
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fallbackMessage
}

// GetJSON fetches path and unmarshals the response body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	data, err := c.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: decode %s: %w", path, err)
	}
	return nil
}

// PostJSON sends in as a JSON body and, when out is non-nil, unmarshals the
// response into it.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("api: encode %s: %w", path, err)
	}

	h := http.Header{}
	h.Set("Content-Type", "application/json")
	data, err := c.Do(ctx, http.MethodPost, path, bytes.NewReader(payload), h)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: decode %s: %w", path, err)
	}
	return nil
}

// Delete issues a DELETE to path, discarding any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// MultipartFile is one file part of a multipart POST.
type MultipartFile struct {
	Field string
	Name  string
	Data  []byte
}

// PostMultipart encodes fields and an optional file as multipart/form-data
// and posts it. extra headers are merged on top of the generated Content-Type.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, file *MultipartFile, extra http.Header, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("api: multipart field %s: %w", k, err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return fmt.Errorf("api: multipart file: %w", err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return fmt.Errorf("api: multipart file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("api: multipart close: %w", err)
	}

	h := http.Header{}
	for k, vs := range extra {
		h[k] = vs
	}
	h.Set("Content-Type", w.FormDataContentType())

	data, err := c.Do(ctx, http.MethodPost, path, &buf, h)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: decode %s: %w", path, err)
	}
	return nil
}
