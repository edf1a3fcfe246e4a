// Package sources provides reusable search functions for the typeahead
// widget: a remote HTTP endpoint wrapper and an in-memory prefix trie.
package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"typeahead/internal/domain"
	"typeahead/internal/typeahead"
)

const defaultLoginPath = "/login"

// HTTPOptions tunes a search function built by NewHTTPSearch
type HTTPOptions struct {
	// Client defaults to one with a 10s timeout
	Client *http.Client
	// Limiter, when set, throttles outgoing search requests
	Limiter *rate.Limiter
	// LoginPath marks the endpoint a session-expired redirect lands on.
	// Defaults to "/login".
	LoginPath string
}

// NewHTTPSearch wraps a query-to-URL function into a SearchFunc. The
// response must be a JSON array; its elements are handed to the widget as
// opaque items. Two failure conditions are told apart: a redirect onto the
// login endpoint (expired session) and everything else (server problem).
func NewHTTPSearch(buildURL func(query string) string, opts HTTPOptions) typeahead.SearchFunc {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	loginPath := opts.LoginPath
	if loginPath == "" {
		loginPath = defaultLoginPath
	}

	return func(ctx context.Context, query string) ([]any, error) {
		if opts.Limiter != nil {
			if err := opts.Limiter.Wait(ctx); err != nil {
				return nil, domain.NewServerError(err)
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(query), nil)
		if err != nil {
			return nil, domain.NewServerError(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, domain.NewServerError(err)
		}
		defer resp.Body.Close()

		if isLoginRedirect(resp, loginPath) {
			return nil, domain.NewSessionExpiredError()
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, domain.NewServerError(fmt.Errorf("unexpected status %s", resp.Status))
		}

		var items []any
		if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
			return nil, domain.NewServerError(fmt.Errorf("payload is not a list: %w", err))
		}
		return items, nil
	}
}

// isLoginRedirect detects a session-expired response, whether the client
// followed the redirect onto the login page or was handed the 3xx itself.
func isLoginRedirect(resp *http.Response, loginPath string) bool {
	if resp.Request != nil && resp.Request.URL != nil &&
		strings.HasPrefix(resp.Request.URL.Path, loginPath) {
		return true
	}
	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		return strings.Contains(resp.Header.Get("Location"), loginPath)
	}
	return false
}
