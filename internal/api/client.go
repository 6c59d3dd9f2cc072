package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/fragmede/bidcraft/internal/render"
)

const (
	defaultBaseURL = "http://localhost:8000"
	userAgent      = "bidcraft/1.0"
	maxErrorBody   = 200
)

// Backend endpoints.
const (
	PathUpdateCredentials = "/update-credentials"
	PathProcessComments   = "/process-comments"
	PathUpdateUserAnswer  = "/update-user-answer"
	PathGetLogs           = "/get-logs"
	PathGetCredentials    = "/get-credentials"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// IsStatusError reports whether err was caused by a non-2xx response, as
// opposed to the backend being unreachable or replying with garbage.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// Client talks to the comment-processing backend.
type Client struct {
	http    *http.Client
	baseURL string
	flight  singleflight.Group
}

// NewClient creates a backend client. A zero timeout means requests wait
// until the backend answers or the context is cancelled.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the backend address the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues a request and decodes the JSON response into a fresh T.
// Identical requests already in flight share one round trip.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values) (*T, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	v, err, shared := c.flight.Do(method+" "+u, func() (interface{}, error) {
		var dst T
		if err := c.send(ctx, method, u, &dst); err != nil {
			return nil, err
		}
		return &dst, nil
	})
	if shared {
		log.Debug("joined in-flight request", "method", method, "path", path)
	}
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}

func (c *Client) send(ctx context.Context, method, u string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("backend unreachable", "method", method, "path", req.URL.Path, "err", err)
		return fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	log.Debug("backend response", "method", method, "path", req.URL.Path,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &StatusError{
			StatusCode: resp.StatusCode,
			URL:        req.URL.Path,
			Body:       render.Summarize(string(body), maxErrorBody),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", req.URL.Path, err)
	}
	return nil
}
