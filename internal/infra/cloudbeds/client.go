// Package cloudbeds talks to the property management system that owns room
// inventory and reservations.
package cloudbeds

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/errs"
)

const (
	defaultTimeout    = 15 * time.Second
	errorBodyReadSize = 1024
)

// Client implements shared.AvailabilityProvider and shared.ReservationSink.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	propertyID string
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/"); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

func NewClient(cfg config.CloudbedsConfig, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errs.New("cloudbeds api key is required")
	}
	if strings.TrimSpace(cfg.PropertyID) == "" {
		return nil, errs.New("cloudbeds property id is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		propertyID: cfg.PropertyID,
		logger:     slog.Default().With("component", "cloudbeds"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, form url.Values, out any) error {
	endpoint := c.baseURL + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errs.Wrapf(err, "build %s request", path)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "call %s", path), errs.ErrProviderUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadSize))
		c.logger.WarnContext(ctx, "cloudbeds request failed",
			"path", path,
			"status", resp.StatusCode,
			"body", string(snippet))
		return errs.Mark(errs.Newf("%s returned status %d", path, resp.StatusCode), errs.ErrProviderUnavailable)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "read %s response", path), errs.ErrProviderUnavailable)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errs.Mark(errs.Wrapf(err, "decode %s response", path), errs.ErrProviderUnavailable)
	}
	if !env.Success {
		return errs.Mark(errs.Newf("%s rejected: %s", path, env.Message), errs.ErrProviderUnavailable)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Mark(errs.Wrapf(err, "decode %s payload", path), errs.ErrProviderUnavailable)
	}
	return nil
}

// flexInt accepts both 2 and "2"; the API is not consistent between endpoints.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}
