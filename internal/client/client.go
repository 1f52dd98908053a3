// Package client talks to the movies HTTP API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"moviebrowser/internal/domain"
	"moviebrowser/internal/logging"

	"github.com/rs/zerolog"
)

const moviesPath = "/api/movies"

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
}

// Client fetches movie pages. It never retries.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	logger     zerolog.Logger
}

func New(cfg Config) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if raw == "" {
		return nil, errors.New("client: base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("client: parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("client: unsupported scheme %q", base.Scheme)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		base:       base,
		httpClient: hc,
		logger:     logging.NewLogger("client"),
	}, nil
}

// FetchPage requests one page of movies.
func (c *Client) FetchPage(ctx context.Context, page int) (domain.PageResult, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + moviesPath
	u.RawQuery = url.Values{"page": []string{strconv.Itoa(page)}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.PageResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Int("page", page).Msg("fetch failed")
		return domain.PageResult{}, fmt.Errorf("fetch page %d: %w", page, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Int("page", page).
		Int("status_code", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("fetched page")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.PageResult{}, decodeAPIError(resp)
	}

	var res domain.PageResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return domain.PageResult{}, fmt.Errorf("decode page %d: %w", page, err)
	}
	if res.TotalCount < 0 {
		return domain.PageResult{}, fmt.Errorf("decode page %d: negative totalMovies %d", page, res.TotalCount)
	}
	if res.Items == nil {
		res.Items = []domain.Movie{}
	}
	return res, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get("X-Request-ID"),
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
