package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultTimeout bounds every provider call
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is sent when no user agent is configured
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// maxErrorBody caps how much of a failed response is kept in the error
	maxErrorBody = 512
)

// Error reports a failed call to a provider. StatusCode is zero when the
// request never got a response.
type Error struct {
	Provider   string
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: upstream returned status %d", e.Provider, e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config holds the settings shared by provider clients
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// Query is appended to every request (credentials and the like)
	Query url.Values
}

// Fetcher issues GET requests against a single provider
type Fetcher struct {
	provider   string
	baseURL    string
	userAgent  string
	query      url.Values
	httpClient *http.Client
}

// NewFetcher creates a fetcher for the named provider
func NewFetcher(provider string, cfg Config) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	return &Fetcher{
		provider:  provider,
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		query:     cfg.Query,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Get fetches path with the given query parameters and returns the body.
// op names the calling operation in errors.
func (f *Fetcher) Get(ctx context.Context, op, path string, params url.Values) ([]byte, error) {
	u, err := url.Parse(f.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("parsing url: %w", err)
	}

	q := u.Query()
	for key, values := range f.query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json, text/html;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Provider: f.provider, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &Error{
			Provider:   f.provider,
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Err:        fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Provider: f.provider, Op: op, Err: fmt.Errorf("reading body: %w", err)}
	}

	return body, nil
}

// GetJSON fetches path and decodes the JSON body into v
func (f *Fetcher) GetJSON(ctx context.Context, op, path string, params url.Values, v interface{}) error {
	body, err := f.Get(ctx, op, path, params)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &Error{Provider: f.provider, Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return nil
}

// Close releases idle keep-alive connections
func (f *Fetcher) Close() {
	f.httpClient.CloseIdleConnections()
}
