package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// API constants
const (
	DefaultEndpoint = "https://api.mymemory.translated.net/get"
	DefaultTimeout  = 10 * time.Second

	ParamQuery    = "q"
	ParamLangPair = "langpair"
	ParamContact  = "de"

	AutoLanguage = "auto"

	// maxErrorBody bounds how much of an error response ends up in messages
	maxErrorBody = 256
)

var (
	// ErrFailed is wrapped by every error returned from Translate
	ErrFailed = errors.New("translation failed")

	// ErrEmptyText is returned when there is nothing to translate
	ErrEmptyText = errors.New("text is empty")

	// ErrInvalidTarget is returned when "auto" is requested as target language
	ErrInvalidTarget = errors.New("auto is only valid as source language")
)

// apiResponse mirrors the part of the MyMemory payload the client reads
type apiResponse struct {
	ResponseData *struct {
		TranslatedText *string `json:"translatedText"`
	} `json:"responseData"`
	ResponseDetails string `json:"responseDetails"`
}

// Client talks to the remote translation endpoint. It is safe for concurrent use.
type Client struct {
	endpoint   string
	contact    string
	timeout    time.Duration
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithEndpoint overrides the API endpoint
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithContact sets the e-mail sent as the "de" parameter
func WithContact(email string) Option {
	return func(c *Client) {
		c.contact = strings.TrimSpace(email)
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new translation client
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// Endpoint returns the configured endpoint
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Timeout returns the configured request timeout
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Translate performs exactly one request. Identical calls are always re-sent.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %w", ErrFailed, ErrEmptyText)
	}
	if source == "" {
		source = AutoLanguage
	}
	if target == "" || target == AutoLanguage {
		return "", fmt.Errorf("%w: %w", ErrFailed, ErrInvalidTarget)
	}

	reqURL, err := c.buildURL(text, source, target)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("langpair", langPair(source, target)).Msg("translation request failed")
		return "", fmt.Errorf("%w: %v", ErrFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", ErrFailed, err)
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Str("langpair", langPair(source, target)).
		Dur("elapsed", time.Since(started)).
		Msg("translation response received")

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("%w: HTTP %d: %s", ErrFailed, resp.StatusCode, truncate(string(body), maxErrorBody))
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: invalid response: %v", ErrFailed, err)
	}

	if payload.ResponseData == nil || payload.ResponseData.TranslatedText == nil {
		c.log.Warn().Str("details", payload.ResponseDetails).Msg("response without translated text")
		return "", nil
	}
	return *payload.ResponseData.TranslatedText, nil
}

// buildURL appends the query parameters to the endpoint
func (c *Client) buildURL(text, source, target string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid endpoint %q: scheme must be http or https", c.endpoint)
	}

	q := u.Query()
	q.Set(ParamQuery, text)
	q.Set(ParamLangPair, langPair(source, target))
	if c.contact != "" {
		q.Set(ParamContact, c.contact)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func langPair(source, target string) string {
	return source + "|" + target
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
