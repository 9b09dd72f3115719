package turnstile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultVerifyURL is Cloudflare's siteverify endpoint.
const DefaultVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Tokens longer than this are rejected without a network call.
const maxTokenLength = 2048

const maxResponseBytes = 64 << 10

var (
	ErrMissingToken  = errors.New("turnstile: token is required")
	ErrRejected      = errors.New("turnstile: verification rejected")
	ErrUnavailable   = errors.New("turnstile: verification unavailable")
	ErrInvalidConfig = errors.New("turnstile: invalid configuration")
)

// Response is the siteverify reply.
type Response struct {
	Success     bool     `json:"success"`
	ErrorCodes  []string `json:"error-codes"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	Action      string   `json:"action"`
	CData       string   `json:"cdata"`
}

// Verifier checks Turnstile tokens against siteverify.
type Verifier struct {
	secret   string
	url      string
	hostname string
	client   *http.Client
	logger   *slog.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithHTTPClient replaces the HTTP client. The client's own timeout is
// kept as is.
func WithHTTPClient(c *http.Client) Option {
	return func(v *Verifier) {
		if c != nil {
			v.client = c
		}
	}
}

// WithLogger sets the logger for verification failures.
func WithLogger(l *slog.Logger) Option {
	return func(v *Verifier) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a Verifier from cfg.
func New(cfg Config, opts ...Option) (*Verifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	v := &Verifier{
		secret:   cfg.SecretKey,
		url:      cfg.VerifyURL,
		hostname: strings.ToLower(cfg.ExpectedHostname),
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   slog.New(slog.DiscardHandler),
	}
	if v.url == "" {
		v.url = DefaultVerifyURL
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Verify posts token and the optional client IP to siteverify. It returns
// ErrMissingToken for an empty token, ErrRejected for a negative verdict or
// hostname mismatch, and ErrUnavailable when no verdict could be obtained.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) (*Response, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}
	if len(token) > maxTokenLength {
		return nil, fmt.Errorf("%w: token too long", ErrRejected)
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.WarnContext(ctx, "turnstile request failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		v.logger.WarnContext(ctx, "turnstile returned non-2xx", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var result Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	if !result.Success {
		v.logger.InfoContext(ctx, "turnstile rejected token",
			slog.Any("error_codes", result.ErrorCodes),
			slog.Duration("took", time.Since(start)),
		)
		return &result, fmt.Errorf("%w: %s", ErrRejected, strings.Join(result.ErrorCodes, ","))
	}
	if v.hostname != "" && !strings.EqualFold(result.Hostname, v.hostname) {
		v.logger.WarnContext(ctx, "turnstile hostname mismatch",
			slog.String("hostname", result.Hostname),
			slog.String("expected", v.hostname),
		)
		return &result, fmt.Errorf("%w: hostname %q", ErrRejected, result.Hostname)
	}

	return &result, nil
}
