// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/jazbelrose/mylg-sync/internal/config"
	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/internal/metrics"
	"github.com/jazbelrose/mylg-sync/internal/utils"
	"github.com/rs/zerolog"
)

const (
	defaultRetryCount       = 3
	defaultRetryDelay       = 500 * time.Millisecond
	defaultRateLimit        = 30
	defaultRateWindow       = time.Minute
	defaultAuthPollAttempts = 5
	defaultAuthPollInterval = 300 * time.Millisecond

	csrfHeader = "X-CSRF-Token"
)

var emptyObject = json.RawMessage("{}")

// RetryPolicy is a fixed-delay retry budget. Count is the number of retries
// after the first attempt.
type RetryPolicy struct {
	Count int
	Delay time.Duration
}

// Request describes one logical call. A nil Retry uses the client default.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    any

	Retry         *RetryPolicy
	SkipRateLimit bool

	// OnNetworkError receives the normalized error before Do returns it
	// when the request failed at the transport level.
	OnNetworkError func(error)
}

// RequestClient sends JSON requests to the remote API.
type RequestClient struct {
	client *utils.HTTPClient

	tokens TokenProvider
	csrf   CSRFProvider
	audit  AuditSink

	limiter Limiter
	retry   RetryPolicy

	pollAttempts int
	pollInterval time.Duration

	metrics *metrics.Metrics
	logger  *logger.Logger
	now     func() time.Time
}

// ClientOption configures a [RequestClient].
type ClientOption func(*RequestClient)

// WithCSRFProvider sets the source of the CSRF token for mutating verbs.
func WithCSRFProvider(p CSRFProvider) ClientOption {
	return func(c *RequestClient) { c.csrf = p }
}

// WithAuditSink replaces the default log-based audit sink.
func WithAuditSink(s AuditSink) ClientOption {
	return func(c *RequestClient) { c.audit = s }
}

// WithLimiter replaces the default sliding-window limiter.
func WithLimiter(l Limiter) ClientOption {
	return func(c *RequestClient) { c.limiter = l }
}

// WithMetrics records request outcomes on m.
func WithMetrics(m *metrics.Metrics) ClientOption {
	return func(c *RequestClient) { c.metrics = m }
}

// WithClock sets the clock used for token expiry checks.
func WithClock(now func() time.Time) ClientOption {
	return func(c *RequestClient) { c.now = now }
}

// NewRequestClient builds a client for cfg.HTTPAddress. Unset rate and
// polling limits fall back to 30 requests per path per minute and 5 token
// polls 300ms apart. A negative retry count or delay falls back to 3 retries
// 500ms apart; zero retries is honoured.
func NewRequestClient(cfg config.ClientAdapter, tokens TokenProvider, log *logger.Logger, opts ...ClientOption) (*RequestClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if log == nil {
		log = logger.Nop()
	}

	c := &RequestClient{
		client:       utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		tokens:       tokens,
		retry:        RetryPolicy{Count: cfg.RetryCount, Delay: cfg.RetryDelay},
		pollAttempts: cfg.AuthPollAttempts,
		pollInterval: cfg.AuthPollInterval,
		logger:       log.Component("request-client"),
		now:          time.Now,
	}
	if c.retry.Count < 0 {
		c.retry.Count = defaultRetryCount
	}
	if c.retry.Delay < 0 {
		c.retry.Delay = defaultRetryDelay
	}
	if c.pollAttempts <= 0 {
		c.pollAttempts = defaultAuthPollAttempts
	}
	if c.pollInterval <= 0 {
		c.pollInterval = defaultAuthPollInterval
	}

	limit, window := cfg.RateLimit, cfg.RateWindow
	if limit <= 0 {
		limit = defaultRateLimit
	}
	if window <= 0 {
		window = defaultRateWindow
	}
	c.limiter = NewSlidingWindowLimiter(limit, window)
	c.audit = NewLogAuditSink(c.logger)

	for _, opt := range opts {
		opt(c)
	}
	if c.tokens == nil {
		c.tokens = NewStaticTokens("", "")
	}

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// transportError marks an attempt that failed before any response arrived.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

// Do sends req and returns the decoded JSON body.
//
// The rate limit is checked first and fails fast with [ErrRateLimited]. The
// bearer token is then awaited once. 503 responses and transport failures
// are retried with a fixed delay; any other non-2xx status fails at once.
// An empty, non-JSON or unparsable 2xx body yields {}.
func (c *RequestClient) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	start := time.Now()
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}
	log := logger.FromContext(ctx, c.logger).With().
		Str("method", method).
		Str("path", req.Path).
		Logger()

	if !req.SkipRateLimit && !c.limiter.Allow(req.Path) {
		c.audit.Audit(ctx, AuditEvent{Kind: AuditRateLimited, Method: method, Path: req.Path, Time: c.now()})
		c.metrics.ObserveRateLimited()
		return nil, fmt.Errorf("%w: %s %s", ErrRateLimited, method, req.Path)
	}

	token, err := c.awaitToken(ctx)
	if err != nil {
		c.metrics.ObserveRequest(method, metrics.OutcomeAuth, time.Since(start).Seconds())
		return nil, err
	}
	csrf := ""
	if isMutating(method) {
		csrf = c.csrfToken(ctx)
	}

	retry := c.retry
	if req.Retry != nil {
		retry = *req.Retry
	}

	var body json.RawMessage
	attempt := 0
	op := func() error {
		attempt++
		r := c.client.R().
			SetContext(ctx).
			SetHeader("Authorization", "Bearer "+token)
		if csrf != "" {
			r.SetHeader(csrfHeader, csrf)
		}
		for k, v := range req.Headers {
			r.SetHeader(k, v)
		}
		if len(req.Query) > 0 {
			r.SetQueryParamsFromValues(req.Query)
		}
		if req.Body != nil {
			r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
		}

		resp, err := r.Execute(method, req.Path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return backoff.Permanent(ctxErr)
			}
			return &transportError{err: err}
		}

		if resp.StatusCode() == http.StatusServiceUnavailable {
			return mapHTTPError(resp)
		}
		if err := mapHTTPError(resp); err != nil {
			if kind := auditKind(resp.StatusCode()); kind != "" {
				c.audit.Audit(ctx, AuditEvent{Kind: kind, Method: method, Path: req.Path, Status: resp.StatusCode(), Time: c.now()})
			}
			return backoff.Permanent(err)
		}

		body = c.decodeBody(resp, &log)
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(retry.Delay), uint64(max(retry.Count, 0))),
		ctx,
	)
	notify := func(err error, next time.Duration) {
		c.metrics.ObserveRetry()
		log.Debug().Err(err).Int("attempt", attempt).Dur("delay", next).Msg("retrying request")
	}

	err = backoff.RetryNotify(op, policy, notify)
	elapsed := time.Since(start).Seconds()
	if err == nil {
		c.metrics.ObserveRequest(method, metrics.OutcomeSuccess, elapsed)
		return body, nil
	}

	var te *transportError
	if errors.As(err, &te) {
		normalized := fmt.Errorf("%w: %s %s: %w", ErrNetworkUnreachable, method, req.Path, te.err)
		c.metrics.ObserveRequest(method, metrics.OutcomeNetwork, elapsed)
		log.Warn().Err(normalized).Int("attempts", attempt).Msg("request failed")
		if req.OnNetworkError != nil {
			req.OnNetworkError(normalized)
		}
		return nil, normalized
	}

	c.metrics.ObserveRequest(method, metrics.OutcomeHTTPError, elapsed)
	log.Warn().Err(err).Int("attempts", attempt).Msg("request failed")
	return nil, err
}

func (c *RequestClient) decodeBody(resp *resty.Response, log *zerolog.Logger) json.RawMessage {
	raw := bytes.TrimSpace(resp.Body())
	if len(raw) == 0 {
		return emptyObject
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header().Get("Content-Type"))
	if err != nil || !(mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")) {
		return emptyObject
	}

	if !json.Valid(raw) {
		log.Warn().Err(ErrMalformedResponse).Int("status", resp.StatusCode()).Msg("response body degraded to {}")
		return emptyObject
	}

	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
