// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/jazbelrose/mylg-sync/internal/utils"
)

var errTokenPending = errors.New("token pending")

// StaticTokens holds tokens set by the embedding application, e.g. after an
// external sign-in flow. It implements both [TokenProvider] and
// [CSRFProvider].
type StaticTokens struct {
	mu    sync.RWMutex
	token string
	csrf  string
}

// NewStaticTokens returns a provider pre-filled with token and csrf. Either
// may be empty and set later.
func NewStaticTokens(token, csrf string) *StaticTokens {
	return &StaticTokens{token: strings.TrimSpace(token), csrf: strings.TrimSpace(csrf)}
}

// SetToken replaces the bearer token.
func (s *StaticTokens) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

// SetCSRFToken replaces the CSRF token.
func (s *StaticTokens) SetCSRFToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.csrf = strings.TrimSpace(token)
}

// Token implements [TokenProvider].
func (s *StaticTokens) Token(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

// CSRFToken implements [CSRFProvider].
func (s *StaticTokens) CSRFToken(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.csrf, nil
}

// awaitToken polls the token provider until it yields a non-empty token
// that is not an expired JWT, at most pollAttempts times pollInterval apart.
func (c *RequestClient) awaitToken(ctx context.Context) (string, error) {
	var token string

	op := func() error {
		t, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}
		t = strings.TrimSpace(t)
		if t == "" || utils.TokenExpired(t, c.now()) {
			return errTokenPending
		}
		token = t
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.pollInterval), uint64(c.pollAttempts-1)),
		ctx,
	)
	if err := backoff.Retry(op, policy); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthNotReady, err)
	}
	return token, nil
}

func (c *RequestClient) csrfToken(ctx context.Context) string {
	if c.csrf == nil {
		return ""
	}
	token, err := c.csrf.CSRFToken(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "RequestClient.csrfToken").Msg("csrf token unavailable")
		return ""
	}
	return strings.TrimSpace(token)
}
