// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrRateLimited is returned without any network call when the local
	// sliding window for the request path is full.
	ErrRateLimited = errors.New("request rate limited")

	// ErrUnauthorized covers 401 and 403 responses.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrServerUnavailable is the last error of a request whose every attempt
	// got a 503.
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrNetworkUnreachable is the normalized form of every transport-level
	// failure (DNS, refused connection, reset, per-attempt timeout).
	ErrNetworkUnreachable = errors.New("network unreachable")

	// ErrMalformedResponse is logged when a JSON response does not parse. It
	// is never returned by [RequestClient.Do]; the body degrades to {}.
	ErrMalformedResponse = errors.New("malformed response body")

	// ErrUnclassified is a non-2xx status without a more specific mapping.
	ErrUnclassified = errors.New("unexpected response status")

	ErrServerRateLimited = errors.New("server rate limit exceeded")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrBadRequest        = errors.New("bad request")

	// ErrAuthNotReady is returned when the token provider did not yield a
	// usable token within the polling budget.
	ErrAuthNotReady = errors.New("auth token not ready")

	ErrInvalidAddress = errors.New("invalid adapter http address")
)
