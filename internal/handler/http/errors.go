// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors reported by the handlers of this package. Callers can
// match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// server expects a token and the request carries no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrTokenMismatch is returned when the bearer token differs from the
	// one the server was started with.
	ErrTokenMismatch = errors.New("bearer token is not accepted")

	// ErrTokenExpired is returned for a JWT whose exp claim has passed.
	ErrTokenExpired = errors.New("bearer token is expired")

	// ErrInvalidRequestBody is returned when a request body cannot be
	// decoded into the expected shape.
	ErrInvalidRequestBody = errors.New("invalid request body")
)

// errorResponse is the JSON body of every non-2xx response written by the
// handlers.
type errorResponse struct {
	Error string `json:"error"`
}
