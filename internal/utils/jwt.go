// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the client and the stub
// server: identifier generation, the resty client wrapper, JSON response
// writing and bearer-token inspection.
package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] for headers
// not shaped like "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// ParseBearerToken extracts the token from an Authorization header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// TokenExpiry returns the exp claim of a JWT without verifying its
// signature. ok is false for opaque (non-JWT) tokens and for JWTs without an
// exp claim; such tokens are never considered expired by the client.
func TokenExpiry(tokenString string) (exp time.Time, ok bool) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	date, err := token.Claims.GetExpirationTime()
	if err != nil || date == nil {
		return time.Time{}, false
	}

	return date.Time, true
}

// TokenExpired reports whether tokenString is a JWT whose exp claim lies
// before now.
func TokenExpired(tokenString string, now time.Time) bool {
	exp, ok := TokenExpiry(tokenString)
	return ok && exp.Before(now)
}
