// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication when
// the server was configured with a token. Without one every request passes.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header is not shaped like "Bearer <token>"
//     ([utils.ErrInvalidAuthorizationHeader]).
//   - The token is a JWT whose exp claim lies in the past ([ErrTokenExpired]).
//   - The token differs from the configured one ([ErrTokenMismatch]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.authToken == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.writeError(w, r, ErrEmptyAuthorizationHeader, http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.writeError(w, r, err, http.StatusUnauthorized)
			return
		}

		if utils.TokenExpired(token, h.now()) {
			log.Err(ErrTokenExpired).Msg("token expired")
			h.writeError(w, r, ErrTokenExpired, http.StatusUnauthorized)
			return
		}

		if token != h.authToken {
			log.Err(ErrTokenMismatch).Send()
			h.writeError(w, r, ErrTokenMismatch, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
