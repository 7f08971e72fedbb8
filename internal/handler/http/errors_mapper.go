// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/jazbelrose/mylg-sync/internal/service"
	"github.com/jazbelrose/mylg-sync/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidRequestBody:          http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrProjectNotFound:     http.StatusNotFound,
	service.ErrUpdateConflict:      http.StatusConflict,

	store.ErrProjectNotFound: http.StatusNotFound,
	store.ErrInvalidProject:  http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
