// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrProjectNotFound = errors.New("project not found")
	ErrUpdateConflict  = errors.New("project was changed concurrently")
	ErrSessionExpired  = errors.New("session expired or not authorized")
	ErrTryAgainLater   = errors.New("projects API is unavailable, try again later")
)
