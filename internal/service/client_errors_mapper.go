// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/jazbelrose/mylg-sync/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var target error
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		target = ErrInvalidDataProvided
	case errors.Is(err, adapter.ErrNotFound):
		target = ErrProjectNotFound
	case errors.Is(err, adapter.ErrConflict):
		target = ErrUpdateConflict
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrAuthNotReady):
		target = ErrSessionExpired
	case errors.Is(err, adapter.ErrRateLimited),
		errors.Is(err, adapter.ErrServerRateLimited),
		errors.Is(err, adapter.ErrServerUnavailable),
		errors.Is(err, adapter.ErrNetworkUnreachable):
		target = ErrTryAgainLater
	default:
		return err
	}

	return fmt.Errorf("%w: %w", target, err)
}
