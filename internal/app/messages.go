// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable messages the CLI prints when a
// command fails. Keeping them in one place keeps the wording consistent
// across commands.
package app

import (
	"errors"

	"github.com/jazbelrose/mylg-sync/internal/service"
)

const (
	// MsgInvalidDataProvided is shown when the API or local validation
	// rejected the values of an update.
	MsgInvalidDataProvided = "the change was rejected: check the values and try again"

	// MsgProjectNotFound is shown when the project id is unknown to the API.
	MsgProjectNotFound = "project not found"

	// MsgUpdateConflict is shown when the project was changed by someone
	// else in the meantime.
	MsgUpdateConflict = "the project was changed elsewhere: reload it and try again"

	// MsgSessionExpired is shown when no token is available or the API
	// rejected it.
	MsgSessionExpired = "your session has expired: sign in again"

	// MsgTryAgainLater is shown for rate limiting, server outages and
	// network failures.
	MsgTryAgainLater = "the projects service is unavailable right now: try again later"

	// MsgInternalError is shown for any other failure.
	MsgInternalError = "something went wrong, see the log file for details"
)

var messages = []struct {
	target error
	msg    string
}{
	{service.ErrInvalidDataProvided, MsgInvalidDataProvided},
	{service.ErrProjectNotFound, MsgProjectNotFound},
	{service.ErrUpdateConflict, MsgUpdateConflict},
	{service.ErrSessionExpired, MsgSessionExpired},
	{service.ErrTryAgainLater, MsgTryAgainLater},
}

// UserMessage returns the message to show for err. Errors outside the
// service layer vocabulary map to [MsgInternalError].
func UserMessage(err error) string {
	for _, m := range messages {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}
	return MsgInternalError
}
