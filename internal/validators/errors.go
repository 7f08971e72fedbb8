// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidProjectID   = errors.New("invalid project id")
	ErrEmptyTitle         = errors.New("title cannot be blank")
	ErrInvalidFinishLine  = errors.New("finish line must be a YYYY-MM-DD date")
	ErrNegativeBudget     = errors.New("total budget cannot be negative")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrEmptyEventID       = errors.New("timeline event id is required")
	ErrDuplicateEventID   = errors.New("timeline event id is duplicated")
	ErrInvalidEventDate   = errors.New("timeline event date must be a YYYY-MM-DD date")
	ErrNegativeEventHours = errors.New("timeline event hours cannot be negative")
)
