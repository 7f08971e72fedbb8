// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	ErrTaskPanicked = errors.New("task panicked")
	ErrAcquireSlot  = errors.New("failed to acquire pool slot")
)
