// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "mylg-sync/1"

// HTTPClient wraps resty.Client so application-wide defaults live in one
// place. Retries are disabled on the underlying client: retry policy belongs
// to the caller.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient bound to baseURL with a per-attempt
// timeout. A zero timeout leaves resty's default (no timeout).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
