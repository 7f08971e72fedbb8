// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST surface of the stub projects API.
//
// It exposes the four project endpoints the sync client talks to, plus a
// version endpoint. Request tracing, access logging, bearer-token checks and
// response compression are handled here before requests reach the service
// layer.
package http
