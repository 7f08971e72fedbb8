// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the stub API server.
//
// It owns the HTTP server lifecycle: startup, signal handling and graceful
// shutdown.
package server
