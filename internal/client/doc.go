// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client.
//
// A [Session] wires the request client, local storage and project services
// for one signed-in user; an [App] dispatches the cobra command tree (list,
// get, update, events, watch) and prints results as JSON.
package client
