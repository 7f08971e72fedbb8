// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity assigns identifiers to sub-records that arrive without
// one and drops duplicates by identifier.
package identity

import "strings"

// Generator produces new unique identifiers.
type Generator interface {
	Generate() string
}

// GeneratorFunc adapts a plain function to [Generator].
type GeneratorFunc func() string

// Generate implements [Generator].
func (f GeneratorFunc) Generate() string {
	return f()
}

// Identified is implemented by value types that carry a string identifier
// and can produce a copy of themselves with a different one.
type Identified[T any] interface {
	Identity() string
	WithIdentity(id string) T
}

// Result is the outcome of [EnsureIDs].
type Result[T any] struct {
	// Items is the corrected collection.
	Items []T

	// Changed reports whether any identifier was assigned or any duplicate
	// dropped, i.e. whether Items differs from the input.
	Changed bool
}

// EnsureIDs assigns a generated identifier to every item lacking one and
// drops every item whose identifier was already seen earlier in the list, so
// the first occurrence wins. The input slice is not modified.
//
// EnsureIDs is idempotent: running it on its own output reports no change.
func EnsureIDs[T Identified[T]](items []T, gen Generator) Result[T] {
	out := make([]T, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	changed := false

	for _, item := range items {
		id := item.Identity()
		if strings.TrimSpace(id) == "" {
			id = gen.Generate()
			item = item.WithIdentity(id)
			changed = true
		}

		if _, dup := seen[id]; dup {
			changed = true
			continue
		}

		seen[id] = struct{}{}
		out = append(out, item)
	}

	return Result[T]{Items: out, Changed: changed}
}
