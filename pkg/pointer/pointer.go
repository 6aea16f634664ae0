// Copyright (c) 2026 Oshidora. All rights reserved.

/*
Package pointer provides generic helpers for optional values.

The generator models nullable columns (an event's actor user, a category's
parent) as pointers; these helpers keep that code free of temporaries.
*/
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}
