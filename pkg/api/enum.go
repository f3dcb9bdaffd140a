package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import "slices"

// IsKnown reports whether v is one of the values this client was built with.
// Values outside of known are still valid: the server may return variants
// that were added after this client was generated, and those are carried
// through unchanged.
func IsKnown[T ~string](v T, known []T) bool {
	return slices.Contains(known, v)
}
