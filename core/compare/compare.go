// ABOUTME: Field-wise comparison helpers shared by every entity's CompareTo
// ABOUTME: Combines partial results as a prioritized tuple so equality and ordering stay coherent

// Package compare supplies the comparison primitives entities build their
// CompareTo methods from. Fields are compared in a fixed order and combined
// with Combine, which resolves to the first field that differs. The combined
// result is zero exactly when every field compared equal.
package compare

import (
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Combine resolves partial comparison results in priority order and returns
// the first non-zero result, or zero when all parts are zero.
func Combine(parts ...int) int {
	for _, part := range parts {
		if part != 0 {
			return part
		}
	}
	return 0
}

// Strings compares two strings ordinally and case-insensitively.
func Strings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Ints compares two ints.
func Ints(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Int64s compares two int64 values.
func Int64s(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Bools compares two bools, ordering false before true.
func Bools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

// Times compares two instants.
func Times(a, b time.Time) int {
	return a.Compare(b)
}

// Sequence compares two slices element-wise. A length mismatch resolves
// immediately, positive when a is longer, without inspecting any element.
// Equal-length slices combine the element-wise results in index order.
func Sequence[T any](a, b []T, cmp func(T, T) int) int {
	if len(a) != len(b) {
		if len(a) > len(b) {
			return 1
		}
		return -1
	}

	parts := make([]int, len(a))
	for i := range a {
		parts[i] = cmp(a[i], b[i])
	}
	return Combine(parts...)
}

// Pointers compares two optional values. Absence sorts as least, so a nil
// side compares before a non-nil side and two nils compare equal.
func Pointers[T any](a, b *T, cmp func(*T, *T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return cmp(a, b)
	}
}

// HashString hashes the character sequence of an entity's canonical
// serialization. Entities that serialize identically hash identically.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}
