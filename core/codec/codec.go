// ABOUTME: Bidirectional mapping between enumeration values and their wire tokens
// ABOUTME: Backs every enum that appears as an attribute or element value in serialized output

// Package codec converts enumeration values to and from the tokens used in
// serialized documents. Each enumeration declares its table once at package
// level; lookups never use reflection.
package codec

import (
	"fmt"
	"strings"
)

// Entry pairs an enumeration value with its wire token and an optional
// human-readable display name.
type Entry[T comparable] struct {
	Value   T
	Token   string
	Display string
}

// Codec provides bidirectional mapping between enumeration values of type T
// and their wire tokens. Decoding is case-insensitive and ignores surrounding
// whitespace; encoding emits the token exactly as declared. The table must
// cover every variant of T that can reach a serializer.
type Codec[T comparable] struct {
	name        string
	unspecified T
	tokens      map[T]string
	displays    map[T]string
	values      map[string]T
	order       []T
}

// New builds a Codec from the given entries. The first entry acts as the
// unspecified fallback returned by Decode for unrecognized tokens.
//
// New panics when the table is empty or contains a duplicate value or token.
// Codec tables are package-level constants, so a malformed table is a
// programming error rather than a runtime condition.
func New[T comparable](name string, entries []Entry[T]) *Codec[T] {
	if len(entries) == 0 {
		panic(fmt.Sprintf("codec: table %s has no entries", name))
	}

	c := &Codec[T]{
		name:        name,
		unspecified: entries[0].Value,
		tokens:      make(map[T]string, len(entries)),
		displays:    make(map[T]string, len(entries)),
		values:      make(map[string]T, len(entries)),
		order:       make([]T, 0, len(entries)),
	}

	for _, entry := range entries {
		if _, exists := c.tokens[entry.Value]; exists {
			panic(fmt.Sprintf("codec: table %s declares value %v twice", name, entry.Value))
		}
		key := strings.ToLower(entry.Token)
		if _, exists := c.values[key]; exists {
			panic(fmt.Sprintf("codec: table %s declares token %q twice", name, entry.Token))
		}
		c.tokens[entry.Value] = entry.Token
		c.displays[entry.Value] = entry.Display
		c.values[key] = entry.Value
		c.order = append(c.order, entry.Value)
	}

	return c
}

// Name returns the label the table was declared with.
func (c *Codec[T]) Name() string {
	return c.name
}

// Unspecified returns the fallback value declared first in the table.
func (c *Codec[T]) Unspecified() T {
	return c.unspecified
}

// Encode returns the wire token for a value.
// Values missing from the table encode as the empty string.
func (c *Codec[T]) Encode(v T) string {
	return c.tokens[v]
}

// Display returns the human-readable name for a value, falling back to the
// wire token when no display name was declared.
func (c *Codec[T]) Display(v T) string {
	if display := c.displays[v]; display != "" {
		return display
	}
	return c.tokens[v]
}

// Decode returns the value for a wire token. Matching is case-insensitive
// and ignores surrounding whitespace. Unrecognized tokens decode to the
// unspecified fallback so that unexpected content degrades instead of failing.
func (c *Codec[T]) Decode(token string) T {
	v, ok := c.Lookup(token)
	if !ok {
		return c.unspecified
	}
	return v
}

// Lookup returns the value for a wire token and reports whether the token
// is part of the table.
func (c *Codec[T]) Lookup(token string) (T, bool) {
	v, ok := c.values[strings.ToLower(strings.TrimSpace(token))]
	return v, ok
}

// Values returns the table's values in declaration order.
func (c *Codec[T]) Values() []T {
	out := make([]T, len(c.order))
	copy(out, c.order)
	return out
}
