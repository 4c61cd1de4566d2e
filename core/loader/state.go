// ABOUTME: Loader state machine table, request options and the loaded notification
// ABOUTME: Terminal states return to idle before the notification fires

// Package loader retrieves syndication resources from network sources and
// fills them through the shared adapters. Each loader instance owns at most
// one in-flight request; concurrent loads belong on separate instances.
package loader

import (
	"time"

	"syndikit/core/codec"
	"syndikit/core/domain"
)

// State identifies where a loader instance is in its load lifecycle.
type State int

const (
	// StateIdle means no load is in flight
	StateIdle State = iota

	// StateLoading means a load is in flight
	StateLoading

	// StateCompleted means the last load ran to completion
	StateCompleted

	// StateCancelled means the last load was cancelled before content was
	// parsed
	StateCancelled

	// StateTimedOut means the last load's timeout fired before a response
	// arrived
	StateTimedOut
)

var stateCodec = codec.New("loader-state", []codec.Entry[State]{
	{Value: StateIdle, Token: "idle", Display: "Idle"},
	{Value: StateLoading, Token: "loading", Display: "Loading"},
	{Value: StateCompleted, Token: "completed", Display: "Completed"},
	{Value: StateCancelled, Token: "cancelled", Display: "Cancelled"},
	{Value: StateTimedOut, Token: "timed-out", Display: "Timed out"},
})

// ParseState decodes a state token, matching case-insensitively and
// returning StateIdle for unrecognized input.
func ParseState(value string) State {
	return stateCodec.Decode(value)
}

// Token returns the state's wire token.
func (s State) Token() string {
	return stateCodec.Encode(s)
}

// String returns the state's display name.
func (s State) String() string {
	return stateCodec.Display(s)
}

// RequestOptions ride along with a single load call. The loader passes them
// through to the loaded notification unmodified.
type RequestOptions struct {
	// BypassCache skips the cache lookup and fetches from the source
	BypassCache bool

	// CacheTTL overrides the loader's time-to-live for the fetched bytes.
	// Zero means the loader's configured default.
	CacheTTL time.Duration

	// Metadata carries caller-defined values through to the notification
	Metadata map[string]string
}

// LoadedEvent describes the outcome of one load call. It is delivered to
// the loader's handler exactly once per call.
type LoadedEvent struct {
	// Resource is the populated resource, nil unless the load completed
	// without error
	Resource domain.Resource

	// Source is the locator the load was asked to fetch
	Source string

	// Options are the request options the load was called with
	Options RequestOptions

	// Token is the caller's correlation token
	Token any

	// Outcome is the terminal state the load reached
	Outcome State

	// Err is the failure that ended the load, nil on success
	Err error
}

// LoadedHandler receives loaded notifications. The loader is idle again by
// the time the handler runs, so handlers may start a new load directly.
type LoadedHandler func(event LoadedEvent)
