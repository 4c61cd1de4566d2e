// ABOUTME: Capability traits implemented by entities to join shared load/save logic
// ABOUTME: Replaces inheritance with small interfaces over otherwise unrelated leaf types

package domain

// CommonFields is implemented by entities that carry the shared field block
// of identifier, title, timestamps and approval status. Implementations
// embed Common, which satisfies the interface on their behalf.
type CommonFields interface {
	CommonFields() *Common
}

// Extensible is implemented by entities that accept namespace-scoped
// extensions. Implementations embed ExtensionSlot, which satisfies the
// interface on their behalf.
type Extensible interface {
	// Extensions returns the attached extensions in attachment order
	Extensions() []Extension

	// HasExtensions reports whether any extension is attached
	HasExtensions() bool

	// AddExtension appends an extension; nil extensions are ignored
	AddExtension(ext Extension)

	// RemoveExtension detaches the first occurrence of ext and reports
	// whether it was attached
	RemoveExtension(ext Extension) bool

	// FindExtension returns the first attached extension matching the
	// predicate, or nil
	FindExtension(match func(Extension) bool) Extension
}

// TreeWalker is implemented by entities that can enumerate every extensible
// node at or beneath them. The walk is pre-order over document structure and
// stops early when visit returns false.
type TreeWalker interface {
	WalkExtensible(visit func(Extensible) bool) bool
}
