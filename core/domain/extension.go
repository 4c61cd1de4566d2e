// ABOUTME: Extension contract and the slot entities embed to hold attached extensions
// ABOUTME: Extensions own an XML namespace and serialize themselves beneath their owner

package domain

import (
	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"
)

// Extension is a self-contained unit of additional XML content identified by
// an owned namespace. An extension knows how to populate itself from a parsed
// fragment and how to re-serialize itself beneath its owning entity's element.
// An extension instance belongs to exactly one entity at a time; attaching it
// elsewhere transfers ownership.
type Extension interface {
	// Name returns a human-readable name for the extension
	Name() string

	// Prefix returns the conventional prefix for the owned namespace
	Prefix() string

	// Namespace returns the URI of the owned namespace
	Namespace() string

	// Load populates the extension from nodes in its owned namespace at or
	// beneath node and reports whether anything matched
	Load(node *xmlquery.Node) (bool, error)

	// WriteTo appends the extension's elements to parent
	WriteTo(parent *etree.Element) error
}

// ExtensionType identifies an extension by its namespace binding.
type ExtensionType struct {
	Prefix    string
	Namespace string
}

// ExtensionFactory constructs a fresh, empty extension instance.
type ExtensionFactory func() Extension

// TypeOf returns the namespace binding of an extension.
func TypeOf(ext Extension) ExtensionType {
	return ExtensionType{Prefix: ext.Prefix(), Namespace: ext.Namespace()}
}

// ExtensionSlot holds an entity's attached extensions. Embed it to give an
// entity the Extensible capability. The list preserves attachment order,
// permits duplicates and never contains a nil slot.
type ExtensionSlot struct {
	extensions []Extension
}

// Extensions returns the attached extensions in attachment order.
func (s *ExtensionSlot) Extensions() []Extension {
	return s.extensions
}

// HasExtensions reports whether any extension is attached.
func (s *ExtensionSlot) HasExtensions() bool {
	return len(s.extensions) > 0
}

// AddExtension appends an extension. Nil extensions are ignored so the slot
// never holds an empty entry.
func (s *ExtensionSlot) AddExtension(ext Extension) {
	if ext == nil {
		return
	}
	s.extensions = append(s.extensions, ext)
}

// RemoveExtension detaches the first occurrence of ext and reports whether
// it was attached.
func (s *ExtensionSlot) RemoveExtension(ext Extension) bool {
	for i, attached := range s.extensions {
		if attached == ext {
			s.extensions = append(s.extensions[:i], s.extensions[i+1:]...)
			return true
		}
	}
	return false
}

// FindExtension returns the first attached extension matching the predicate,
// or nil when none matches.
func (s *ExtensionSlot) FindExtension(match func(Extension) bool) Extension {
	for _, attached := range s.extensions {
		if match(attached) {
			return attached
		}
	}
	return nil
}
