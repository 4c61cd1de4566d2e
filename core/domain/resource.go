// ABOUTME: Resource contract implemented by loadable syndication documents
// ABOUTME: Load and save behavior is configured through LoadSettings and SaveSettings

package domain

import (
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"
)

// DefaultTimeout bounds network fetches when LoadSettings does not specify
// a timeout.
const DefaultTimeout = 30 * time.Second

// Resource is a loadable, savable syndication document. A resource is
// created empty by its format's constructor and populated by a single Fill
// call; repeated fills replace rather than merge content.
type Resource interface {
	Extensible
	TreeWalker

	// Format identifies the resource's syndication vocabulary
	Format() ContentFormat

	// RootName returns the local name of the resource's root element
	RootName() string

	// RootNamespace returns the namespace URI of the resource's root element
	RootNamespace() string

	// Fill populates the resource from a parsed document or element node and
	// reports whether any content was populated
	Fill(node *xmlquery.Node, settings LoadSettings) (bool, error)

	// WriteContent writes the resource's attributes and children onto the
	// prepared root element
	WriteContent(root *etree.Element, settings SaveSettings) error
}

// LoadSettings configures how a resource is loaded. A settings value is
// treated as immutable once passed to an adapter call.
type LoadSettings struct {
	// CharacterEncoding names the encoding used to decode fetched bytes.
	// When empty or UTF-8 the encoding is auto-detected from the transport
	// headers and document declaration instead.
	CharacterEncoding string

	// Timeout bounds the fetch when loading from a network source.
	// Zero means DefaultTimeout.
	Timeout time.Duration

	// RecognizedExtensions lists the extension types considered during
	// load. Extensions fill in registration order, not document order, so
	// reordering a document's children never changes which instance
	// attaches first.
	RecognizedExtensions []ExtensionFactory
}

// DefaultLoadSettings returns load settings with the default timeout, no
// explicit encoding and no recognized extensions.
func DefaultLoadSettings() LoadSettings {
	return LoadSettings{Timeout: DefaultTimeout}
}

// EffectiveTimeout returns the configured timeout, or DefaultTimeout when
// unset.
func (s LoadSettings) EffectiveTimeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return DefaultTimeout
}

// SaveSettings configures how a resource is saved. A settings value is
// treated as immutable once passed to an adapter call; the save pipeline
// fills SupportedExtensions on its own copy when auto-detection runs.
type SaveSettings struct {
	// CharacterEncoding names the output encoding. Empty means UTF-8.
	CharacterEncoding string

	// MinimizeOutput suppresses indentation when set
	MinimizeOutput bool

	// AutoDetectExtensions walks the document graph before writing and
	// declares every attached extension's namespace on the root element
	AutoDetectExtensions bool

	// SupportedExtensions lists namespaces declared on the root element.
	// The pre-pass fills it when AutoDetectExtensions is set; callers may
	// also seed it explicitly.
	SupportedExtensions []ExtensionType
}

// DefaultSaveSettings returns save settings with UTF-8 output, indentation
// enabled and extension auto-detection on.
func DefaultSaveSettings() SaveSettings {
	return SaveSettings{AutoDetectExtensions: true}
}
