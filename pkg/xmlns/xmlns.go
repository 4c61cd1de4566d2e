// ABOUTME: Well-known namespace URIs and their conventional prefixes
// ABOUTME: Resolution honors a caller-supplied default namespace ahead of the constants

// Package xmlns centralizes the namespace URIs the library understands and
// the prefixes conventionally bound to them in serialized output.
package xmlns

import (
	"strings"

	"github.com/beevik/etree"
)

// Namespace URIs for the supported vocabularies.
const (
	// BlogML is the Web Log Markup Language namespace
	BlogML = "http://www.blogml.com/2006/09/BlogML"

	// APML is the Attention Profiling Markup Language namespace
	APML = "http://www.apml.org/apml-0.6"

	// Atom is the Atom Syndication Format namespace
	Atom = "http://www.w3.org/2005/Atom"

	// DublinCore is the Dublin Core metadata element set namespace
	DublinCore = "http://purl.org/dc/elements/1.1/"

	// Syndication is the RSS 1.0 syndication module namespace
	Syndication = "http://purl.org/rss/1.0/modules/syndication/"

	// XML is the reserved namespace bound to the xml prefix
	XML = "http://www.w3.org/XML/1998/namespace"
)

// Binding pairs a conventional prefix with a namespace URI.
type Binding struct {
	Prefix string
	URI    string
}

var bindings = []Binding{
	{"blog", BlogML},
	{"apml", APML},
	{"atom", Atom},
	{"dc", DublinCore},
	{"sy", Syndication},
	{"xml", XML},
}

// PrefixFor returns the conventional prefix for a namespace URI, or the
// empty string when the URI has no registered binding.
func PrefixFor(uri string) string {
	for _, b := range bindings {
		if b.URI == uri {
			return b.Prefix
		}
	}
	return ""
}

// URIFor returns the namespace URI bound to a conventional prefix, or the
// empty string when the prefix has no registered binding.
func URIFor(prefix string) string {
	for _, b := range bindings {
		if b.Prefix == prefix {
			return b.URI
		}
	}
	return ""
}

// Resolve returns the effective namespace for a document: the caller's
// override when it is non-empty, otherwise the format's constant.
func Resolve(override, constant string) string {
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		return trimmed
	}
	return constant
}

// Declare writes a namespace declaration onto an element. An empty prefix
// declares the default namespace.
func Declare(el *etree.Element, prefix, uri string) {
	if uri == "" {
		return
	}
	if prefix == "" {
		el.CreateAttr("xmlns", uri)
		return
	}
	el.CreateAttr("xmlns:"+prefix, uri)
}
