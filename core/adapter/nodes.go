// ABOUTME: Navigation helpers over parsed document trees
// ABOUTME: Namespace-aware child lookup used by every format's fill routine

// Package adapter translates between in-memory entity graphs and their XML
// representation. CommonFieldAdapter handles the shared field block,
// ExtensionAdapter handles namespace-scoped extensions, and ResourceAdapter
// orchestrates whole-document load and save.
package adapter

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// RootElement returns the root element of a parsed document, or node itself
// when it is already an element. Returns nil when the document has no
// element child.
func RootElement(node *xmlquery.Node) *xmlquery.Node {
	if node == nil {
		return nil
	}
	if node.Type == xmlquery.ElementNode {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return child
		}
	}
	return nil
}

// FirstChildElement returns node's first child element with the given local
// name in namespace ns. An empty ns matches any namespace.
func FirstChildElement(node *xmlquery.Node, ns, local string) *xmlquery.Node {
	if node == nil {
		return nil
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode || child.Data != local {
			continue
		}
		if ns == "" || child.NamespaceURI == ns {
			return child
		}
	}
	return nil
}

// ChildElements returns node's child elements with the given local name in
// namespace ns, in document order. An empty ns matches any namespace.
func ChildElements(node *xmlquery.Node, ns, local string) []*xmlquery.Node {
	if node == nil {
		return nil
	}
	var out []*xmlquery.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode || child.Data != local {
			continue
		}
		if ns == "" || child.NamespaceURI == ns {
			out = append(out, child)
		}
	}
	return out
}

// ChildrenInNamespace returns node's child elements belonging to namespace
// ns, in document order, regardless of local name. Extensions use this to
// claim the nodes of their owned namespace without reaching into nested
// entities.
func ChildrenInNamespace(node *xmlquery.Node, ns string) []*xmlquery.Node {
	if node == nil || ns == "" {
		return nil
	}
	var out []*xmlquery.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode && child.NamespaceURI == ns {
			out = append(out, child)
		}
	}
	return out
}

// Attr returns the trimmed value of node's attribute, or the empty string
// when the attribute is absent.
func Attr(node *xmlquery.Node, name string) string {
	if node == nil {
		return ""
	}
	return strings.TrimSpace(node.SelectAttr(name))
}

// InnerText returns node's trimmed text content.
func InnerText(node *xmlquery.Node) string {
	if node == nil {
		return ""
	}
	return strings.TrimSpace(node.InnerText())
}
