// ABOUTME: Shared fill, write and compare helpers used by every BlogML entity
// ABOUTME: Keeps the per-entity files focused on their own fields

// Package blogml implements the Web Log Markup Language document graph. A
// Document holds authors, categories and posts; posts hold comments,
// trackbacks and attachments. Every entity in the graph accepts extensions
// and round-trips through the shared adapters.
package blogml

import (
	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/adapter"
	"syndikit/core/compare"
	"syndikit/core/domain"
)

// fillText builds typed text content from an optional element and attaches
// any recognized extensions it carries. A nil node yields nil content.
func fillText(node *xmlquery.Node, ns string, settings domain.LoadSettings) (*domain.TextContent, error) {
	if node == nil {
		return nil, nil
	}
	content := adapter.FillTextContent(node)
	if _, err := (adapter.ExtensionAdapter{}).Fill(content, node, settings, ns); err != nil {
		return nil, err
	}
	return content, nil
}

// writeChild appends a child element named name to parent and hands it to
// write.
func writeChild(parent *etree.Element, name string, write func(*etree.Element) error) error {
	return write(parent.CreateElement(name))
}

// walkText visits an optional text content node, reporting whether the walk
// should continue.
func walkText(t *domain.TextContent, visit func(domain.Extensible) bool) bool {
	return t == nil || t.WalkExtensible(visit)
}

// compareSlice compares two entity collections. A length mismatch resolves
// by length alone; equal-length collections compare element-wise with absent
// entries sorting first.
func compareSlice[T any](a, b []*T, cmp func(*T, *T) int) int {
	return compare.Sequence(a, b, func(x, y *T) int {
		return compare.Pointers(x, y, cmp)
	})
}
