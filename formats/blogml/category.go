// ABOUTME: Category entity declared at the document level and referenced by posts
// ABOUTME: Categories nest through parent references rather than element structure

package blogml

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/adapter"
	"syndikit/core/compare"
	"syndikit/core/domain"
)

// Category is a classification posts may reference. Categories form a
// hierarchy through ParentRef rather than nesting.
type Category struct {
	domain.Common
	domain.ExtensionSlot

	// Description explains what the category covers
	Description string

	// ParentRef is the identifier of the parent category, empty for roots
	ParentRef string
}

func (c *Category) fill(node *xmlquery.Node, ns string, settings domain.LoadSettings) error {
	if _, err := (adapter.CommonFieldAdapter{}).Fill(c, node, ns, settings); err != nil {
		return err
	}
	c.Description = adapter.Attr(node, "description")
	c.ParentRef = adapter.Attr(node, "parentref")

	_, err := (adapter.ExtensionAdapter{}).Fill(c, node, settings, ns)
	return err
}

func (c *Category) writeContent(el *etree.Element) error {
	(adapter.CommonFieldAdapter{}).WriteAttributes(c, el)
	if desc := strings.TrimSpace(c.Description); desc != "" {
		el.CreateAttr("description", desc)
	}
	if ref := strings.TrimSpace(c.ParentRef); ref != "" {
		el.CreateAttr("parentref", ref)
	}

	if err := (adapter.CommonFieldAdapter{}).WriteElements(c, el); err != nil {
		return err
	}
	return (adapter.ExtensionAdapter{}).WriteTo(c, el)
}

// WalkExtensible visits the category and its title content.
func (c *Category) WalkExtensible(visit func(domain.Extensible) bool) bool {
	if !visit(c) {
		return false
	}
	return walkText(c.Title, visit)
}

// CompareTo orders the category against another instance. A nil other sorts
// first. Attached extensions do not participate in ordering.
func (c *Category) CompareTo(other *Category) int {
	if other == nil {
		return 1
	}
	return compare.Combine(
		(adapter.CommonFieldAdapter{}).Compare(c, other),
		compare.Strings(c.Description, other.Description),
		compare.Strings(c.ParentRef, other.ParentRef),
	)
}

// Equals reports whether other is a *Category that compares equal.
func (c *Category) Equals(other any) bool {
	o, ok := other.(*Category)
	if !ok {
		return false
	}
	return c.CompareTo(o) == 0
}

// Hash returns a hash of the category's canonical serialization.
func (c *Category) Hash() uint64 {
	s, err := adapter.CanonicalFragment("category", c.writeContent)
	if err != nil {
		return 0
	}
	return compare.HashString(s)
}
