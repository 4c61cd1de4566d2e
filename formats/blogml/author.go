// ABOUTME: Author entity registered at the document level and referenced by posts
// ABOUTME: Carries the shared field block plus a contact email address

package blogml

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/adapter"
	"syndikit/core/compare"
	"syndikit/core/domain"
)

// Author is a registered author of a web log. Posts reference authors by
// their identifier.
type Author struct {
	domain.Common
	domain.ExtensionSlot

	// Email is the author's contact address
	Email string
}

func (a *Author) fill(node *xmlquery.Node, ns string, settings domain.LoadSettings) error {
	if _, err := (adapter.CommonFieldAdapter{}).Fill(a, node, ns, settings); err != nil {
		return err
	}
	a.Email = adapter.Attr(node, "email")

	_, err := (adapter.ExtensionAdapter{}).Fill(a, node, settings, ns)
	return err
}

func (a *Author) writeContent(el *etree.Element) error {
	(adapter.CommonFieldAdapter{}).WriteAttributes(a, el)
	if email := strings.TrimSpace(a.Email); email != "" {
		el.CreateAttr("email", email)
	}

	if err := (adapter.CommonFieldAdapter{}).WriteElements(a, el); err != nil {
		return err
	}
	return (adapter.ExtensionAdapter{}).WriteTo(a, el)
}

// WalkExtensible visits the author and its title content.
func (a *Author) WalkExtensible(visit func(domain.Extensible) bool) bool {
	if !visit(a) {
		return false
	}
	return walkText(a.Title, visit)
}

// CompareTo orders the author against another instance. A nil other sorts
// first. Attached extensions do not participate in ordering.
func (a *Author) CompareTo(other *Author) int {
	if other == nil {
		return 1
	}
	return compare.Combine(
		(adapter.CommonFieldAdapter{}).Compare(a, other),
		compare.Strings(a.Email, other.Email),
	)
}

// Equals reports whether other is an *Author that compares equal.
func (a *Author) Equals(other any) bool {
	o, ok := other.(*Author)
	if !ok {
		return false
	}
	return a.CompareTo(o) == 0
}

// Hash returns a hash of the author's canonical serialization.
func (a *Author) Hash() uint64 {
	s, err := adapter.CanonicalFragment("author", a.writeContent)
	if err != nil {
		return 0
	}
	return compare.HashString(s)
}
