// ABOUTME: Trackback entity recording a ping received from another web log
// ABOUTME: The smallest entity in the graph, a titled link with the shared field block

package blogml

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/adapter"
	"syndikit/core/compare"
	"syndikit/core/domain"
)

// Trackback is a ping received from another web log referencing a post.
type Trackback struct {
	domain.Common
	domain.ExtensionSlot

	// URL is the address of the referencing entry
	URL string
}

func (t *Trackback) fill(node *xmlquery.Node, ns string, settings domain.LoadSettings) error {
	if _, err := (adapter.CommonFieldAdapter{}).Fill(t, node, ns, settings); err != nil {
		return err
	}
	t.URL = adapter.Attr(node, "url")

	_, err := (adapter.ExtensionAdapter{}).Fill(t, node, settings, ns)
	return err
}

func (t *Trackback) writeContent(el *etree.Element) error {
	(adapter.CommonFieldAdapter{}).WriteAttributes(t, el)
	if u := strings.TrimSpace(t.URL); u != "" {
		el.CreateAttr("url", u)
	}

	if err := (adapter.CommonFieldAdapter{}).WriteElements(t, el); err != nil {
		return err
	}
	return (adapter.ExtensionAdapter{}).WriteTo(t, el)
}

// WalkExtensible visits the trackback and its title content.
func (t *Trackback) WalkExtensible(visit func(domain.Extensible) bool) bool {
	if !visit(t) {
		return false
	}
	return walkText(t.Title, visit)
}

// CompareTo orders the trackback against another instance. A nil other sorts
// first. Attached extensions do not participate in ordering.
func (t *Trackback) CompareTo(other *Trackback) int {
	if other == nil {
		return 1
	}
	return compare.Combine(
		(adapter.CommonFieldAdapter{}).Compare(t, other),
		compare.Strings(t.URL, other.URL),
	)
}

// Equals reports whether other is a *Trackback that compares equal.
func (t *Trackback) Equals(other any) bool {
	o, ok := other.(*Trackback)
	if !ok {
		return false
	}
	return t.CompareTo(o) == 0
}

// Hash returns a hash of the trackback's canonical serialization.
func (t *Trackback) Hash() uint64 {
	s, err := adapter.CanonicalFragment("trackback", t.writeContent)
	if err != nil {
		return 0
	}
	return compare.HashString(s)
}
