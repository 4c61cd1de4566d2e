// ABOUTME: BlogML document root holding the web log's authors, categories and posts
// ABOUTME: Implements the resource contract so the shared adapters and loader can drive it

package blogml

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/adapter"
	"syndikit/core/compare"
	"syndikit/core/domain"
	"syndikit/core/errors"
	"syndikit/pkg/xmlns"
)

// Document is a BlogML web log. A document is created empty and populated by
// a single Fill call; repeated fills replace rather than merge content.
type Document struct {
	domain.Common
	domain.ExtensionSlot

	// RootURL is the web log's root URL, typically relative
	RootURL string

	// Subtitle is the web log's secondary title (nil means unset)
	Subtitle *domain.TextContent

	// Authors lists the web log's registered authors
	Authors []*Author

	// Categories lists the categories posts may reference
	Categories []*Category

	// Posts lists the web log's entries in document order
	Posts []*Post
}

// NewDocument returns an empty BlogML document.
func NewDocument() *Document {
	return &Document{}
}

// Format identifies the document as BlogML.
func (d *Document) Format() domain.ContentFormat {
	return domain.FormatBlogML
}

// RootName returns the local name of the document's root element.
func (d *Document) RootName() string {
	return "blog"
}

// RootNamespace returns the BlogML namespace URI.
func (d *Document) RootNamespace() string {
	return xmlns.BlogML
}

// Fill populates the document from a parsed tree. Child elements match in
// the root's own namespace when it declares one, falling back to the BlogML
// namespace constant. Fill reports whether any content was populated.
func (d *Document) Fill(node *xmlquery.Node, settings domain.LoadSettings) (bool, error) {
	if node == nil {
		return false, &errors.ArgumentError{Name: "node", Message: "must not be nil"}
	}
	root := adapter.RootElement(node)
	if root == nil {
		return false, &errors.FormatError{Format: "blogml", Message: "document has no root element"}
	}

	*d = Document{}
	ns := xmlns.Resolve(root.NamespaceURI, xmlns.BlogML)
	populated := false

	if ok, err := (adapter.CommonFieldAdapter{}).Fill(d, root, ns, settings); err != nil {
		return false, err
	} else if ok {
		populated = true
	}

	if v := adapter.Attr(root, "root-url"); v != "" {
		d.RootURL = v
		populated = true
	}

	subtitle, err := fillText(adapter.FirstChildElement(root, ns, "sub-title"), ns, settings)
	if err != nil {
		return populated, err
	}
	if subtitle != nil {
		d.Subtitle = subtitle
		populated = true
	}

	if authors := adapter.FirstChildElement(root, ns, "authors"); authors != nil {
		for _, n := range adapter.ChildElements(authors, ns, "author") {
			author := &Author{}
			if err := author.fill(n, ns, settings); err != nil {
				return populated, err
			}
			d.Authors = append(d.Authors, author)
			populated = true
		}
	}

	if categories := adapter.FirstChildElement(root, ns, "categories"); categories != nil {
		for _, n := range adapter.ChildElements(categories, ns, "category") {
			category := &Category{}
			if err := category.fill(n, ns, settings); err != nil {
				return populated, err
			}
			d.Categories = append(d.Categories, category)
			populated = true
		}
	}

	if posts := adapter.FirstChildElement(root, ns, "posts"); posts != nil {
		for _, n := range adapter.ChildElements(posts, ns, "post") {
			post := &Post{}
			if err := post.fill(n, ns, settings); err != nil {
				return populated, err
			}
			d.Posts = append(d.Posts, post)
			populated = true
		}
	}

	attached, err := (adapter.ExtensionAdapter{}).Fill(d, root, settings, ns)
	if err != nil {
		return populated, err
	}
	if attached > 0 {
		populated = true
	}

	return populated, nil
}

// WriteContent writes the document's attributes and children onto the
// prepared root element.
func (d *Document) WriteContent(root *etree.Element, settings domain.SaveSettings) error {
	(adapter.CommonFieldAdapter{}).WriteAttributes(d, root)
	if u := strings.TrimSpace(d.RootURL); u != "" {
		root.CreateAttr("root-url", u)
	}

	if err := (adapter.CommonFieldAdapter{}).WriteElements(d, root); err != nil {
		return err
	}
	if err := adapter.WriteTextElement(root, "sub-title", d.Subtitle); err != nil {
		return err
	}

	if len(d.Authors) > 0 {
		wrap := root.CreateElement("authors")
		for _, a := range d.Authors {
			if a == nil {
				continue
			}
			if err := writeChild(wrap, "author", a.writeContent); err != nil {
				return err
			}
		}
	}

	if len(d.Categories) > 0 {
		wrap := root.CreateElement("categories")
		for _, c := range d.Categories {
			if c == nil {
				continue
			}
			if err := writeChild(wrap, "category", c.writeContent); err != nil {
				return err
			}
		}
	}

	if len(d.Posts) > 0 {
		wrap := root.CreateElement("posts")
		for _, p := range d.Posts {
			if p == nil {
				continue
			}
			if err := writeChild(wrap, "post", p.writeContent); err != nil {
				return err
			}
		}
	}

	return (adapter.ExtensionAdapter{}).WriteTo(d, root)
}

// WalkExtensible visits the document and every extensible node beneath it in
// document order.
func (d *Document) WalkExtensible(visit func(domain.Extensible) bool) bool {
	if !visit(d) {
		return false
	}
	if !walkText(d.Title, visit) || !walkText(d.Subtitle, visit) {
		return false
	}
	for _, a := range d.Authors {
		if a != nil && !a.WalkExtensible(visit) {
			return false
		}
	}
	for _, c := range d.Categories {
		if c != nil && !c.WalkExtensible(visit) {
			return false
		}
	}
	for _, p := range d.Posts {
		if p != nil && !p.WalkExtensible(visit) {
			return false
		}
	}
	return true
}

// CompareTo orders the document against another instance. A nil other sorts
// first. Attached extensions do not participate in ordering.
func (d *Document) CompareTo(other *Document) int {
	if other == nil {
		return 1
	}
	return compare.Combine(
		(adapter.CommonFieldAdapter{}).Compare(d, other),
		compare.Strings(d.RootURL, other.RootURL),
		compare.Pointers(d.Subtitle, other.Subtitle, (*domain.TextContent).CompareTo),
		compareSlice(d.Authors, other.Authors, (*Author).CompareTo),
		compareSlice(d.Categories, other.Categories, (*Category).CompareTo),
		compareSlice(d.Posts, other.Posts, (*Post).CompareTo),
	)
}

// Equals reports whether other is a *Document that compares equal.
func (d *Document) Equals(other any) bool {
	o, ok := other.(*Document)
	if !ok {
		return false
	}
	return d.CompareTo(o) == 0
}

// Hash returns a hash of the document's canonical serialization.
func (d *Document) Hash() uint64 {
	s, err := adapter.CanonicalFragment(d.RootName(), func(el *etree.Element) error {
		return d.WriteContent(el, domain.SaveSettings{})
	})
	if err != nil {
		return 0
	}
	return compare.HashString(s)
}
