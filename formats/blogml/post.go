// ABOUTME: Post entity carrying the web log entry body and its nested collections
// ABOUTME: Comments, trackbacks and attachments hang off posts, never off the document

package blogml

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/adapter"
	"syndikit/core/codec"
	"syndikit/core/compare"
	"syndikit/core/domain"
	"syndikit/pkg/utils/parse"
)

// PostType identifies the kind of entry a post is.
type PostType int

const (
	// PostNormal is a regular web log entry and the default when no type
	// is declared
	PostNormal PostType = iota

	// PostArticle is a long-form article
	PostArticle
)

var postTypeCodec = codec.New("post-type", []codec.Entry[PostType]{
	{Value: PostNormal, Token: "normal", Display: "Normal"},
	{Value: PostArticle, Token: "article", Display: "Article"},
})

// ParsePostType decodes a wire token, returning PostNormal for unrecognized
// tokens.
func ParsePostType(token string) PostType {
	return postTypeCodec.Decode(token)
}

// Token returns the type's wire token.
func (t PostType) Token() string {
	return postTypeCodec.Encode(t)
}

// String returns the type's display name.
func (t PostType) String() string {
	return postTypeCodec.Display(t)
}

// Post is a single web log entry. Author and category references point at
// entities registered on the document; comments, trackbacks and attachments
// are owned by the post itself.
type Post struct {
	domain.Common
	domain.ExtensionSlot

	// PostURL is the entry's public URL
	PostURL string

	// PostName is an alternate name for the entry (nil means unset)
	PostName *domain.TextContent

	// Content is the entry body (nil means unset)
	Content *domain.TextContent

	// Excerpt is the entry summary (nil means unset)
	Excerpt *domain.TextContent

	// HasExcerpt reports whether the excerpt should be shown in place of
	// the body
	HasExcerpt bool

	// Views counts how often the entry was viewed
	Views int

	// Type identifies the kind of entry
	Type PostType

	// AuthorRefs lists identifiers of the document authors who wrote the
	// entry
	AuthorRefs []string

	// CategoryRefs lists identifiers of the document categories the entry
	// belongs to
	CategoryRefs []string

	// Comments lists reader responses in document order
	Comments []*Comment

	// Trackbacks lists received trackbacks in document order
	Trackbacks []*Trackback

	// Attachments lists files attached to the entry in document order
	Attachments []*Attachment
}

func (p *Post) fill(node *xmlquery.Node, ns string, settings domain.LoadSettings) error {
	if _, err := (adapter.CommonFieldAdapter{}).Fill(p, node, ns, settings); err != nil {
		return err
	}

	p.PostURL = adapter.Attr(node, "post-url")
	p.Type = ParsePostType(adapter.Attr(node, "type"))
	p.HasExcerpt = parse.BoolOrFalse(adapter.Attr(node, "hasexcerpt"))
	p.Views = parse.IntOrZero(adapter.Attr(node, "views"))

	content, err := fillText(adapter.FirstChildElement(node, ns, "content"), ns, settings)
	if err != nil {
		return err
	}
	p.Content = content

	postName, err := fillText(adapter.FirstChildElement(node, ns, "post-name"), ns, settings)
	if err != nil {
		return err
	}
	p.PostName = postName

	excerpt, err := fillText(adapter.FirstChildElement(node, ns, "excerpt"), ns, settings)
	if err != nil {
		return err
	}
	p.Excerpt = excerpt

	if refs := adapter.FirstChildElement(node, ns, "authors"); refs != nil {
		for _, n := range adapter.ChildElements(refs, ns, "author") {
			if ref := adapter.Attr(n, "ref"); ref != "" {
				p.AuthorRefs = append(p.AuthorRefs, ref)
			}
		}
	}

	if refs := adapter.FirstChildElement(node, ns, "categories"); refs != nil {
		for _, n := range adapter.ChildElements(refs, ns, "category") {
			if ref := adapter.Attr(n, "ref"); ref != "" {
				p.CategoryRefs = append(p.CategoryRefs, ref)
			}
		}
	}

	if comments := adapter.FirstChildElement(node, ns, "comments"); comments != nil {
		for _, n := range adapter.ChildElements(comments, ns, "comment") {
			comment := &Comment{}
			if err := comment.fill(n, ns, settings); err != nil {
				return err
			}
			p.Comments = append(p.Comments, comment)
		}
	}

	if trackbacks := adapter.FirstChildElement(node, ns, "trackbacks"); trackbacks != nil {
		for _, n := range adapter.ChildElements(trackbacks, ns, "trackback") {
			trackback := &Trackback{}
			if err := trackback.fill(n, ns, settings); err != nil {
				return err
			}
			p.Trackbacks = append(p.Trackbacks, trackback)
		}
	}

	if attachments := adapter.FirstChildElement(node, ns, "attachments"); attachments != nil {
		for _, n := range adapter.ChildElements(attachments, ns, "attachment") {
			attachment := &Attachment{}
			if err := attachment.fill(n, ns, settings); err != nil {
				return err
			}
			p.Attachments = append(p.Attachments, attachment)
		}
	}

	_, err = (adapter.ExtensionAdapter{}).Fill(p, node, settings, ns)
	return err
}

func (p *Post) writeContent(el *etree.Element) error {
	(adapter.CommonFieldAdapter{}).WriteAttributes(p, el)
	if u := strings.TrimSpace(p.PostURL); u != "" {
		el.CreateAttr("post-url", u)
	}
	if p.Type != PostNormal {
		el.CreateAttr("type", p.Type.Token())
	}
	if p.HasExcerpt {
		el.CreateAttr("hasexcerpt", "true")
	}
	if p.Views > 0 {
		el.CreateAttr("views", strconv.Itoa(p.Views))
	}

	if err := (adapter.CommonFieldAdapter{}).WriteElements(p, el); err != nil {
		return err
	}
	if err := adapter.WriteTextElement(el, "content", p.Content); err != nil {
		return err
	}
	if err := adapter.WriteTextElement(el, "post-name", p.PostName); err != nil {
		return err
	}
	if err := adapter.WriteTextElement(el, "excerpt", p.Excerpt); err != nil {
		return err
	}

	if len(p.AuthorRefs) > 0 {
		refs := el.CreateElement("authors")
		for _, ref := range p.AuthorRefs {
			refs.CreateElement("author").CreateAttr("ref", ref)
		}
	}
	if len(p.CategoryRefs) > 0 {
		refs := el.CreateElement("categories")
		for _, ref := range p.CategoryRefs {
			refs.CreateElement("category").CreateAttr("ref", ref)
		}
	}

	if len(p.Comments) > 0 {
		wrap := el.CreateElement("comments")
		for _, c := range p.Comments {
			if c == nil {
				continue
			}
			if err := writeChild(wrap, "comment", c.writeContent); err != nil {
				return err
			}
		}
	}
	if len(p.Trackbacks) > 0 {
		wrap := el.CreateElement("trackbacks")
		for _, t := range p.Trackbacks {
			if t == nil {
				continue
			}
			if err := writeChild(wrap, "trackback", t.writeContent); err != nil {
				return err
			}
		}
	}
	if len(p.Attachments) > 0 {
		wrap := el.CreateElement("attachments")
		for _, a := range p.Attachments {
			if a == nil {
				continue
			}
			if err := writeChild(wrap, "attachment", a.writeContent); err != nil {
				return err
			}
		}
	}

	return (adapter.ExtensionAdapter{}).WriteTo(p, el)
}

// WalkExtensible visits the post, its text content and every entity it owns.
func (p *Post) WalkExtensible(visit func(domain.Extensible) bool) bool {
	if !visit(p) {
		return false
	}
	if !walkText(p.Title, visit) || !walkText(p.Content, visit) ||
		!walkText(p.PostName, visit) || !walkText(p.Excerpt, visit) {
		return false
	}
	for _, c := range p.Comments {
		if c != nil && !c.WalkExtensible(visit) {
			return false
		}
	}
	for _, t := range p.Trackbacks {
		if t != nil && !t.WalkExtensible(visit) {
			return false
		}
	}
	for _, a := range p.Attachments {
		if a != nil && !a.WalkExtensible(visit) {
			return false
		}
	}
	return true
}

// CompareTo orders the post against another instance. A nil other sorts
// first. Attached extensions do not participate in ordering.
func (p *Post) CompareTo(other *Post) int {
	if other == nil {
		return 1
	}
	return compare.Combine(
		(adapter.CommonFieldAdapter{}).Compare(p, other),
		compare.Strings(p.PostURL, other.PostURL),
		compare.Ints(int(p.Type), int(other.Type)),
		compare.Bools(p.HasExcerpt, other.HasExcerpt),
		compare.Ints(p.Views, other.Views),
		compare.Pointers(p.Content, other.Content, (*domain.TextContent).CompareTo),
		compare.Pointers(p.PostName, other.PostName, (*domain.TextContent).CompareTo),
		compare.Pointers(p.Excerpt, other.Excerpt, (*domain.TextContent).CompareTo),
		compare.Sequence(p.AuthorRefs, other.AuthorRefs, compare.Strings),
		compare.Sequence(p.CategoryRefs, other.CategoryRefs, compare.Strings),
		compareSlice(p.Comments, other.Comments, (*Comment).CompareTo),
		compareSlice(p.Trackbacks, other.Trackbacks, (*Trackback).CompareTo),
		compareSlice(p.Attachments, other.Attachments, (*Attachment).CompareTo),
	)
}

// Equals reports whether other is a *Post that compares equal.
func (p *Post) Equals(other any) bool {
	o, ok := other.(*Post)
	if !ok {
		return false
	}
	return p.CompareTo(o) == 0
}

// Hash returns a hash of the post's canonical serialization.
func (p *Post) Hash() uint64 {
	s, err := adapter.CanonicalFragment("post", p.writeContent)
	if err != nil {
		return 0
	}
	return compare.HashString(s)
}
