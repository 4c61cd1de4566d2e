// ABOUTME: Comment entity recording a reader response to a post
// ABOUTME: Commenter identity lives in attributes, the response body in a content child

package blogml

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/adapter"
	"syndikit/core/compare"
	"syndikit/core/domain"
)

// Comment is a reader response attached to a post.
type Comment struct {
	domain.Common
	domain.ExtensionSlot

	// UserName is the commenter's display name
	UserName string

	// UserURL is the commenter's web site
	UserURL string

	// UserEmail is the commenter's contact address
	UserEmail string

	// Content is the response body (nil means unset)
	Content *domain.TextContent
}

func (c *Comment) fill(node *xmlquery.Node, ns string, settings domain.LoadSettings) error {
	if _, err := (adapter.CommonFieldAdapter{}).Fill(c, node, ns, settings); err != nil {
		return err
	}

	c.UserName = adapter.Attr(node, "user-name")
	c.UserURL = adapter.Attr(node, "user-url")
	c.UserEmail = adapter.Attr(node, "user-email")

	content, err := fillText(adapter.FirstChildElement(node, ns, "content"), ns, settings)
	if err != nil {
		return err
	}
	c.Content = content

	_, err = (adapter.ExtensionAdapter{}).Fill(c, node, settings, ns)
	return err
}

func (c *Comment) writeContent(el *etree.Element) error {
	(adapter.CommonFieldAdapter{}).WriteAttributes(c, el)
	if name := strings.TrimSpace(c.UserName); name != "" {
		el.CreateAttr("user-name", name)
	}
	if u := strings.TrimSpace(c.UserURL); u != "" {
		el.CreateAttr("user-url", u)
	}
	if email := strings.TrimSpace(c.UserEmail); email != "" {
		el.CreateAttr("user-email", email)
	}

	if err := (adapter.CommonFieldAdapter{}).WriteElements(c, el); err != nil {
		return err
	}
	if err := adapter.WriteTextElement(el, "content", c.Content); err != nil {
		return err
	}
	return (adapter.ExtensionAdapter{}).WriteTo(c, el)
}

// WalkExtensible visits the comment, its title and its content.
func (c *Comment) WalkExtensible(visit func(domain.Extensible) bool) bool {
	if !visit(c) {
		return false
	}
	return walkText(c.Title, visit) && walkText(c.Content, visit)
}

// CompareTo orders the comment against another instance. A nil other sorts
// first. Attached extensions do not participate in ordering.
func (c *Comment) CompareTo(other *Comment) int {
	if other == nil {
		return 1
	}
	return compare.Combine(
		(adapter.CommonFieldAdapter{}).Compare(c, other),
		compare.Strings(c.UserName, other.UserName),
		compare.Strings(c.UserURL, other.UserURL),
		compare.Strings(c.UserEmail, other.UserEmail),
		compare.Pointers(c.Content, other.Content, (*domain.TextContent).CompareTo),
	)
}

// Equals reports whether other is a *Comment that compares equal.
func (c *Comment) Equals(other any) bool {
	o, ok := other.(*Comment)
	if !ok {
		return false
	}
	return c.CompareTo(o) == 0
}

// Hash returns a hash of the comment's canonical serialization.
func (c *Comment) Hash() uint64 {
	s, err := adapter.CanonicalFragment("comment", c.writeContent)
	if err != nil {
		return 0
	}
	return compare.HashString(s)
}
