// ABOUTME: Shared load/write/compare logic for the common field block
// ABOUTME: Authors, categories, posts, comments and trackbacks reuse it instead of duplicating per type

package adapter

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/domain"
	"syndikit/core/errors"
	timeutil "syndikit/pkg/utils/time"
)

// CommonFieldAdapter loads, writes and compares the field block shared by
// identifiable entities. The zero value is ready to use; the adapter holds
// no state of its own.
type CommonFieldAdapter struct{}

// Fill reads the id, date-created, date-modified and approved attributes and
// a single title child element in namespace ns from node into target.
// Fields that fail to parse are skipped without error; Fill reports whether
// any field was populated. Extensions recognized by settings attach to the
// title when its element carries namespaced content.
func (CommonFieldAdapter) Fill(target domain.CommonFields, node *xmlquery.Node, ns string, settings domain.LoadSettings) (bool, error) {
	if target == nil {
		return false, &errors.ArgumentError{Name: "target", Message: "must not be nil"}
	}
	if node == nil {
		return false, &errors.ArgumentError{Name: "node", Message: "must not be nil"}
	}

	c := target.CommonFields()
	populated := false

	if id := Attr(node, "id"); id != "" {
		c.ID = id
		populated = true
	}

	if raw := Attr(node, "date-created"); raw != "" {
		if t := timeutil.ParseFlexibleTime(raw); !t.IsZero() {
			c.CreatedOn = t
			populated = true
		}
	}

	if raw := Attr(node, "date-modified"); raw != "" {
		if t := timeutil.ParseFlexibleTime(raw); !t.IsZero() {
			c.LastModifiedOn = t
			populated = true
		}
	}

	if raw := Attr(node, "approved"); raw != "" {
		if status, ok := domain.LookupApprovalStatus(raw); ok {
			c.ApprovalStatus = status
			populated = true
		}
	}

	if titleNode := FirstChildElement(node, ns, "title"); titleNode != nil {
		title := FillTextContent(titleNode)
		if _, err := (ExtensionAdapter{}).Fill(title, titleNode, settings, ns); err != nil {
			return populated, err
		}
		c.Title = title
		populated = true
	}

	return populated, nil
}

// WriteAttributes writes source's identifier, timestamps and approval status
// onto el, omitting unset fields.
func (CommonFieldAdapter) WriteAttributes(source domain.CommonFields, el *etree.Element) {
	if source == nil || el == nil {
		return
	}
	c := source.CommonFields()

	if id := strings.TrimSpace(c.ID); id != "" {
		el.CreateAttr("id", id)
	}
	if !c.CreatedOn.IsZero() {
		el.CreateAttr("date-created", timeutil.FormatWire(c.CreatedOn))
	}
	if !c.LastModifiedOn.IsZero() {
		el.CreateAttr("date-modified", timeutil.FormatWire(c.LastModifiedOn))
	}
	if token := c.ApprovalStatus.Token(); token != "" {
		el.CreateAttr("approved", token)
	}
}

// WriteElements writes source's title child onto el when one is set.
func (CommonFieldAdapter) WriteElements(source domain.CommonFields, el *etree.Element) error {
	if source == nil || el == nil {
		return nil
	}
	c := source.CommonFields()

	if c.Title != nil {
		if err := WriteTextElement(el, "title", c.Title); err != nil {
			return err
		}
	}
	return nil
}

// Compare orders two shared field blocks. Fields resolve in a fixed
// priority: approval status, creation time, identifier, modification time,
// then title. An absent side sorts first.
func (CommonFieldAdapter) Compare(a, b domain.CommonFields) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return domain.CompareCommon(a.CommonFields(), b.CommonFields())
	}
}

// FillTextContent builds typed text content from an element, reading the
// type attribute and the element's text.
func FillTextContent(node *xmlquery.Node) *domain.TextContent {
	if node == nil {
		return nil
	}
	return &domain.TextContent{
		Value: InnerText(node),
		Type:  domain.ParseTextType(Attr(node, "type")),
	}
}

// WriteTextElement appends a child element named name carrying content's
// value and type, then the content's extensions. The default text type is
// omitted from output.
func WriteTextElement(parent *etree.Element, name string, content *domain.TextContent) error {
	if parent == nil || content == nil {
		return nil
	}

	child := parent.CreateElement(name)
	if content.Type != domain.TextPlain {
		child.CreateAttr("type", content.Type.Token())
	}
	child.SetText(content.Value)

	return ExtensionAdapter{}.WriteTo(content, child)
}
