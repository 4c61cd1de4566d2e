// ABOUTME: Attachment entity carrying a file referenced by or embedded in a post
// ABOUTME: Embedded payloads travel base64-encoded in the element body

package blogml

import (
	"bytes"
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/adapter"
	"syndikit/core/compare"
	"syndikit/core/domain"
	"syndikit/pkg/utils/parse"
)

// Attachment is a file associated with a post. An embedded attachment
// carries its payload base64-encoded in the element body; otherwise the
// external URI points at the file. Attachments have no identifier or title
// of their own.
type Attachment struct {
	domain.ExtensionSlot

	// Embedded reports whether the payload travels inside the document
	Embedded bool

	// MimeType is the payload's media type
	MimeType string

	// Size is the payload size in bytes
	Size int64

	// URL is the attachment's address within the web log
	URL string

	// ExternalURI is the address of a payload hosted outside the document
	ExternalURI string

	// Data is the decoded payload of an embedded attachment
	Data []byte
}

func (a *Attachment) fill(node *xmlquery.Node, ns string, settings domain.LoadSettings) error {
	a.Embedded = parse.BoolOrFalse(adapter.Attr(node, "embedded"))
	a.MimeType = adapter.Attr(node, "mime-type")
	a.Size = parse.Int64OrZero(adapter.Attr(node, "size"))
	a.URL = adapter.Attr(node, "url")
	a.ExternalURI = adapter.Attr(node, "external-uri")

	if a.Embedded {
		if decoded, err := base64.StdEncoding.DecodeString(adapter.InnerText(node)); err == nil {
			a.Data = decoded
		}
	}

	_, err := (adapter.ExtensionAdapter{}).Fill(a, node, settings, ns)
	return err
}

func (a *Attachment) writeContent(el *etree.Element) error {
	if a.Embedded {
		el.CreateAttr("embedded", "true")
	}
	if mime := strings.TrimSpace(a.MimeType); mime != "" {
		el.CreateAttr("mime-type", mime)
	}
	if a.Size > 0 {
		el.CreateAttr("size", strconv.FormatInt(a.Size, 10))
	}
	if u := strings.TrimSpace(a.URL); u != "" {
		el.CreateAttr("url", u)
	}
	if u := strings.TrimSpace(a.ExternalURI); u != "" {
		el.CreateAttr("external-uri", u)
	}

	if len(a.Data) > 0 {
		el.SetText(base64.StdEncoding.EncodeToString(a.Data))
	}
	return (adapter.ExtensionAdapter{}).WriteTo(a, el)
}

// WalkExtensible visits the attachment itself.
func (a *Attachment) WalkExtensible(visit func(domain.Extensible) bool) bool {
	return visit(a)
}

// CompareTo orders the attachment against another instance. A nil other
// sorts first. Attached extensions do not participate in ordering.
func (a *Attachment) CompareTo(other *Attachment) int {
	if other == nil {
		return 1
	}
	return compare.Combine(
		compare.Bools(a.Embedded, other.Embedded),
		compare.Strings(a.MimeType, other.MimeType),
		compare.Int64s(a.Size, other.Size),
		compare.Strings(a.URL, other.URL),
		compare.Strings(a.ExternalURI, other.ExternalURI),
		bytes.Compare(a.Data, other.Data),
	)
}

// Equals reports whether other is an *Attachment that compares equal.
func (a *Attachment) Equals(other any) bool {
	o, ok := other.(*Attachment)
	if !ok {
		return false
	}
	return a.CompareTo(o) == 0
}

// Hash returns a hash of the attachment's canonical serialization.
func (a *Attachment) Hash() uint64 {
	s, err := adapter.CanonicalFragment("attachment", a.writeContent)
	if err != nil {
		return 0
	}
	return compare.HashString(s)
}
