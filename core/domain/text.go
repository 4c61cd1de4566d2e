// ABOUTME: Typed textual content used for titles, bodies and excerpts
// ABOUTME: Carries a content type discriminator and converts markup back to plain text

package domain

import (
	"encoding/base64"
	"strings"

	"syndikit/core/codec"
	"syndikit/core/compare"
	"syndikit/pkg/utils/html"
)

// TextType identifies how a TextContent's value is encoded.
type TextType int

const (
	// TextPlain is unencoded plain text and the default when no type is declared
	TextPlain TextType = iota

	// TextHTML is HTML markup
	TextHTML

	// TextXHTML is XHTML markup
	TextXHTML

	// TextBase64 is base64-encoded content
	TextBase64
)

var textTypeCodec = codec.New("text-type", []codec.Entry[TextType]{
	{Value: TextPlain, Token: "text", Display: "Text"},
	{Value: TextHTML, Token: "html", Display: "HTML"},
	{Value: TextXHTML, Token: "xhtml", Display: "XHTML"},
	{Value: TextBase64, Token: "base64", Display: "Base64"},
})

// ParseTextType decodes a wire token, returning TextPlain for unrecognized
// tokens.
func ParseTextType(token string) TextType {
	return textTypeCodec.Decode(token)
}

// Token returns the type's wire token.
func (t TextType) Token() string {
	return textTypeCodec.Encode(t)
}

// String returns the type's display name.
func (t TextType) String() string {
	return textTypeCodec.Display(t)
}

// TextContent is a block of textual content with an associated content type.
// Titles, post bodies, excerpts and comment bodies are all TextContent, and
// each accepts extensions of its own.
type TextContent struct {
	ExtensionSlot

	// Value is the raw content as it appears in the document
	Value string

	// Type identifies how Value is encoded
	Type TextType
}

// NewTextContent returns plain text content with the given value.
func NewTextContent(value string) *TextContent {
	return &TextContent{Value: value}
}

// PlainText returns the content with any markup or encoding removed. HTML
// and XHTML values are stripped of tags, base64 values are decoded, and
// values that fail to convert are returned unchanged.
func (t *TextContent) PlainText() string {
	switch t.Type {
	case TextHTML, TextXHTML:
		return html.Strip(t.Value)
	case TextBase64:
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(t.Value))
		if err != nil {
			return t.Value
		}
		return string(decoded)
	default:
		return t.Value
	}
}

// IsEmpty reports whether the content carries no value and no extensions.
func (t *TextContent) IsEmpty() bool {
	return t == nil || (strings.TrimSpace(t.Value) == "" && !t.HasExtensions())
}

// CompareTo orders the content against another instance. A nil other sorts
// first.
func (t *TextContent) CompareTo(other *TextContent) int {
	if other == nil {
		return 1
	}
	return compare.Combine(
		compare.Strings(t.Value, other.Value),
		compare.Ints(int(t.Type), int(other.Type)),
	)
}

// Equals reports whether other is a *TextContent that compares equal.
func (t *TextContent) Equals(other any) bool {
	tc, ok := other.(*TextContent)
	if !ok {
		return false
	}
	return t.CompareTo(tc) == 0
}

// WalkExtensible visits the content itself.
func (t *TextContent) WalkExtensible(visit func(Extensible) bool) bool {
	return visit(t)
}
