// ABOUTME: Content format enumeration identifying supported syndication vocabularies
// ABOUTME: Formats map to wire tokens through the shared enumeration codec

package domain

import "syndikit/core/codec"

// ContentFormat identifies a syndication vocabulary.
type ContentFormat int

const (
	// FormatNone indicates no recognized format
	FormatNone ContentFormat = iota

	// FormatAPML is Attention Profiling Markup Language
	FormatAPML

	// FormatAtom is the Atom Syndication Format
	FormatAtom

	// FormatBlogML is Web Log Markup Language
	FormatBlogML

	// FormatOPML is Outline Processor Markup Language
	FormatOPML

	// FormatRSS is Really Simple Syndication
	FormatRSS
)

var contentFormatCodec = codec.New("content-format", []codec.Entry[ContentFormat]{
	{Value: FormatNone, Token: "", Display: "None"},
	{Value: FormatAPML, Token: "apml", Display: "Attention Profiling Markup Language"},
	{Value: FormatAtom, Token: "atom", Display: "Atom Syndication Format"},
	{Value: FormatBlogML, Token: "blogml", Display: "Web Log Markup Language"},
	{Value: FormatOPML, Token: "opml", Display: "Outline Processor Markup Language"},
	{Value: FormatRSS, Token: "rss", Display: "Really Simple Syndication"},
})

// ParseContentFormat decodes a wire token, returning FormatNone for
// unrecognized tokens.
func ParseContentFormat(token string) ContentFormat {
	return contentFormatCodec.Decode(token)
}

// Token returns the format's wire token.
func (f ContentFormat) Token() string {
	return contentFormatCodec.Encode(f)
}

// String returns the format's display name.
func (f ContentFormat) String() string {
	return contentFormatCodec.Display(f)
}
