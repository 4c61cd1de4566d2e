// ABOUTME: Approval status enumeration and the shared field block entities embed
// ABOUTME: Authors, categories, posts, comments and trackbacks all carry these fields

package domain

import (
	"time"

	"syndikit/core/codec"
	"syndikit/core/compare"
)

// ApprovalStatus records whether an entity was approved for publication.
type ApprovalStatus int

const (
	// ApprovalUnspecified indicates no approval decision was recorded
	ApprovalUnspecified ApprovalStatus = iota

	// ApprovalApproved indicates the entity was approved for publication
	ApprovalApproved

	// ApprovalNotApproved indicates the entity was withheld from publication
	ApprovalNotApproved
)

var approvalStatusCodec = codec.New("approval-status", []codec.Entry[ApprovalStatus]{
	{Value: ApprovalUnspecified, Token: "", Display: "Unspecified"},
	{Value: ApprovalApproved, Token: "true", Display: "Approved"},
	{Value: ApprovalNotApproved, Token: "false", Display: "Not approved"},
})

// ParseApprovalStatus decodes a wire token, returning ApprovalUnspecified
// for unrecognized tokens.
func ParseApprovalStatus(token string) ApprovalStatus {
	return approvalStatusCodec.Decode(token)
}

// LookupApprovalStatus decodes a wire token and reports whether the token
// is part of the table.
func LookupApprovalStatus(token string) (ApprovalStatus, bool) {
	return approvalStatusCodec.Lookup(token)
}

// Token returns the status's wire token. ApprovalUnspecified has no token
// and is omitted from serialized output.
func (s ApprovalStatus) Token() string {
	return approvalStatusCodec.Encode(s)
}

// String returns the status's display name.
func (s ApprovalStatus) String() string {
	return approvalStatusCodec.Display(s)
}

// Common holds the field block shared by identifiable entities. Embedding
// Common gives an entity the CommonFields capability; the shared adapter
// then handles loading, writing and comparing these fields.
//
// String fields are normalized on write: nil input reads back as the empty
// string and values are trimmed of surrounding whitespace.
type Common struct {
	// ID is the entity's identifier within its document
	ID string

	// Title is the entity's human-readable title (nil means unset)
	Title *TextContent

	// CreatedOn is when the entity was created (zero means unset)
	CreatedOn time.Time

	// LastModifiedOn is when the entity was last modified (zero means unset)
	LastModifiedOn time.Time

	// ApprovalStatus records the entity's publication decision
	ApprovalStatus ApprovalStatus
}

// CommonFields returns the shared field block.
func (c *Common) CommonFields() *Common {
	return c
}

// TitleText returns the title's plain-text value, or the empty string when
// no title is set.
func (c *Common) TitleText() string {
	if c.Title == nil {
		return ""
	}
	return c.Title.PlainText()
}

// CompareCommon orders two shared field blocks. Fields resolve in a fixed
// priority: approval status, creation time, identifier, modification time,
// then title, where an absent title sorts before a present one.
func CompareCommon(a, b *Common) int {
	return compare.Combine(
		compare.Ints(int(a.ApprovalStatus), int(b.ApprovalStatus)),
		compare.Times(a.CreatedOn, b.CreatedOn),
		compare.Strings(a.ID, b.ID),
		compare.Times(a.LastModifiedOn, b.LastModifiedOn),
		compare.Pointers(a.Title, b.Title, (*TextContent).CompareTo),
	)
}
