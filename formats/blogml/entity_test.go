package blogml

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"syndikit/core/domain"
)

func TestAuthorCompareTo_EmailBreaksTies(t *testing.T) {
	a := &Author{Email: "a@example.com"}
	a.ID = "a1"
	b := &Author{Email: "b@example.com"}
	b.ID = "a1"

	assert.Negative(t, a.CompareTo(b))
	assert.Positive(t, b.CompareTo(a))

	b.Email = "A@EXAMPLE.COM"
	assert.Equal(t, 0, a.CompareTo(b))
}

func TestAuthorCompareTo_Totality(t *testing.T) {
	a := &Author{Email: "a@example.com"}

	assert.Positive(t, a.CompareTo(nil))
	assert.Equal(t, 0, a.CompareTo(a))
	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(&Category{}))
}

func TestCategoryCompareTo_FieldPriority(t *testing.T) {
	a := &Category{Description: "alpha", ParentRef: "z"}
	b := &Category{Description: "beta", ParentRef: "a"}

	// description resolves before the parent reference
	assert.Negative(t, a.CompareTo(b))

	b.Description = "alpha"
	assert.Positive(t, a.CompareTo(b))
}

func TestCommentCompareTo_UserFieldsInOrder(t *testing.T) {
	a := &Comment{UserName: "pat", UserURL: "http://a.example.com"}
	b := &Comment{UserName: "pat", UserURL: "http://b.example.com"}

	assert.Negative(t, a.CompareTo(b))

	b.UserURL = a.UserURL
	b.UserEmail = "pat@example.com"
	assert.Negative(t, a.CompareTo(b))

	a.UserEmail = b.UserEmail
	assert.Equal(t, 0, a.CompareTo(b))
}

func TestCommentCompareTo_ContentResolvesLast(t *testing.T) {
	a := &Comment{UserName: "pat", Content: domain.NewTextContent("first")}
	b := &Comment{UserName: "pat", Content: domain.NewTextContent("second")}

	assert.NotEqual(t, 0, a.CompareTo(b))
	assert.Positive(t, a.CompareTo(&Comment{UserName: "pat"}))
}

func TestTrackbackCompareTo_URL(t *testing.T) {
	a := &Trackback{URL: "http://a.example.com/1"}
	b := &Trackback{URL: "http://b.example.com/1"}

	assert.Negative(t, a.CompareTo(b))
	assert.Positive(t, a.CompareTo(nil))
	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals("trackback"))
}

func TestAttachmentCompareTo_FieldPriority(t *testing.T) {
	external := &Attachment{MimeType: "image/png"}
	embedded := &Attachment{Embedded: true, MimeType: "image/png"}

	// an external attachment sorts before an embedded one
	assert.Negative(t, external.CompareTo(embedded))

	a := &Attachment{Embedded: true, Data: []byte("aaa")}
	b := &Attachment{Embedded: true, Data: []byte("aab")}
	assert.Negative(t, a.CompareTo(b))

	assert.Positive(t, a.CompareTo(nil))
	assert.Equal(t, 0, a.CompareTo(a))
}

func TestEntityHash_MatchesEquality(t *testing.T) {
	a := &Author{Email: "sven@example.com"}
	a.ID = "a1"
	a.Title = domain.NewTextContent("Sven")

	b := &Author{Email: "sven@example.com"}
	b.ID = "a1"
	b.Title = domain.NewTextContent("Sven")

	assert.Equal(t, a.Hash(), b.Hash())

	b.Email = "other@example.com"
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestEntityEquals_IgnoresAttachedExtensions(t *testing.T) {
	a := &Comment{UserName: "pat"}
	b := &Comment{UserName: "pat"}
	b.AddExtension(&reviewExtension{Notes: []string{"checked"}})

	assert.True(t, a.Equals(b))
	assert.Equal(t, 0, a.CompareTo(b))
}
