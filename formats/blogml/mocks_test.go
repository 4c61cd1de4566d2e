package blogml

import (
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"syndikit/core/adapter"
	"syndikit/core/domain"
	"syndikit/core/interfaces"
)

const reviewNamespace = "http://example.com/review"

// reviewExtension collects editorial notes from its owned namespace.
type reviewExtension struct {
	Notes []string
}

func newReviewExtension() domain.Extension {
	return &reviewExtension{}
}

func (e *reviewExtension) Name() string      { return "Review" }
func (e *reviewExtension) Prefix() string    { return "rev" }
func (e *reviewExtension) Namespace() string { return reviewNamespace }

func (e *reviewExtension) Load(node *xmlquery.Node) (bool, error) {
	matched := false
	for _, child := range adapter.ChildrenInNamespace(node, reviewNamespace) {
		e.Notes = append(e.Notes, adapter.InnerText(child))
		matched = true
	}
	return matched, nil
}

func (e *reviewExtension) WriteTo(parent *etree.Element) error {
	for _, note := range e.Notes {
		parent.CreateElement("rev:note").SetText(note)
	}
	return nil
}

func newAdapter() *adapter.ResourceAdapter {
	return adapter.NewResourceAdapter(interfaces.Dependencies{})
}

func loadDocument(t *testing.T, data string, settings domain.LoadSettings) *Document {
	t.Helper()
	doc := NewDocument()
	populated, err := newAdapter().LoadBytes(doc, []byte(data), settings)
	require.NoError(t, err)
	require.True(t, populated)
	return doc
}

func countExtensions(doc *Document) int {
	total := 0
	doc.WalkExtensible(func(e domain.Extensible) bool {
		total += len(e.Extensions())
		return true
	})
	return total
}
