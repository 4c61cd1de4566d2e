package adapter

import (
	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/domain"
	"syndikit/pkg/xmlns"
)

const testExtensionNS = "http://example.com/notes"

// testExtension claims <n:note> children in its owned namespace.
type testExtension struct {
	notes []string
}

func newTestExtension() domain.Extension {
	return &testExtension{}
}

func (e *testExtension) Name() string      { return "Notes" }
func (e *testExtension) Prefix() string    { return "n" }
func (e *testExtension) Namespace() string { return testExtensionNS }

func (e *testExtension) Load(node *xmlquery.Node) (bool, error) {
	for _, child := range ChildrenInNamespace(node, testExtensionNS) {
		if child.Data == "note" {
			e.notes = append(e.notes, InnerText(child))
		}
	}
	return len(e.notes) > 0, nil
}

func (e *testExtension) WriteTo(parent *etree.Element) error {
	for _, note := range e.notes {
		parent.CreateElement("n:note").SetText(note)
	}
	return nil
}

// testResource is a minimal single-element document used to exercise the
// adapter pipeline without a full format implementation.
type testResource struct {
	domain.Common
	domain.ExtensionSlot
}

func (r *testResource) Format() domain.ContentFormat { return domain.FormatBlogML }
func (r *testResource) RootName() string             { return "blog" }
func (r *testResource) RootNamespace() string        { return xmlns.BlogML }

func (r *testResource) Fill(node *xmlquery.Node, settings domain.LoadSettings) (bool, error) {
	populated, err := CommonFieldAdapter{}.Fill(r, node, node.NamespaceURI, settings)
	if err != nil {
		return false, err
	}
	attached, err := ExtensionAdapter{}.Fill(r, node, settings, node.NamespaceURI)
	if err != nil {
		return populated, err
	}
	return populated || attached > 0, nil
}

func (r *testResource) WriteContent(root *etree.Element, settings domain.SaveSettings) error {
	CommonFieldAdapter{}.WriteAttributes(r, root)
	if err := (CommonFieldAdapter{}).WriteElements(r, root); err != nil {
		return err
	}
	return ExtensionAdapter{}.WriteTo(r, root)
}

func (r *testResource) WalkExtensible(visit func(domain.Extensible) bool) bool {
	if !visit(r) {
		return false
	}
	if r.Title != nil && !r.Title.WalkExtensible(visit) {
		return false
	}
	return true
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}

func parseFragment(t interface{ Fatalf(string, ...interface{}) }, doc string) *xmlquery.Node {
	node, err := ParseBytes([]byte(doc), domain.LoadSettings{}, "")
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return node
}
