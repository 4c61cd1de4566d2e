// ABOUTME: Orchestrates whole-document load and save for any resource format
// ABOUTME: Detects the vocabulary, drives the fill routines and hoists extension namespaces on save

package adapter

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/domain"
	"syndikit/core/errors"
	"syndikit/core/interfaces"
	"syndikit/pkg/xmlns"
)

// ResourceAdapter translates between navigable XML trees and populated
// resource graphs.
type ResourceAdapter struct {
	deps interfaces.Dependencies
}

// NewResourceAdapter creates a new resource adapter instance
func NewResourceAdapter(deps interfaces.Dependencies) *ResourceAdapter {
	return &ResourceAdapter{
		deps: deps,
	}
}

// DetectFormat identifies the syndication vocabulary of a parsed document by
// its root element. Returns FormatNone when the root is not recognized.
func DetectFormat(node *xmlquery.Node) domain.ContentFormat {
	root := RootElement(node)
	if root == nil {
		return domain.FormatNone
	}

	switch strings.ToLower(root.Data) {
	case "blog":
		return domain.FormatBlogML
	case "apml":
		return domain.FormatAPML
	case "feed":
		return domain.FormatAtom
	case "rss":
		return domain.FormatRSS
	case "opml":
		return domain.FormatOPML
	default:
		return domain.FormatNone
	}
}

// Load populates res from a parsed document tree. The document's detected
// format must match the resource's own; on a mismatch res is left
// unmodified and a format error is returned. Load reports whether any
// content was populated.
func (a *ResourceAdapter) Load(res domain.Resource, node *xmlquery.Node, settings domain.LoadSettings) (bool, error) {
	if res == nil {
		return false, &errors.ArgumentError{Name: "resource", Message: "must not be nil"}
	}
	if node == nil {
		return false, &errors.ArgumentError{Name: "node", Message: "must not be nil"}
	}

	root := RootElement(node)
	if root == nil {
		return false, &errors.FormatError{Message: "document has no root element"}
	}

	if detected := DetectFormat(root); detected != res.Format() {
		return false, &errors.FormatError{
			Format:  res.Format().Token(),
			Message: fmt.Sprintf("root element %q does not begin a %s document", root.Data, res.Format()),
		}
	}

	populated, err := res.Fill(root, settings)
	if err != nil {
		a.logError("Failed to fill resource", map[string]interface{}{
			"format": res.Format().Token(),
			"error":  err.Error(),
		})
		return populated, err
	}

	a.logDebug("Loaded resource", map[string]interface{}{
		"format":    res.Format().Token(),
		"populated": populated,
	})
	return populated, nil
}

// LoadBytes parses data per the settings' encoding and populates res from
// the resulting tree.
func (a *ResourceAdapter) LoadBytes(res domain.Resource, data []byte, settings domain.LoadSettings) (bool, error) {
	if res == nil {
		return false, &errors.ArgumentError{Name: "resource", Message: "must not be nil"}
	}
	if len(data) == 0 {
		return false, &errors.ArgumentError{Name: "data", Message: "must not be empty"}
	}

	doc, err := ParseBytes(data, settings, "")
	if err != nil {
		return false, err
	}
	return a.Load(res, doc, settings)
}

// LoadReader reads r to completion and populates res from its content.
func (a *ResourceAdapter) LoadReader(res domain.Resource, r io.Reader, settings domain.LoadSettings) (bool, error) {
	if r == nil {
		return false, &errors.ArgumentError{Name: "reader", Message: "must not be nil"}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return false, errors.WrapError(err, "failed to read resource content")
	}
	return a.LoadBytes(res, data, settings)
}

// Save serializes res onto w. When the settings ask for extension
// auto-detection the save first collects every attached extension type from
// the whole graph and declares the namespaces once on the root element,
// before any content is written.
func (a *ResourceAdapter) Save(res domain.Resource, w io.Writer, settings domain.SaveSettings) error {
	if res == nil {
		return &errors.ArgumentError{Name: "resource", Message: "must not be nil"}
	}
	if w == nil {
		return &errors.ArgumentError{Name: "writer", Message: "must not be nil"}
	}

	out, label, err := encodeWriter(w, settings.CharacterEncoding)
	if err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", fmt.Sprintf(`version="1.0" encoding=%q`, label))

	root := doc.CreateElement(res.RootName())
	xmlns.Declare(root, "", res.RootNamespace())

	if settings.AutoDetectExtensions {
		settings.SupportedExtensions = ExtensionAdapter{}.CollectTypes(res)
	}
	for _, t := range settings.SupportedExtensions {
		if t.Namespace == res.RootNamespace() {
			continue
		}
		xmlns.Declare(root, t.Prefix, t.Namespace)
	}

	if err := res.WriteContent(root, settings); err != nil {
		a.logError("Failed to write resource", map[string]interface{}{
			"format": res.Format().Token(),
			"error":  err.Error(),
		})
		return err
	}

	if !settings.MinimizeOutput {
		doc.Indent(2)
	}

	if _, err := doc.WriteTo(out); err != nil {
		return errors.WrapError(err, "failed to write serialized resource")
	}

	a.logDebug("Saved resource", map[string]interface{}{
		"format":     res.Format().Token(),
		"extensions": len(settings.SupportedExtensions),
	})
	return nil
}

// SaveString serializes res and returns the document as a string.
func (a *ResourceAdapter) SaveString(res domain.Resource, settings domain.SaveSettings) (string, error) {
	var sb strings.Builder
	if err := a.Save(res, &sb, settings); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// CanonicalFragment renders the element produced by write into the canonical
// string form entities hash and compare against.
func CanonicalFragment(name string, write func(el *etree.Element) error) (string, error) {
	doc := etree.NewDocument()
	el := doc.CreateElement(name)
	if err := write(el); err != nil {
		return "", err
	}
	return doc.WriteToString()
}

func (a *ResourceAdapter) logDebug(msg string, fields map[string]interface{}) {
	if a.deps.Logger != nil {
		a.deps.Logger.Debug(msg, fields)
	}
}

func (a *ResourceAdapter) logError(msg string, fields map[string]interface{}) {
	if a.deps.Logger != nil {
		a.deps.Logger.Error(msg, fields)
	}
}
