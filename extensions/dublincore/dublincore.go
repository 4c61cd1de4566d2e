// ABOUTME: Dublin Core element set extension attachable to any entity
// ABOUTME: Reads and writes the fifteen dc elements in their conventional order

// Package dublincore implements the Dublin Core metadata element set as an
// attachable extension. Register New in a load settings' recognized
// extensions to pick up dc elements during load.
package dublincore

import (
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/adapter"
	"syndikit/core/domain"
	timeutil "syndikit/pkg/utils/time"
	"syndikit/pkg/xmlns"
)

// Extension carries the Dublin Core element set for one entity. Each field
// maps to the dc element of the same name; empty fields are omitted from
// output.
type Extension struct {
	// Title is a name given to the resource
	Title string

	// Creator is the entity primarily responsible for making the resource
	Creator string

	// Subject is the topic of the resource
	Subject string

	// Description is an account of the resource
	Description string

	// Publisher is the entity responsible for making the resource available
	Publisher string

	// Contributor is an entity contributing to the resource
	Contributor string

	// Date is a point in time associated with the resource (zero means unset)
	Date time.Time

	// Type is the nature or genre of the resource
	Type string

	// Format is the file format or physical medium of the resource
	Format string

	// Identifier is an unambiguous reference to the resource
	Identifier string

	// Source is a related resource the described one derives from
	Source string

	// Language is the language of the resource
	Language string

	// Relation is a related resource
	Relation string

	// Coverage is the spatial or temporal scope of the resource
	Coverage string

	// Rights is information about rights held over the resource
	Rights string
}

// New constructs an empty Dublin Core extension. Its signature matches
// domain.ExtensionFactory.
func New() domain.Extension {
	return &Extension{}
}

// Name returns the extension's human-readable name.
func (e *Extension) Name() string {
	return "Dublin Core"
}

// Prefix returns the conventional dc prefix.
func (e *Extension) Prefix() string {
	return xmlns.PrefixFor(xmlns.DublinCore)
}

// Namespace returns the Dublin Core element set namespace URI.
func (e *Extension) Namespace() string {
	return xmlns.DublinCore
}

// Load reads dc elements among node's direct children and reports whether
// any matched. Elements with local names outside the set are ignored.
func (e *Extension) Load(node *xmlquery.Node) (bool, error) {
	matched := false
	for _, child := range adapter.ChildrenInNamespace(node, xmlns.DublinCore) {
		value := adapter.InnerText(child)

		switch child.Data {
		case "title":
			e.Title = value
		case "creator":
			e.Creator = value
		case "subject":
			e.Subject = value
		case "description":
			e.Description = value
		case "publisher":
			e.Publisher = value
		case "contributor":
			e.Contributor = value
		case "date":
			e.Date = timeutil.ParseFlexibleTime(value)
		case "type":
			e.Type = value
		case "format":
			e.Format = value
		case "identifier":
			e.Identifier = value
		case "source":
			e.Source = value
		case "language":
			e.Language = value
		case "relation":
			e.Relation = value
		case "coverage":
			e.Coverage = value
		case "rights":
			e.Rights = value
		default:
			continue
		}
		matched = true
	}
	return matched, nil
}

// WriteTo appends the set elements beneath parent in conventional order,
// omitting empty fields.
func (e *Extension) WriteTo(parent *etree.Element) error {
	elements := []struct {
		name  string
		value string
	}{
		{"title", e.Title},
		{"creator", e.Creator},
		{"subject", e.Subject},
		{"description", e.Description},
		{"publisher", e.Publisher},
		{"contributor", e.Contributor},
		{"date", dateValue(e.Date)},
		{"type", e.Type},
		{"format", e.Format},
		{"identifier", e.Identifier},
		{"source", e.Source},
		{"language", e.Language},
		{"relation", e.Relation},
		{"coverage", e.Coverage},
		{"rights", e.Rights},
	}

	prefix := e.Prefix()
	for _, el := range elements {
		if strings.TrimSpace(el.value) == "" {
			continue
		}
		parent.CreateElement(prefix + ":" + el.name).SetText(el.value)
	}
	return nil
}

// IsEmpty reports whether no field carries a value.
func (e *Extension) IsEmpty() bool {
	return e.Title == "" && e.Creator == "" && e.Subject == "" &&
		e.Description == "" && e.Publisher == "" && e.Contributor == "" &&
		e.Date.IsZero() && e.Type == "" && e.Format == "" &&
		e.Identifier == "" && e.Source == "" && e.Language == "" &&
		e.Relation == "" && e.Coverage == "" && e.Rights == ""
}

func dateValue(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return timeutil.FormatWire(t)
}
