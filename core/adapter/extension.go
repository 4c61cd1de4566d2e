// ABOUTME: Discovers, attaches and serializes extensions on extensible entities
// ABOUTME: Includes the pre-pass that consolidates extension namespaces at the document root

package adapter

import (
	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/domain"
	"syndikit/core/errors"
)

// ExtensionAdapter attaches recognized extensions during load, writes them
// during save and runs the namespace-consolidation pre-pass. The zero value
// is ready to use.
type ExtensionAdapter struct{}

// Fill constructs one instance per recognized extension type and attaches
// every instance that matched content beneath node, returning how many
// attached. Construction follows the settings' registration order rather
// than document order, so reloading a reordered document attaches the same
// instances. Namespaces listed in reserved belong to the format being parsed
// and are never claimed by an extension.
func (ExtensionAdapter) Fill(entity domain.Extensible, node *xmlquery.Node, settings domain.LoadSettings, reserved ...string) (int, error) {
	if entity == nil {
		return 0, &errors.ArgumentError{Name: "entity", Message: "must not be nil"}
	}
	if node == nil {
		return 0, &errors.ArgumentError{Name: "node", Message: "must not be nil"}
	}

	attached := 0
	for _, factory := range settings.RecognizedExtensions {
		if factory == nil {
			continue
		}
		ext := factory()
		if ext == nil || reservedNamespace(ext.Namespace(), reserved) {
			continue
		}

		matched, err := ext.Load(node)
		if err != nil {
			return attached, errors.WrapError(err, "extension "+ext.Name()+" failed to load")
		}
		if matched {
			entity.AddExtension(ext)
			attached++
		}
	}
	return attached, nil
}

// WriteTo writes entity's attached extensions beneath parent in attachment
// order. Callers write native fields first; extensions always come last
// within their owning element.
func (ExtensionAdapter) WriteTo(entity domain.Extensible, parent *etree.Element) error {
	if entity == nil || parent == nil {
		return nil
	}
	for _, ext := range entity.Extensions() {
		if err := ext.WriteTo(parent); err != nil {
			return errors.WrapError(err, "extension "+ext.Name()+" failed to write")
		}
	}
	return nil
}

// CollectTypes walks the entire graph beneath root and returns the distinct
// extension types attached anywhere, in first-encounter order. Namespace
// declarations are conventionally hoisted once to the document root, so the
// save pipeline runs this pre-pass before writing any content.
func (ExtensionAdapter) CollectTypes(root domain.TreeWalker) []domain.ExtensionType {
	if root == nil {
		return nil
	}

	var types []domain.ExtensionType
	seen := make(map[domain.ExtensionType]struct{})

	root.WalkExtensible(func(e domain.Extensible) bool {
		for _, ext := range e.Extensions() {
			t := domain.TypeOf(ext)
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			types = append(types, t)
		}
		return true
	})

	return types
}

func reservedNamespace(ns string, reserved []string) bool {
	for _, r := range reserved {
		if ns == r {
			return true
		}
	}
	return false
}
