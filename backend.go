package swagen

import (
	"fmt"
	"io"
	"sort"
)

// Backend renders resolved prototypes into concrete declaration syntax
// for one target language. Each backend owns its primitive-name table,
// composite-type syntax, identifier casing and keyword escaping.
//
// A backend must silently skip any prototype that, after composition
// merging, carries none of properties, array, enum, or a mappable
// primitive.
type Backend interface {
	// Name returns the backend's identifier, e.g. "go" or "python".
	Name() string

	// GenerateModel renders one prototype. The Generation carries the
	// document, the run-scoped name registry and the warning sink.
	GenerateModel(g *Generation, model ModelPrototype, w io.Writer) error

	// GenerateHelpers renders the one-off prologue (imports, shared
	// helpers) preceding the model declarations.
	GenerateHelpers(g *Generation, w io.Writer) error
}

var backends = make(map[string]Backend)

// RegisterBackend adds a backend to the registry. Backends register
// themselves from an init function and are selected by name.
func RegisterBackend(b Backend) {
	backends[b.Name()] = b
}

// LookupBackend retrieves a registered backend by name.
func LookupBackend(name string) (Backend, error) {
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend: %s", name)
	}
	return b, nil
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	out := make([]string, 0, len(backends))
	for name := range backends {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
