package swagen

import (
	"io"
	"sort"
)

// Generation is the run-scoped state threaded through one emission
// pass: the read-only document, the registry of already-emitted type
// names, and the warning sink. It is owned by the driver and never
// shared between runs.
type Generation struct {
	Doc *Document

	emitted map[string]struct{}
	d       *diag
}

// Emitted reports whether a declaration with the formatted type name
// was already written. First writer wins; later prototypes formatting
// to the same name must be skipped.
func (g *Generation) Emitted(name string) bool {
	_, ok := g.emitted[name]
	return ok
}

// Claim records a formatted type name as emitted.
func (g *Generation) Claim(name string) {
	g.emitted[name] = struct{}{}
}

// Warnf records a non-fatal diagnostic for the run.
func (g *Generation) Warnf(format string, a ...any) {
	g.d.warnf(format, a...)
}

// Generate runs the whole pipeline: helpers first, then every
// discovered prototype through the backend. The returned Diag carries
// the warnings accumulated across the pass.
func Generate(doc *Document, b Backend, w io.Writer) (Diag, error) {
	g := newGeneration(doc)
	if err := b.GenerateHelpers(g, w); err != nil {
		return g.d, err
	}
	if err := generateModels(g, b, w); err != nil {
		return g.d, err
	}
	return g.d, nil
}

// GenerateModels runs the pipeline without the helper prologue.
func GenerateModels(doc *Document, b Backend, w io.Writer) (Diag, error) {
	g := newGeneration(doc)
	if err := generateModels(g, b, w); err != nil {
		return g.d, err
	}
	return g.d, nil
}

func newGeneration(doc *Document) *Generation {
	return &Generation{
		Doc:     doc,
		emitted: make(map[string]struct{}),
		d:       &diag{},
	}
}

func generateModels(g *Generation, b Backend, w io.Writer) error {
	prototypes := GeneratePrototypes(g.Doc)
	sortPrototypes(prototypes)
	for _, model := range prototypes {
		if err := b.GenerateModel(g, model, w); err != nil {
			return err
		}
	}
	return nil
}

// sortPrototypes orders object-kind prototypes before reference-kind
// ones, ties broken by name ascending, so that a type alias standing
// for a $ref is emitted only after its referenced named type exists.
func sortPrototypes(prototypes []ModelPrototype) {
	sort.SliceStable(prototypes, func(i, j int) bool {
		ri, rj := prototypes[i].Schema.IsReference(), prototypes[j].Schema.IsReference()
		if ri != rj {
			return rj
		}
		return prototypes[i].Name < prototypes[j].Name
	})
}
