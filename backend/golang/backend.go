// Package golang renders resolved prototypes as Go source: one struct
// per composite record with pointer-typed optional fields and json
// wire tags, string-enum types with constants and accessors, and type
// aliases for reference and array prototypes.
package golang

import (
	"fmt"
	"io"
	"strings"

	"github.com/reoring/swagen"
)

// Options configures the backend.
type Options struct {
	// Package is the package name of the emitted file. Defaults to
	// "models".
	Package string
}

// Backend is the statically typed reference backend.
type Backend struct {
	opts Options
}

// New builds a Go backend.
func New(opts Options) *Backend {
	if opts.Package == "" {
		opts.Package = "models"
	}
	return &Backend{opts: opts}
}

func init() {
	swagen.RegisterBackend(New(Options{}))
}

// Name implements swagen.Backend.
func (b *Backend) Name() string { return "go" }

// GenerateHelpers writes the file prologue: header, package clause and
// the time import when any schema maps to a date-time.
func (b *Backend) GenerateHelpers(g *swagen.Generation, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "// Code generated by swagen. DO NOT EDIT.\n\npackage %s\n\n", b.opts.Package); err != nil {
		return err
	}
	if docNeedsTime(g.Doc) {
		if _, err := fmt.Fprint(w, "import \"time\"\n\n"); err != nil {
			return err
		}
	}
	return nil
}

// GenerateModel implements swagen.Backend.
func (b *Backend) GenerateModel(g *swagen.Generation, model swagen.ModelPrototype, w io.Writer) error {
	if model.Schema.IsReference() {
		return b.generateReferenceModel(g, model, w)
	}
	merged := g.Doc.MergeAllOf(model.Schema.Schema)
	return b.generateSchema(g, model.Name, model.ParentName, merged, w)
}

// generateReferenceModel emits a type alias standing for a $ref. The
// referenced named type already exists at this point thanks to the
// driver's emission ordering.
func (b *Backend) generateReferenceModel(g *swagen.Generation, model swagen.ModelPrototype, w io.Writer) error {
	ref := model.Schema.Ref
	schema := g.Doc.RefSchema(ref)
	if schema == nil {
		g.Warnf("unresolved reference %q for %q", ref, model.Name)
		return nil
	}
	merged := g.Doc.MergeAllOf(schema)
	if !merged.IsObject() {
		return nil
	}
	ty := g.Doc.MapReferenceType(ref, true, model.Name)
	if ty == nil {
		return nil
	}
	return b.writeAlias(g, model.Name, merged.Description, renderType(ty), w)
}

func (b *Backend) generateSchema(g *swagen.Generation, name, parent string, s *swagen.Schema, w io.Writer) error {
	if name == "" {
		if declared := s.SchemaName(); declared != "" {
			name = declared
		} else if parent != "" {
			name = parent + "InlineItem"
		}
	}
	switch {
	case s.Properties != nil:
		return b.generateStruct(g, name, s, w)
	case s.IsArray():
		return b.generateArrayAlias(g, name, s, w)
	case s.IsStringEnum():
		return b.generateEnum(g, name, s, w)
	case s.Ref != "":
		g.Warnf("unhandled reference schema %q", s.Ref)
		return nil
	default:
		ty := g.Doc.MapSchemaType(s, "", true, name)
		if ty == nil {
			g.Warnf("skipping %q: nothing renderable", name)
			return nil
		}
		return b.writeAlias(g, name, s.Description, renderType(ty), w)
	}
}

func (b *Backend) generateStruct(g *swagen.Generation, name string, s *swagen.Schema, w io.Writer) error {
	typeName := formatTypeName(name)
	if g.Emitted(typeName) {
		g.Warnf("skipping %q: a type with the same name already exists", typeName)
		return nil
	}
	writeDoc(w, s.Description, "")
	if _, err := fmt.Fprintf(w, "type %s struct {\n", typeName); err != nil {
		return err
	}
	for _, prop := range s.PropertyNames() {
		item := s.Properties[prop]
		required := s.IsRequired(prop)

		var ty swagen.TargetType
		if item.IsReference() {
			ty = g.Doc.MapReferenceType(item.Ref, required, prop)
		} else {
			ty = g.Doc.MapItemType(*item, required, typeName+prop)
		}
		if ty == nil {
			// One unresolvable field never blocks the rest.
			ty = swagen.AsNullable(swagen.Untyped{})
		}

		if item.Schema != nil && item.Schema.Description != "" {
			writeDoc(w, item.Schema.Description, "\t")
		}
		tag := prop
		if !required {
			tag += ",omitempty"
		}
		if _, err := fmt.Fprintf(w, "\t%s %s `json:%q`\n", formatFieldName(prop), renderType(ty), tag); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, "}\n\n"); err != nil {
		return err
	}
	g.Claim(typeName)
	return nil
}

func (b *Backend) generateArrayAlias(g *swagen.Generation, name string, s *swagen.Schema, w io.Writer) error {
	if s.Items == nil {
		return nil
	}
	elem := g.Doc.MapItemType(*s.Items, true, name)
	if elem == nil {
		return nil
	}
	ty := swagen.List{Elem: elem}
	return b.writeAlias(g, name, s.Description, renderType(ty), w)
}

func (b *Backend) generateEnum(g *swagen.Generation, name string, s *swagen.Schema, w io.Writer) error {
	typeName := formatTypeName(name)
	if g.Emitted(typeName) {
		g.Warnf("skipping %q: a type with the same name already exists", typeName)
		return nil
	}
	values := s.EnumStrings()
	writeDoc(w, s.Description, "")
	if _, err := fmt.Fprintf(w, "type %s string\n\n", typeName); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "const (\n"); err != nil {
		return err
	}
	for _, val := range values {
		if _, err := fmt.Fprintf(w, "\t%s%s %s = %q\n", typeName, formatEnumCaseName(val), typeName, val); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, ")\n\n"); err != nil {
		return err
	}

	fmt.Fprintf(w, "// %sValues lists every declared %s literal.\n", typeName, typeName)
	fmt.Fprintf(w, "func %sValues() []%s {\n\treturn []%s{", typeName, typeName, typeName)
	for i, val := range values {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%s%s", typeName, formatEnumCaseName(val))
	}
	fmt.Fprint(w, "}\n}\n\n")

	if _, err := fmt.Fprintf(w, "func (v %s) String() string { return string(v) }\n\n", typeName); err != nil {
		return err
	}
	g.Claim(typeName)
	return nil
}

// writeAlias emits one type alias, applying the self-alias and
// duplicate-name checks shared by every alias-shaped declaration.
func (b *Backend) writeAlias(g *swagen.Generation, name, description, tyStr string, w io.Writer) error {
	typeName := formatTypeName(name)
	if typeName == tyStr {
		g.Warnf("skipping self-referential alias %q", typeName)
		return nil
	}
	if g.Emitted(typeName) {
		g.Warnf("skipping alias %q: a type with the same name already exists", typeName)
		return nil
	}
	writeDoc(w, description, "")
	if _, err := fmt.Fprintf(w, "type %s = %s\n\n", typeName, tyStr); err != nil {
		return err
	}
	g.Claim(typeName)
	return nil
}

func writeDoc(w io.Writer, description, indent string) {
	if description == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(description, "\n"), "\n") {
		fmt.Fprintf(w, "%s// %s\n", indent, line)
	}
}

// docNeedsTime reports whether any schema in the document maps to the
// date-time type, which decides the time import.
func docNeedsTime(doc *swagen.Document) bool {
	for _, s := range doc.Definitions {
		if schemaNeedsTime(s) {
			return true
		}
	}
	for _, r := range doc.Responses {
		if r.Schema != nil && schemaNeedsTime(r.Schema) {
			return true
		}
	}
	for _, item := range doc.Paths {
		for _, op := range item.Operations {
			for _, r := range op.Responses {
				if r.Schema != nil && schemaNeedsTime(r.Schema) {
					return true
				}
			}
			for _, p := range op.Parameters {
				if p.Schema != nil && schemaNeedsTime(p.Schema) {
					return true
				}
			}
		}
	}
	return false
}

func schemaNeedsTime(s *swagen.Schema) bool {
	if s == nil {
		return false
	}
	if s.Type == "string" {
		switch strings.ToLower(s.Format) {
		case "date-time", "datetime", "date time":
			return true
		}
	}
	if itemNeedsTime(s.Items) || itemNeedsTime(s.AdditionalProperties) {
		return true
	}
	for _, item := range s.Properties {
		if itemNeedsTime(item) {
			return true
		}
	}
	for _, comp := range s.AllOf {
		if schemaNeedsTime(comp) {
			return true
		}
	}
	return false
}

func itemNeedsTime(it *swagen.Item) bool {
	return it != nil && it.Schema != nil && schemaNeedsTime(it.Schema)
}
