// Package python renders resolved prototypes as Python source: one
// class per composite record with keyword-argument construction and
// to_dict/from_dict wire-conversion helpers, enum classes with
// constants, and module-level type aliases.
package python

import (
	"fmt"
	"io"
	"strings"

	"github.com/reoring/swagen"
)

// Backend is the dynamically typed reference backend.
type Backend struct{}

// New builds a Python backend.
func New() *Backend { return &Backend{} }

func init() {
	swagen.RegisterBackend(New())
}

// Name implements swagen.Backend.
func (b *Backend) Name() string { return "python" }

// GenerateHelpers writes the module prologue with the typing imports
// the declarations rely on.
func (b *Backend) GenerateHelpers(g *swagen.Generation, w io.Writer) error {
	_, err := fmt.Fprint(w, `# Code generated by swagen. DO NOT EDIT.

import datetime
from typing import Any, Dict, List, Optional, TypeAlias

`)
	return err
}

// GenerateModel implements swagen.Backend.
func (b *Backend) GenerateModel(g *swagen.Generation, model swagen.ModelPrototype, w io.Writer) error {
	if model.Schema.IsReference() {
		return b.generateReferenceModel(g, model, w)
	}
	merged := g.Doc.MergeAllOf(model.Schema.Schema)
	return b.generateSchema(g, model.Name, model.ParentName, merged, w)
}

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
		return b.generateClass(g, name, s, w)
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

// classField is one resolved property of a class under emission.
type classField struct {
	wire     string // wire name, used as the dict key
	attr     string // formatted attribute name
	ty       string
	optional bool
}

func (b *Backend) generateClass(g *swagen.Generation, name string, s *swagen.Schema, w io.Writer) error {
	typeName := formatTypeName(name)
	if g.Emitted(typeName) {
		g.Warnf("skipping %q: a class with the same name already exists", typeName)
		return nil
	}

	// Required fields first so defaulted keyword arguments stay legal.
	var fields []classField
	for _, pass := range []bool{true, false} {
		for _, prop := range s.PropertyNames() {
			if s.IsRequired(prop) != pass {
				continue
			}
			item := s.Properties[prop]
			required := pass

			var ty swagen.TargetType
			if item.IsReference() {
				ty = g.Doc.MapReferenceType(item.Ref, required, prop)
			} else {
				ty = g.Doc.MapItemType(*item, required, typeName+prop)
			}
			if ty == nil {
				ty = swagen.AsNullable(swagen.Untyped{})
			}
			fields = append(fields, classField{
				wire:     prop,
				attr:     formatVarName(prop),
				ty:       renderType(ty),
				optional: isNullable(ty),
			})
		}
	}

	writeDoc(w, s.Description, "")
	fmt.Fprintf(w, "class %s:\n", typeName)
	fmt.Fprint(w, "    def __init__(\n        self,\n")
	for _, f := range fields {
		// Whole-annotation quoting keeps forward references to classes
		// emitted later in the file valid.
		if f.optional {
			fmt.Fprintf(w, "        %s: \"%s\" = None,\n", f.attr, f.ty)
		} else {
			fmt.Fprintf(w, "        %s: \"%s\",\n", f.attr, f.ty)
		}
	}
	fmt.Fprint(w, "    ):\n")
	if len(fields) == 0 {
		fmt.Fprint(w, "        pass\n")
	}
	for _, f := range fields {
		fmt.Fprintf(w, "        self.%s = %s\n", f.attr, f.attr)
	}
	fmt.Fprint(w, "\n")

	fmt.Fprint(w, "    def to_dict(self) -> Dict[str, Any]:\n")
	fmt.Fprint(w, "        data: Dict[str, Any] = {}\n")
	for _, f := range fields {
		if f.optional {
			fmt.Fprintf(w, "        if self.%s is not None:\n", f.attr)
			fmt.Fprintf(w, "            data[%q] = self.%s\n", f.wire, f.attr)
		} else {
			fmt.Fprintf(w, "        data[%q] = self.%s\n", f.wire, f.attr)
		}
	}
	fmt.Fprint(w, "        return data\n\n")

	fmt.Fprint(w, "    @classmethod\n")
	fmt.Fprintf(w, "    def from_dict(cls, data: Dict[str, Any]) -> \"%s\":\n", typeName)
	fmt.Fprint(w, "        return cls(\n")
	for _, f := range fields {
		if f.optional {
			fmt.Fprintf(w, "            %s=data.get(%q),\n", f.attr, f.wire)
		} else {
			fmt.Fprintf(w, "            %s=data[%q],\n", f.attr, f.wire)
		}
	}
	fmt.Fprint(w, "        )\n\n")

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
		g.Warnf("skipping %q: a class with the same name already exists", typeName)
		return nil
	}
	values := s.EnumStrings()
	writeDoc(w, s.Description, "")
	fmt.Fprintf(w, "class %s:\n", typeName)
	for _, val := range values {
		fmt.Fprintf(w, "    %s = %q\n", formatConstName(val), val)
	}
	fmt.Fprint(w, "\n    VALUES = (")
	for _, val := range values {
		fmt.Fprintf(w, "%q, ", val)
	}
	fmt.Fprint(w, ")\n\n")
	g.Claim(typeName)
	return nil
}

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
	if _, err := fmt.Fprintf(w, "%s: TypeAlias = %s\n\n", typeName, tyStr); err != nil {
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
		fmt.Fprintf(w, "%s# %s\n", indent, line)
	}
}
