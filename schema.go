package swagen

import "sort"

// Schema is one node of the document's type grammar. A node carrying a
// reference is resolved before any type mapping is attempted; Type may be
// legitimately absent on reference-only or composition-only nodes.
type Schema struct {
	Ref         string
	Format      string
	Title       string
	Description string
	Required    []string
	Type        string
	Items       *Item
	Properties  map[string]*Item
	// AdditionalProperties describes the value schema of a free-form map.
	AdditionalProperties *Item
	Enum                 []any
	AllOf                []*Schema

	// Vendor extensions carrying naming hints, never semantic type
	// information. XGoName takes priority over Title when a declared
	// name is needed.
	XGoName    string
	XGoPackage string
}

// SchemaName returns the node's declared name: the vendor name when
// present, else the title, else the empty string.
func (s *Schema) SchemaName() string {
	if s.XGoName != "" {
		return s.XGoName
	}
	return s.Title
}

// IsObject reports whether the node declares type object.
func (s *Schema) IsObject() bool { return s.Type == "object" }

// IsArray reports whether the node declares type array.
func (s *Schema) IsArray() bool { return s.Type == "array" }

// IsStringEnum reports whether the node is a closed string enumeration.
func (s *Schema) IsStringEnum() bool { return s.Type == "string" && len(s.Enum) > 0 }

// IsRequired reports whether the named property appears in the node's
// required list.
func (s *Schema) IsRequired(prop string) bool {
	for _, r := range s.Required {
		if r == prop {
			return true
		}
	}
	return false
}

// PropertyNames returns the declared property names in lexicographic
// order. Property map insertion order carries no meaning, so every walk
// over properties goes through this.
func (s *Schema) PropertyNames() []string {
	if len(s.Properties) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnumStrings returns the string-valued enum literals in declaration
// order. Non-string literals are not renderable and are dropped here.
func (s *Schema) EnumStrings() []string {
	if len(s.Enum) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.Enum))
	for _, v := range s.Enum {
		if str, ok := v.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

// Item is a tagged variant: either a bare reference or an inline schema.
// It is used for property values, array item schemas, and
// additionalProperties values.
type Item struct {
	Ref    string
	Schema *Schema
}

// RefItem builds a reference-kind Item.
func RefItem(ref string) Item { return Item{Ref: ref} }

// SchemaItem builds an inline-schema Item.
func SchemaItem(s *Schema) Item { return Item{Schema: s} }

// IsReference reports whether the item is a bare reference.
func (it Item) IsReference() bool { return it.Ref != "" }

// IsObject reports whether the item is an inline schema.
func (it Item) IsObject() bool { return it.Schema != nil }
