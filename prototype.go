package swagen

import (
	"sort"
	"strings"

	"github.com/reoring/swagen/internal/names"
)

// ModelPrototype is one unit of to-be-emitted code: a named or
// synthesized schema that must become a declaration. Name may be empty,
// meaning "derive from the schema title, else synthesize from
// ParentName". Prototypes are created once by the prototyper and
// consumed exactly once by the driver.
type ModelPrototype struct {
	Name       string
	ParentName string
	Schema     Item
}

// inlineItemSuffix tags synthesized names for anonymous nested schemas.
// At registration time a name carrying it is replaced by the schema's
// own declared name when one exists, so a deeply nested inline schema
// surfaces under a human name instead of a mechanical concatenation.
const inlineItemSuffix = "InlineItem"

// GeneratePrototypes walks the whole document once and returns the
// prototypes in discovery order: definitions, named responses, then
// path operations, each sorted lexicographically within its source.
func GeneratePrototypes(doc *Document) []ModelPrototype {
	p := &prototyper{doc: doc}
	p.addDefinitionModels()
	p.addResponseModels()
	p.addPathModels()
	return p.prototypes
}

type prototyper struct {
	doc        *Document
	prototypes []ModelPrototype
}

func (p *prototyper) addRefPrototype(name, parent, ref string) {
	p.prototypes = append(p.prototypes, ModelPrototype{
		Name:       name,
		ParentName: parent,
		Schema:     RefItem(ref),
	})
}

func (p *prototyper) addSchemaPrototype(name, parent string, s *Schema) {
	if strings.HasSuffix(name, inlineItemSuffix) {
		if declared := s.SchemaName(); declared != "" {
			name = declared
		}
	}
	if s.Ref != "" {
		// Resolved later, at emission time; never recursed into here.
		p.addRefPrototype(name, parent, s.Ref)
		return
	}

	if s.Items != nil && s.Items.IsObject() && s.Items.Schema.IsObject() {
		child := s.Items.Schema
		childName := child.SchemaName()
		if childName == "" {
			childName = name + inlineItemSuffix
		}
		p.addSchemaPrototype(childName, parent, child)
	}

	for _, propName := range s.PropertyNames() {
		item := s.Properties[propName]
		if item == nil || !item.IsObject() {
			// A bare-reference property is discovered via its own root.
			continue
		}
		prop := item.Schema
		childName := prop.SchemaName()
		if childName == "" {
			childName = name + propName + inlineItemSuffix
		}
		switch {
		case prop.IsObject() && prop.Properties != nil:
			p.addSchemaPrototype(childName, name, prop)
		case prop.IsArray():
			if prop.Items != nil && prop.Items.IsObject() && prop.Items.Schema.IsObject() {
				p.addSchemaPrototype(childName, name, prop.Items.Schema)
			}
		case prop.IsStringEnum():
			// Enumerations register as named prototypes despite having
			// no properties of their own.
			p.addSchemaPrototype(childName, name, prop)
		}
	}

	p.prototypes = append(p.prototypes, ModelPrototype{
		Name:       name,
		ParentName: parent,
		Schema:     SchemaItem(s),
	})
}

func (p *prototyper) addDefinitionModels() {
	for _, name := range sortedKeys(p.doc.Definitions) {
		schema := p.doc.MergeAllOf(p.doc.Definitions[name])
		p.addSchemaPrototype(name, "", schema)
	}
}

func (p *prototyper) addResponseModels() {
	for _, name := range sortedKeys(p.doc.Responses) {
		resp := p.doc.Responses[name]
		if resp.IsReference() {
			p.addRefPrototype(name, "", resp.Ref)
			continue
		}
		if resp.Schema == nil {
			continue
		}
		schema := withDescription(resp.Schema, resp.Description)
		p.addSchemaPrototype(name, "", p.doc.MergeAllOf(schema))
	}
}

func (p *prototyper) addPathModels() {
	for _, path := range sortedKeys(p.doc.Paths) {
		item := p.doc.Paths[path]
		for _, method := range PathMethods {
			op := item.Operations[method]
			if op == nil {
				continue
			}
			p.addOperationModels(op)
		}
	}
}

func (p *prototyper) addOperationModels(op *Operation) {
	opID := op.OperationID
	if opID == "" {
		opID = "InlineResponse"
	}
	for _, code := range sortedKeys(op.Responses) {
		resp := op.Responses[code]
		if resp.IsReference() || resp.Schema == nil {
			continue
		}
		schema := withDescription(resp.Schema, resp.Description)
		p.addSchemaPrototype(opID+code+"Response", "", p.doc.MergeAllOf(schema))
	}
	for _, param := range op.Parameters {
		if !param.IsBody() || param.Schema == nil {
			continue
		}
		name := names.UpperCamel(opID) + names.UpperCamel(param.Name) + "Param"
		p.addSchemaPrototype(name, "", p.doc.MergeAllOf(param.Schema))
	}
}

// withDescription returns a shallow copy of s carrying the response
// description, leaving the document itself untouched.
func withDescription(s *Schema, description string) *Schema {
	cp := *s
	cp.Description = description
	return &cp
}

func sortedKeys[V any](m map[string]V) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
