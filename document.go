package swagen

import "strings"

// Reference namespaces. A $ref is resolved against exactly one of the
// two document lookup tables, selected by its literal prefix.
const (
	DefinitionsRef = "#/definitions/"
	ResponsesRef   = "#/responses/"
)

// maxRefDepth bounds response-alias indirection so that a circular
// alias chain fails closed instead of recursing forever.
const maxRefDepth = 32

// TrimRef strips the namespace prefix from a reference, yielding the
// document-literal name.
func TrimRef(ref string) string {
	ref = strings.TrimPrefix(ref, DefinitionsRef)
	ref = strings.TrimPrefix(ref, ResponsesRef)
	return ref
}

// Document is one already-parsed Swagger v2 document. It is read-only
// for the whole generation run.
type Document struct {
	Swagger     string
	Definitions map[string]*Schema
	Responses   map[string]*Response
	Paths       map[string]*PathItem
}

// Response is a named response: either an alias to another response or
// definition, or an object carrying a description and an optional
// inline schema.
type Response struct {
	Ref         string
	Description string
	Schema      *Schema
}

// IsReference reports whether the response is an alias.
func (r *Response) IsReference() bool { return r.Ref != "" }

// PathItem holds the operations declared for one path, keyed by the
// seven supported HTTP methods.
type PathItem struct {
	Ref        string
	Operations map[string]*Operation
}

// PathMethods is the fixed method emission order for path walks.
var PathMethods = []string{"get", "put", "post", "delete", "options", "head", "patch"}

// Operation is one HTTP operation with its parameters and responses.
type Operation struct {
	OperationID string
	Summary     string
	Description string
	Tags        []string
	Consumes    []string
	Produces    []string
	Deprecated  bool
	Parameters  []*Parameter
	Responses   map[string]*Response
}

// Parameter is a single operation parameter, discriminated by In
// (query, path or body). Body parameters carry a schema; the others a
// primitive type and optional items.
type Parameter struct {
	In          string
	Name        string
	Description string
	Type        string
	Required    bool
	Items       *Item
	Schema      *Schema
}

// IsBody reports whether the parameter is a body parameter.
func (p *Parameter) IsBody() bool { return p.In == "body" }

// RefSchema resolves a reference to a schema node, following
// response-alias indirection. It returns nil when the table is missing,
// the name is unknown, or indirection does not terminate in a schema.
func (d *Document) RefSchema(ref string) *Schema {
	return d.refSchema(ref, 0)
}

func (d *Document) refSchema(ref string, depth int) *Schema {
	if depth > maxRefDepth {
		return nil
	}
	switch {
	case strings.HasPrefix(ref, DefinitionsRef):
		if d.Definitions == nil {
			return nil
		}
		return d.Definitions[strings.TrimPrefix(ref, DefinitionsRef)]
	case strings.HasPrefix(ref, ResponsesRef):
		if d.Responses == nil {
			return nil
		}
		resp := d.Responses[strings.TrimPrefix(ref, ResponsesRef)]
		if resp == nil {
			return nil
		}
		if resp.IsReference() {
			return d.refSchema(resp.Ref, depth+1)
		}
		return resp.Schema
	}
	return nil
}

// MergeAllOf flattens an allOf list into one synthesized schema. The
// merge is flat: a component's own nested allOf is not expanded.
//
// Properties are unioned with same-named keys overwritten by later
// components. Scalar fields (format, title, description, type) keep the
// first non-empty value in list order, while the required and enum
// lists are copied wholesale from the first component supplying a
// non-empty one.
func (d *Document) MergeAllOf(s *Schema) *Schema {
	if len(s.AllOf) == 0 {
		return s
	}
	acc := &Schema{
		Title:       s.Title,
		Description: s.Description,
		Properties:  map[string]*Item{},
	}
	for _, comp := range s.AllOf {
		if comp.Ref != "" {
			if resolved := d.RefSchema(comp.Ref); resolved != nil {
				comp = resolved
			}
		}
		for name, item := range comp.Properties {
			acc.Properties[name] = item
		}
		if acc.Format == "" {
			acc.Format = comp.Format
		}
		if acc.Title == "" {
			acc.Title = comp.Title
		}
		if acc.Description == "" {
			acc.Description = comp.Description
		}
		if acc.Type == "" {
			acc.Type = comp.Type
		}
		if len(acc.Required) == 0 && len(comp.Required) > 0 {
			acc.Required = append([]string(nil), comp.Required...)
		}
		if len(acc.Enum) == 0 && len(comp.Enum) > 0 {
			acc.Enum = append([]any(nil), comp.Enum...)
		}
	}
	return acc
}
