package swagen

import (
	"errors"
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a YAML Swagger v2 document into the document model.
// Malformed YAML aborts here; structural surprises inside an otherwise
// well-formed document degrade to Diag warnings instead.
func DecodeYAML(data []byte) (*Document, Diag, error) {
	d := &diag{}
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, d, fmt.Errorf("swagen: invalid YAML: %w", err)
	}
	root := anyToStringMap(node)
	if root == nil {
		return nil, d, errors.New("swagen: document root is not a mapping")
	}
	return buildDocument(root, d), d, nil
}

// DecodeJSON parses a JSON Swagger v2 document into the document model.
func DecodeJSON(data []byte) (*Document, Diag, error) {
	d := &diag{}
	var root map[string]any
	if err := gojson.Unmarshal(data, &root); err != nil {
		return nil, d, fmt.Errorf("swagen: invalid JSON: %w", err)
	}
	return buildDocument(normalizeMap(root), d), d, nil
}

// anyToStringMap converts YAML-decoded values (which may contain
// map[any]any and non-string keys) into JSON-like map[string]any
// recursively. Numeric keys are stringified so status-code response
// keys survive. Non-map roots return nil.
func anyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return normalizeMap(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := stringifyKey(k)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, vv := range m {
		out[k] = normalizeValue(vv)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return anyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}

func stringifyKey(k any) (string, bool) {
	switch t := k.(type) {
	case string:
		return t, true
	case int:
		return fmt.Sprint(t), true
	case int64:
		return fmt.Sprint(t), true
	case uint64:
		return fmt.Sprint(t), true
	case float64:
		return fmt.Sprint(t), true
	case bool:
		return fmt.Sprint(t), true
	default:
		return "", false
	}
}

func buildDocument(root map[string]any, d *diag) *Document {
	doc := &Document{}
	doc.Swagger, _ = root["swagger"].(string)
	if defs, ok := root["definitions"].(map[string]any); ok {
		doc.Definitions = make(map[string]*Schema, len(defs))
		for name, v := range defs {
			if m, ok := v.(map[string]any); ok {
				doc.Definitions[name] = buildSchema(m, d)
			} else {
				d.warnf("definition %q is not a mapping, skipped", name)
			}
		}
	}
	if resps, ok := root["responses"].(map[string]any); ok {
		doc.Responses = buildResponses(resps, d)
	}
	if paths, ok := root["paths"].(map[string]any); ok {
		doc.Paths = make(map[string]*PathItem, len(paths))
		for path, v := range paths {
			if strings.HasPrefix(path, "x-") {
				d.warnf("skipping path extension %q", path)
				continue
			}
			m, ok := v.(map[string]any)
			if !ok {
				d.warnf("path %q is not a mapping, skipped", path)
				continue
			}
			doc.Paths[path] = buildPathItem(m, d)
		}
	}
	return doc
}

func buildSchema(m map[string]any, d *diag) *Schema {
	s := &Schema{}
	s.Ref, _ = m["$ref"].(string)
	s.Format, _ = m["format"].(string)
	s.Title, _ = m["title"].(string)
	s.Description, _ = m["description"].(string)
	s.Type, _ = m["type"].(string)
	s.XGoName, _ = m["x-go-name"].(string)
	s.XGoPackage, _ = m["x-go-package"].(string)
	if req, ok := m["required"].([]any); ok {
		for _, r := range req {
			if name, ok := r.(string); ok {
				s.Required = append(s.Required, name)
			}
		}
	}
	if v, ok := m["items"]; ok {
		s.Items = buildItem(v, d, "items")
	}
	if props, ok := m["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*Item, len(props))
		for name, pv := range props {
			if item := buildItem(pv, d, name); item != nil {
				s.Properties[name] = item
			}
		}
	}
	if v, ok := m["additionalProperties"]; ok {
		// additionalProperties: true/false carries no value schema.
		if _, isBool := v.(bool); !isBool {
			s.AdditionalProperties = buildItem(v, d, "additionalProperties")
		}
	}
	if enum, ok := m["enum"].([]any); ok {
		s.Enum = append(s.Enum, enum...)
	}
	if allOf, ok := m["allOf"].([]any); ok {
		for _, v := range allOf {
			if cm, ok := v.(map[string]any); ok {
				s.AllOf = append(s.AllOf, buildSchema(cm, d))
			} else {
				d.warnf("allOf component is not a mapping, skipped")
			}
		}
	}
	return s
}

// buildItem builds the tagged variant: a plain string or a mapping
// holding only a $ref string is a reference, any other mapping an
// inline schema.
func buildItem(v any, d *diag, where string) *Item {
	switch t := v.(type) {
	case string:
		return &Item{Ref: t}
	case map[string]any:
		if ref, ok := t["$ref"].(string); ok {
			return &Item{Ref: ref}
		}
		return &Item{Schema: buildSchema(t, d)}
	default:
		d.warnf("invalid item at %q: expected string or mapping", where)
		return nil
	}
}

func buildResponses(m map[string]any, d *diag) map[string]*Response {
	out := make(map[string]*Response, len(m))
	for name, v := range m {
		rm, ok := v.(map[string]any)
		if !ok {
			d.warnf("response %q is not a mapping, skipped", name)
			continue
		}
		out[name] = buildResponse(rm, d)
	}
	return out
}

// buildResponse treats a response whose schema is a bare $ref, or that
// is itself a $ref, as an alias; anything else is an object response
// with an optional inline schema.
func buildResponse(m map[string]any, d *diag) *Response {
	if ref, ok := m["$ref"].(string); ok {
		return &Response{Ref: ref}
	}
	resp := &Response{}
	resp.Description, _ = m["description"].(string)
	if sv, ok := m["schema"].(map[string]any); ok {
		if ref, ok := sv["$ref"].(string); ok {
			return &Response{Ref: ref}
		}
		resp.Schema = buildSchema(sv, d)
	}
	return resp
}

func buildPathItem(m map[string]any, d *diag) *PathItem {
	item := &PathItem{Operations: make(map[string]*Operation)}
	item.Ref, _ = m["$ref"].(string)
	for _, method := range PathMethods {
		if om, ok := m[method].(map[string]any); ok {
			item.Operations[method] = buildOperation(om, d)
		}
	}
	return item
}

func buildOperation(m map[string]any, d *diag) *Operation {
	op := &Operation{}
	op.OperationID, _ = m["operationId"].(string)
	op.Summary, _ = m["summary"].(string)
	op.Description, _ = m["description"].(string)
	op.Deprecated, _ = m["deprecated"].(bool)
	op.Tags = stringSlice(m["tags"])
	op.Consumes = stringSlice(m["consumes"])
	op.Produces = stringSlice(m["produces"])
	if params, ok := m["parameters"].([]any); ok {
		for _, pv := range params {
			pm, ok := pv.(map[string]any)
			if !ok {
				d.warnf("parameter is not a mapping, skipped")
				continue
			}
			if p := buildParameter(pm, d); p != nil {
				op.Parameters = append(op.Parameters, p)
			}
		}
	}
	if resps, ok := m["responses"].(map[string]any); ok {
		op.Responses = buildResponses(resps, d)
	}
	return op
}

// buildParameter dispatches on the `in` discriminator: query and path
// parameters carry a primitive type, body parameters a schema.
func buildParameter(m map[string]any, d *diag) *Parameter {
	in, _ := m["in"].(string)
	p := &Parameter{In: in}
	p.Name, _ = m["name"].(string)
	p.Description, _ = m["description"].(string)
	p.Required, _ = m["required"].(bool)
	switch in {
	case "query", "path":
		p.Type, _ = m["type"].(string)
		if v, ok := m["items"]; ok {
			p.Items = buildItem(v, d, p.Name)
		}
	case "body":
		if sm, ok := m["schema"].(map[string]any); ok {
			p.Schema = buildSchema(sm, d)
		}
	default:
		d.warnf("unexpected parameter type %q for %q", in, p.Name)
		return nil
	}
	return p
}

func stringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
