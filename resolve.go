package swagen

import "strings"

// MapSchemaType maps a schema node to a target type. refHint is the
// namespace-trimmed reference string when the node was reached through
// a $ref, letting the array and object branches substitute a named type
// instead of inlining structure. parentHint names the enclosing
// declaration for synthesized inline names.
//
// A nil result means the node is unmappable; callers needing a concrete
// type substitute a nullable untyped fallback rather than aborting.
// When required is false the result is wrapped in Nullable exactly
// once.
func (d *Document) MapSchemaType(s *Schema, refHint string, required bool, parentHint string) TargetType {
	if s.Type == "" {
		return nil
	}
	var ty TargetType
	switch s.Type {
	case "integer":
		if k, ok := integerFormats[s.Format]; ok {
			ty = Primitive{P: k}
		} else {
			ty = Primitive{P: Int}
		}
	case "string":
		switch strings.ToLower(s.Format) {
		case "date-time", "datetime", "date time":
			ty = Primitive{P: DateTime}
		case "binary":
			ty = Primitive{P: Bytes}
		default:
			ty = Primitive{P: String}
		}
	case "boolean":
		ty = Primitive{P: Bool}
	case "array":
		switch {
		case refHint != "":
			ty = List{Elem: Named{Name: TrimRef(refHint)}}
		case s.Items != nil:
			// Array elements are never individually optional.
			elem := d.MapItemType(*s.Items, true, parentHint)
			if elem == nil {
				return nil
			}
			ty = List{Elem: elem}
		default:
			return nil
		}
	case "object":
		switch {
		case refHint != "":
			ty = Named{Name: TrimRef(refHint)}
		case s.AdditionalProperties != nil:
			val := d.MapItemType(*s.AdditionalProperties, true, parentHint)
			if val == nil {
				return nil
			}
			ty = Map{Value: val}
		case s.Items != nil:
			// Legacy items on an object behaves like additionalProperties.
			val := d.MapItemType(*s.Items, true, parentHint)
			if val == nil {
				return nil
			}
			ty = Map{Value: val}
		case s.Properties != nil:
			if name := s.SchemaName(); name != "" {
				ty = Named{Name: name}
			} else if parentHint != "" {
				ty = Named{Name: parentHint + "InlineItem"}
			} else {
				ty = Untyped{}
			}
		default:
			ty = Untyped{}
		}
	case "number":
		switch s.Format {
		case "double":
			ty = Primitive{P: Float64}
		case "float":
			ty = Primitive{P: Float32}
		default:
			return nil
		}
	default:
		return nil
	}
	if !required {
		ty = AsNullable(ty)
	}
	return ty
}

// MapReferenceType resolves ref and maps the referenced schema, passing
// the trimmed reference string down as the naming hint.
func (d *Document) MapReferenceType(ref string, required bool, parentHint string) TargetType {
	s := d.RefSchema(ref)
	if s == nil {
		return nil
	}
	return d.MapSchemaType(s, TrimRef(ref), required, parentHint)
}

// MapItemType maps a property or element item: references route through
// MapReferenceType, inline schemas through MapSchemaType with no hint.
func (d *Document) MapItemType(it Item, required bool, parentHint string) TargetType {
	if it.IsReference() {
		return d.MapReferenceType(it.Ref, required, parentHint)
	}
	if it.Schema == nil {
		return nil
	}
	return d.MapSchemaType(it.Schema, "", required, parentHint)
}
