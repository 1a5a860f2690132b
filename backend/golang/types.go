package golang

import (
	"github.com/reoring/swagen"
)

// primitives is the Go primitive-name table.
var primitives = map[swagen.PrimitiveKind]string{
	swagen.Int:      "int",
	swagen.Uint:     "uint",
	swagen.Int8:     "int8",
	swagen.Uint8:    "uint8",
	swagen.Int16:    "int16",
	swagen.Uint16:   "uint16",
	swagen.Int32:    "int32",
	swagen.Uint32:   "uint32",
	swagen.Int64:    "int64",
	swagen.Uint64:   "uint64",
	swagen.Float32:  "float32",
	swagen.Float64:  "float64",
	swagen.Bool:     "bool",
	swagen.String:   "string",
	swagen.Bytes:    "[]byte",
	swagen.DateTime: "time.Time",
}

// renderType renders a target type into Go syntax.
func renderType(ty swagen.TargetType) string {
	switch t := ty.(type) {
	case swagen.Primitive:
		return primitives[t.P]
	case swagen.List:
		return "[]" + renderType(t.Elem)
	case swagen.Map:
		return "map[string]" + renderType(t.Value)
	case swagen.Nullable:
		// any is already nilable; *any would force a double indirection
		// on callers for nothing.
		if t.Elem.Kind() == swagen.KindUntyped {
			return "any"
		}
		return "*" + renderType(t.Elem)
	case swagen.Named:
		return formatTypeName(t.Name)
	case swagen.Untyped:
		return "any"
	default:
		return "any"
	}
}
