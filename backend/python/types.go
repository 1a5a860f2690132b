package python

import (
	"github.com/reoring/swagen"
)

// primitives is the Python primitive-name table. Every sized integer
// collapses onto int.
var primitives = map[swagen.PrimitiveKind]string{
	swagen.Int:      "int",
	swagen.Uint:     "int",
	swagen.Int8:     "int",
	swagen.Uint8:    "int",
	swagen.Int16:    "int",
	swagen.Uint16:   "int",
	swagen.Int32:    "int",
	swagen.Uint32:   "int",
	swagen.Int64:    "int",
	swagen.Uint64:   "int",
	swagen.Float32:  "float",
	swagen.Float64:  "float",
	swagen.Bool:     "bool",
	swagen.String:   "str",
	swagen.Bytes:    "bytes",
	swagen.DateTime: "datetime.datetime",
}

// renderType renders a target type into Python typing syntax. Named
// types are rendered bare; annotation sites that may precede the named
// class quote the whole annotation instead.
func renderType(ty swagen.TargetType) string {
	switch t := ty.(type) {
	case swagen.Primitive:
		return primitives[t.P]
	case swagen.List:
		return "List[" + renderType(t.Elem) + "]"
	case swagen.Map:
		return "Dict[str, " + renderType(t.Value) + "]"
	case swagen.Nullable:
		return "Optional[" + renderType(t.Elem) + "]"
	case swagen.Named:
		return formatTypeName(t.Name)
	case swagen.Untyped:
		return "Any"
	default:
		return "Any"
	}
}

func isNullable(ty swagen.TargetType) bool {
	return ty != nil && ty.Kind() == swagen.KindNullable
}
