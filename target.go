package swagen

// TypeKind identifies a TargetType node.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindList
	KindMap
	KindNullable
	KindNamed
	KindUntyped
)

// TargetType is one node of the language-neutral type tree produced by
// the type resolver. Backends own the rendering of every kind into
// concrete syntax.
type TargetType interface {
	Kind() TypeKind
}

// PrimitiveKind enumerates the scalar target types.
type PrimitiveKind int

const (
	Int PrimitiveKind = iota // pointer-sized signed integer
	Uint
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	Bool
	String
	Bytes // byte sequence, e.g. string format binary
	DateTime
)

// Primitive is a scalar target type.
type Primitive struct{ P PrimitiveKind }

func (Primitive) Kind() TypeKind { return KindPrimitive }

// List is a homogeneous sequence.
type List struct{ Elem TargetType }

func (List) Kind() TypeKind { return KindList }

// Map is a string-keyed map with homogeneous values.
type Map struct{ Value TargetType }

func (Map) Kind() TypeKind { return KindMap }

// Nullable marks an optional value. It never wraps another Nullable:
// required-ness is applied exactly once, at the outermost call of the
// type resolver, and AsNullable keeps the invariant.
type Nullable struct{ Elem TargetType }

func (Nullable) Kind() TypeKind { return KindNullable }

// Named refers to a generated type by its document-literal name.
// Backends apply their own identifier formatting when rendering it.
type Named struct{ Name string }

func (Named) Kind() TypeKind { return KindNamed }

// Untyped is the fallback for schemas that map to no concrete type.
type Untyped struct{}

func (Untyped) Kind() TypeKind { return KindUntyped }

// AsNullable wraps ty in Nullable unless it already is one.
func AsNullable(ty TargetType) TargetType {
	if ty == nil {
		return nil
	}
	if ty.Kind() == KindNullable {
		return ty
	}
	return Nullable{Elem: ty}
}

// integerFormats maps the documented integer format names onto sized
// primitives. An unlisted or absent format falls back to the
// pointer-sized signed integer.
var integerFormats = map[string]PrimitiveKind{
	"int":    Int,
	"uint":   Uint,
	"int8":   Int8,
	"uint8":  Uint8,
	"int16":  Int16,
	"uint16": Uint16,
	"int32":  Int32,
	"uint32": Uint32,
	"int64":  Int64,
	"uint64": Uint64,
}
