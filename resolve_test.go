package swagen_test

import (
	"testing"

	swagen "github.com/reoring/swagen"
)

func itemOf(s *swagen.Schema) *swagen.Item { return &swagen.Item{Schema: s} }

func refOf(ref string) *swagen.Item { return &swagen.Item{Ref: ref} }

func prim(ty swagen.TargetType) (swagen.PrimitiveKind, bool) {
	p, ok := ty.(swagen.Primitive)
	return p.P, ok
}

func TestMapSchemaType_Integers(t *testing.T) {
	doc := &swagen.Document{}
	cases := []struct {
		format string
		want   swagen.PrimitiveKind
	}{
		{"", swagen.Int},
		{"int32", swagen.Int32},
		{"uint64", swagen.Uint64},
		{"int8", swagen.Int8},
		{"bogus", swagen.Int},
	}
	for _, tc := range cases {
		ty := doc.MapSchemaType(&swagen.Schema{Type: "integer", Format: tc.format}, "", true, "")
		got, ok := prim(ty)
		if !ok || got != tc.want {
			t.Errorf("integer format %q: got %v, want primitive %v", tc.format, ty, tc.want)
		}
	}
}

func TestMapSchemaType_StringFormats(t *testing.T) {
	doc := &swagen.Document{}
	cases := []struct {
		format string
		want   swagen.PrimitiveKind
	}{
		{"", swagen.String},
		{"date-time", swagen.DateTime},
		{"DateTime", swagen.DateTime},
		{"Date Time", swagen.DateTime},
		{"binary", swagen.Bytes},
		{"uuid", swagen.String},
	}
	for _, tc := range cases {
		ty := doc.MapSchemaType(&swagen.Schema{Type: "string", Format: tc.format}, "", true, "")
		got, ok := prim(ty)
		if !ok || got != tc.want {
			t.Errorf("string format %q: got %v, want primitive %v", tc.format, ty, tc.want)
		}
	}
}

func TestMapSchemaType_NumberFormats(t *testing.T) {
	doc := &swagen.Document{}
	if ty := doc.MapSchemaType(&swagen.Schema{Type: "number", Format: "double"}, "", true, ""); ty != (swagen.Primitive{P: swagen.Float64}) {
		t.Errorf("double: got %v", ty)
	}
	if ty := doc.MapSchemaType(&swagen.Schema{Type: "number", Format: "float"}, "", true, ""); ty != (swagen.Primitive{P: swagen.Float32}) {
		t.Errorf("float: got %v", ty)
	}
	if ty := doc.MapSchemaType(&swagen.Schema{Type: "number"}, "", true, ""); ty != nil {
		t.Errorf("number without format should be unmappable, got %v", ty)
	}
}

func TestMapSchemaType_OptionalWrapsOnce(t *testing.T) {
	doc := &swagen.Document{}
	ty := doc.MapSchemaType(&swagen.Schema{Type: "string"}, "", false, "")
	n, ok := ty.(swagen.Nullable)
	if !ok {
		t.Fatalf("expected Nullable, got %v", ty)
	}
	if n.Elem.Kind() == swagen.KindNullable {
		t.Fatalf("Nullable must not nest, got %v", n)
	}
	if swagen.AsNullable(ty) != ty {
		t.Fatalf("AsNullable should be idempotent")
	}
}

func TestMapSchemaType_MissingTypeIsUnmappable(t *testing.T) {
	doc := &swagen.Document{}
	if ty := doc.MapSchemaType(&swagen.Schema{}, "", true, ""); ty != nil {
		t.Fatalf("expected nil for missing type, got %v", ty)
	}
}

func TestMapSchemaType_ArrayWithRefHintBecomesNamedList(t *testing.T) {
	doc := &swagen.Document{}
	ty := doc.MapSchemaType(&swagen.Schema{Type: "array"}, "Pets", true, "")
	l, ok := ty.(swagen.List)
	if !ok {
		t.Fatalf("expected List, got %v", ty)
	}
	if l.Elem != (swagen.Named{Name: "Pets"}) {
		t.Fatalf("expected Named element, got %v", l.Elem)
	}
}

func TestMapSchemaType_ArrayOfPrimitives(t *testing.T) {
	doc := &swagen.Document{}
	s := &swagen.Schema{Type: "array", Items: itemOf(&swagen.Schema{Type: "string"})}
	ty := doc.MapSchemaType(s, "", true, "")
	if ty != (swagen.List{Elem: swagen.Primitive{P: swagen.String}}) {
		t.Fatalf("got %v", ty)
	}
	// An array without items is unmappable.
	if ty := doc.MapSchemaType(&swagen.Schema{Type: "array"}, "", true, ""); ty != nil {
		t.Fatalf("expected nil for array without items, got %v", ty)
	}
}

func TestMapSchemaType_ObjectVariants(t *testing.T) {
	doc := &swagen.Document{}

	// additionalProperties -> Map
	s := &swagen.Schema{Type: "object", AdditionalProperties: itemOf(&swagen.Schema{Type: "integer"})}
	if ty := doc.MapSchemaType(s, "", true, ""); ty != (swagen.Map{Value: swagen.Primitive{P: swagen.Int}}) {
		t.Errorf("additionalProperties: got %v", ty)
	}

	// legacy items on an object -> Map
	s = &swagen.Schema{Type: "object", Items: itemOf(&swagen.Schema{Type: "string"})}
	if ty := doc.MapSchemaType(s, "", true, ""); ty != (swagen.Map{Value: swagen.Primitive{P: swagen.String}}) {
		t.Errorf("items on object: got %v", ty)
	}

	// refHint dominates structure
	s = &swagen.Schema{Type: "object", AdditionalProperties: itemOf(&swagen.Schema{Type: "string"})}
	if ty := doc.MapSchemaType(s, "Error", true, ""); ty != (swagen.Named{Name: "Error"}) {
		t.Errorf("refHint: got %v", ty)
	}

	// properties with declared name
	s = &swagen.Schema{Type: "object", Title: "Inner", Properties: map[string]*swagen.Item{
		"a": itemOf(&swagen.Schema{Type: "string"}),
	}}
	if ty := doc.MapSchemaType(s, "", true, ""); ty != (swagen.Named{Name: "Inner"}) {
		t.Errorf("declared name: got %v", ty)
	}

	// vendor name wins over title
	s.XGoName = "Override"
	if ty := doc.MapSchemaType(s, "", true, ""); ty != (swagen.Named{Name: "Override"}) {
		t.Errorf("vendor name: got %v", ty)
	}

	// anonymous properties synthesize from the parent hint
	s = &swagen.Schema{Type: "object", Properties: map[string]*swagen.Item{
		"a": itemOf(&swagen.Schema{Type: "string"}),
	}}
	if ty := doc.MapSchemaType(s, "", true, "Pettags"); ty != (swagen.Named{Name: "PettagsInlineItem"}) {
		t.Errorf("parent hint: got %v", ty)
	}
	if ty := doc.MapSchemaType(s, "", true, ""); ty != (swagen.Untyped{}) {
		t.Errorf("no hint at all: got %v", ty)
	}

	// bare object
	if ty := doc.MapSchemaType(&swagen.Schema{Type: "object"}, "", true, ""); ty != (swagen.Untyped{}) {
		t.Errorf("bare object: got %v", ty)
	}
}

func TestMapReferenceType(t *testing.T) {
	doc := &swagen.Document{
		Definitions: map[string]*swagen.Schema{
			"Pet":  {Type: "object", Properties: map[string]*swagen.Item{"name": itemOf(&swagen.Schema{Type: "string"})}},
			"Pets": {Type: "array", Items: refOf("#/definitions/Pet")},
			"Tag":  {Type: "string"},
		},
	}
	if ty := doc.MapReferenceType("#/definitions/Pet", true, ""); ty != (swagen.Named{Name: "Pet"}) {
		t.Errorf("object ref: got %v", ty)
	}
	if ty := doc.MapReferenceType("#/definitions/Pets", true, ""); ty != (swagen.List{Elem: swagen.Named{Name: "Pets"}}) {
		t.Errorf("array ref: got %v", ty)
	}
	if ty := doc.MapReferenceType("#/definitions/Tag", false, ""); ty != (swagen.Nullable{Elem: swagen.Primitive{P: swagen.String}}) {
		t.Errorf("optional scalar ref: got %v", ty)
	}
	if ty := doc.MapReferenceType("#/definitions/Missing", true, ""); ty != nil {
		t.Errorf("missing ref: got %v", ty)
	}
}

func TestMapItemType(t *testing.T) {
	doc := &swagen.Document{
		Definitions: map[string]*swagen.Schema{"Tag": {Type: "string"}},
	}
	if ty := doc.MapItemType(swagen.RefItem("#/definitions/Tag"), true, ""); ty != (swagen.Primitive{P: swagen.String}) {
		t.Errorf("ref item: got %v", ty)
	}
	if ty := doc.MapItemType(swagen.SchemaItem(&swagen.Schema{Type: "boolean"}), true, ""); ty != (swagen.Primitive{P: swagen.Bool}) {
		t.Errorf("schema item: got %v", ty)
	}
	if ty := doc.MapItemType(swagen.Item{}, true, ""); ty != nil {
		t.Errorf("empty item: got %v", ty)
	}
}
