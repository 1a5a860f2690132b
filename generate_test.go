package swagen_test

import (
	"strings"
	"testing"

	swagen "github.com/reoring/swagen"
	"github.com/reoring/swagen/backend/golang"
	_ "github.com/reoring/swagen/backend/python"
)

func petDocument() *swagen.Document {
	return &swagen.Document{
		Swagger: "2.0",
		Definitions: map[string]*swagen.Schema{
			"Pet": {
				Type:     "object",
				Required: []string{"name"},
				Properties: map[string]*swagen.Item{
					"name": itemOf(&swagen.Schema{Type: "string"}),
					"tag":  itemOf(&swagen.Schema{Type: "string"}),
				},
			},
			"Pets": {Type: "array", Items: refOf("#/definitions/Pet")},
		},
		Responses: map[string]*swagen.Response{
			"NotFound": {
				Description: "resource missing",
				Schema: &swagen.Schema{Type: "object", Properties: map[string]*swagen.Item{
					"message": itemOf(&swagen.Schema{Type: "string"}),
				}},
			},
		},
	}
}

func TestGenerate_GoStructFields(t *testing.T) {
	var out strings.Builder
	d, err := swagen.Generate(petDocument(), golang.New(golang.Options{}), &out)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if d.HasWarnings() {
		t.Fatalf("unexpected warnings: %v", d.Warnings())
	}
	src := out.String()
	for _, want := range []string{
		"package models\n",
		"type Pet struct {\n",
		"\tName string `json:\"name\"`\n",
		"\tTag *string `json:\"tag,omitempty\"`\n",
		"type Pets = []Pet\n",
		"// resource missing\ntype NotFound struct {\n",
		"\tMessage *string `json:\"message,omitempty\"`\n",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q\n%s", want, src)
		}
	}
}

func TestGenerate_AliasAfterReferencedType(t *testing.T) {
	var out strings.Builder
	if _, err := swagen.Generate(petDocument(), golang.New(golang.Options{}), &out); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	src := out.String()
	pet := strings.Index(src, "type Pet struct")
	pets := strings.Index(src, "type Pets =")
	if pet < 0 || pets < 0 || pets < pet {
		t.Fatalf("expected Pet before Pets, got positions %d and %d\n%s", pet, pets, src)
	}
}

func TestGenerate_MapField(t *testing.T) {
	doc := &swagen.Document{
		Definitions: map[string]*swagen.Schema{
			"Counters": {
				Type:     "object",
				Required: []string{"values"},
				Properties: map[string]*swagen.Item{
					"values": itemOf(&swagen.Schema{
						Type:                 "object",
						AdditionalProperties: itemOf(&swagen.Schema{Type: "integer"}),
					}),
				},
			},
		},
	}
	var out strings.Builder
	if _, err := swagen.Generate(doc, golang.New(golang.Options{}), &out); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out.String(), "\tValues map[string]int `json:\"values\"`\n") {
		t.Fatalf("missing map field:\n%s", out.String())
	}
}

func TestGenerate_DuplicateFormattedNameSkipped(t *testing.T) {
	doc := &swagen.Document{
		Definitions: map[string]*swagen.Schema{
			"Pet": {Type: "object", Properties: map[string]*swagen.Item{"a": itemOf(&swagen.Schema{Type: "string"})}},
			"pet": {Type: "object", Properties: map[string]*swagen.Item{"b": itemOf(&swagen.Schema{Type: "string"})}},
		},
	}
	var out strings.Builder
	d, err := swagen.Generate(doc, golang.New(golang.Options{}), &out)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n := strings.Count(out.String(), "type Pet struct"); n != 1 {
		t.Fatalf("expected exactly one Pet declaration, got %d\n%s", n, out.String())
	}
	if !d.HasWarnings() {
		t.Fatalf("expected a duplicate-name warning")
	}
}

func TestGenerate_SelfAliasSkipped(t *testing.T) {
	doc := &swagen.Document{
		Definitions: map[string]*swagen.Schema{
			"Pet": {Type: "object", Properties: map[string]*swagen.Item{
				"name": itemOf(&swagen.Schema{Type: "string"}),
			}},
		},
		Responses: map[string]*swagen.Response{
			"Pet": {Ref: "#/definitions/Pet"},
		},
	}
	var out strings.Builder
	d, err := swagen.Generate(doc, golang.New(golang.Options{}), &out)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(out.String(), "type Pet = Pet") {
		t.Fatalf("self-referential alias was emitted:\n%s", out.String())
	}
	if !d.HasWarnings() {
		t.Fatalf("expected a self-alias warning")
	}
}

func TestGenerate_UnresolvedReferenceWarns(t *testing.T) {
	doc := &swagen.Document{
		Responses: map[string]*swagen.Response{
			"Gone": {Ref: "#/definitions/Missing"},
		},
	}
	var out strings.Builder
	d, err := swagen.Generate(doc, golang.New(golang.Options{}), &out)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !d.HasWarnings() {
		t.Fatalf("expected an unresolved-reference warning")
	}
}

func TestGenerateModels_SkipsHelpers(t *testing.T) {
	var out strings.Builder
	if _, err := swagen.GenerateModels(petDocument(), golang.New(golang.Options{}), &out); err != nil {
		t.Fatalf("GenerateModels: %v", err)
	}
	if strings.Contains(out.String(), "package models") {
		t.Fatalf("helper prologue should be absent:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "type Pet struct") {
		t.Fatalf("models should still be emitted:\n%s", out.String())
	}
}

func TestLookupBackend(t *testing.T) {
	for _, name := range []string{"go", "python"} {
		b, err := swagen.LookupBackend(name)
		if err != nil {
			t.Fatalf("LookupBackend(%q): %v", name, err)
		}
		if b.Name() != name {
			t.Fatalf("backend name mismatch: %q", b.Name())
		}
	}
	if _, err := swagen.LookupBackend("cobol"); err == nil {
		t.Fatalf("expected an error for an unregistered backend")
	}
}
