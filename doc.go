// Package swagen converts Swagger v2 (OpenAPI v2) documents into native
// data-model source code for a target language.
//
// The pipeline:
//
//   - Decode a YAML/JSON document into an immutable Document tree
//   - Discover every model that must be emitted, including anonymous
//     inline sub-schemas, as a list of ModelPrototype values
//   - Flatten allOf composition and resolve $ref indirection per prototype
//   - Map each schema node to a language-neutral TargetType tree
//   - Render declarations through a pluggable per-language Backend
//
// Design policy:
//   - Keep only public APIs in the root package; identifier formatting
//     lives under internal/names, language backends under backend/.
//   - Nothing inside the pipeline halts the run: unresolvable references
//     and unmappable schemas degrade to untyped fallbacks, and skipped
//     declarations surface as Diag warnings.
//
// Typical usage:
//
//	doc, _, err := swagen.DecodeYAML(data)
//	d, err := swagen.Generate(doc, golang.New(golang.Options{}), &buf)
package swagen
