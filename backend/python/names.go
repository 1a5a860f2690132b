package python

import (
	"github.com/reoring/swagen/internal/names"
)

// keywords is the Python keyword table; colliding identifiers get an
// underscore suffix.
var keywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true,
	"class": true, "continue": true, "def": true, "del": true,
	"elif": true, "else": true, "except": true, "finally": true,
	"for": true, "from": true, "global": true, "if": true,
	"import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true,
	"raise": true, "return": true, "try": true, "while": true,
	"with": true, "yield": true,
}

func fixKeyword(name string) string {
	if keywords[name] {
		return name + "_"
	}
	return name
}

// formatTypeName formats a document name as a Python class name.
func formatTypeName(name string) string {
	return fixKeyword(names.UpperCamel(name))
}

// formatVarName formats a wire property name as a Python attribute or
// argument name.
func formatVarName(name string) string {
	return fixKeyword(names.Snake(name))
}

// formatConstName formats an enum literal as a class-level constant
// name. Empty literals become "EMPTY" and literals starting with a
// digit get a "VALUE_" prefix.
func formatConstName(value string) string {
	name := names.ScreamingSnake(value)
	if name == "" {
		return "EMPTY"
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "VALUE_" + name
	}
	return name
}
