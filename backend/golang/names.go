package golang

import (
	"strings"

	"github.com/reoring/swagen/internal/names"
)

// keywords is the Go keyword table. Formatted identifiers are always
// exported, so collisions are only possible through future formatting
// changes; escaping appends an underscore like the other backends.
var keywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

// acronyms are word tokens rendered fully uppercase, per Go naming
// convention for initialisms.
var acronyms = map[string]string{
	"id": "ID", "url": "URL", "uri": "URI", "api": "API",
	"http": "HTTP", "https": "HTTPS", "json": "JSON", "xml": "XML",
	"sql": "SQL", "html": "HTML", "ip": "IP", "tcp": "TCP",
	"udp": "UDP", "tls": "TLS", "ssh": "SSH", "cpu": "CPU",
	"uid": "UID", "uuid": "UUID",
}

func fixKeyword(name string) string {
	if keywords[name] {
		return name + "_"
	}
	return name
}

// formatTypeName formats a document name as an exported Go type name.
func formatTypeName(name string) string {
	var b strings.Builder
	for _, w := range names.Words(name) {
		if a, ok := acronyms[w]; ok {
			b.WriteString(a)
		} else {
			b.WriteString(strings.ToUpper(w[:1]))
			b.WriteString(w[1:])
		}
	}
	return fixKeyword(b.String())
}

// formatFieldName formats a wire property name as an exported struct
// field name.
func formatFieldName(name string) string {
	return formatTypeName(name)
}

// formatEnumCaseName formats an enum literal as the suffix of a
// constant name. Empty literals become "Empty" and literals starting
// with a digit get a "Value" prefix so the constant is legal.
func formatEnumCaseName(value string) string {
	name := formatTypeName(value)
	if name == "" {
		return "Empty"
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "Value" + name
	}
	return name
}
