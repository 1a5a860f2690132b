// Package names converts document-literal names into target-language
// identifier shapes. Keyword escaping stays with the backends, which
// each own their own keyword table.
package names

import (
	"strings"
	"unicode"
)

// split breaks a name into word tokens on separators and on camel-case
// boundaries. "petId" and "pet_id" both yield ["pet", "id"];
// "HTTPStatus" yields ["http", "status"].
func split(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = nil
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
				// fooBar -> foo|Bar
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) &&
				i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// HTTPStatus -> HTTP|Status
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// Words returns the lowercase word tokens of a name. Backends that
// apply their own per-word rules (acronym tables and the like) build on
// this instead of the preformatted helpers.
func Words(s string) []string {
	return split(s)
}

// UpperCamel formats a name as UpperCamelCase.
func UpperCamel(s string) string {
	var b strings.Builder
	for _, w := range split(s) {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}

// Snake formats a name as snake_case.
func Snake(s string) string {
	return strings.Join(split(s), "_")
}

// ScreamingSnake formats a name as SCREAMING_SNAKE_CASE.
func ScreamingSnake(s string) string {
	return strings.ToUpper(Snake(s))
}
