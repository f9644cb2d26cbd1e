// Package naming provides shared case conversion utilities.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser upper-cases the first letter of a word and leaves the rest
// alone, so "userID" stays "UserID" rather than becoming "Userid".
var titleCaser = cases.Title(language.Und, cases.NoLower)

// goKeywords are the Go keywords that cannot be used as identifiers.
// Predeclared identifiers such as "error" are deliberately absent: they can
// be shadowed and are common type names.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// words splits s on every rune that is neither a letter nor a digit.
func words(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}

// ToPascalCase converts a string to PascalCase.
// Any non-alphanumeric rune separates words; the case of the remaining
// letters is preserved.
// Example: "user_profile" -> "UserProfile"
// Example: "api-client" -> "ApiClient"
// Example: "über.user" -> "ÜberUser"
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(titleCaser.String(w))
	}
	return b.String()
}

// ToSnakeCase converts a string to snake_case.
// Word boundaries are separators, lower-to-upper transitions, and the end
// of an upper-case run followed by a lower-case letter, so acronyms stay
// together.
// Example: "listModels" -> "list_models"
// Example: "APIClient" -> "api_client"
// Example: "get-user.by/id" -> "get_user_by_id"
func ToSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	pendingSep := false
	for i, r := range runes {
		if isSeparator(r) {
			pendingSep = b.Len() > 0
			continue
		}
		if unicode.IsUpper(r) && b.Len() > 0 && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				pendingSep = true
			}
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// ToGoName converts an arbitrary OpenAPI name to an exported Go identifier.
// Names that would start with a digit get a "T" prefix and Go keywords are
// escaped with a trailing underscore. An empty result becomes fallback.
func ToGoName(s, fallback string) string {
	name := ToPascalCase(s)
	if name == "" {
		return fallback
	}
	if first := []rune(name)[0]; !unicode.IsLetter(first) {
		name = "T" + name
	}
	return EscapeKeyword(name)
}

// EscapeKeyword appends an underscore when name is a Go keyword. The check
// is case-insensitive so that "Type" and "Range" are escaped as well.
func EscapeKeyword(name string) string {
	if goKeywords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}
