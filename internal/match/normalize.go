package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lowercases an identifier and strips separators so that
// "fooBar", "foo_bar" and "Foo.Bar" compare equal.
func NormalizeIdent(s string) string {
	tokens := tokenizeCamelCase(s)

	return strings.ToLower(strings.Join(tokens, ""))
}

// tokenizeCamelCase splits a CamelCase or delimited string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customer_name" -> ["customer", "name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "user.address$city" -> ["user", "address", "city"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator covers identifier separators and the default copy delimiters.
func isSeparator(r rune) bool {
	switch r {
	case '_', '-', ' ', '.', '$':
		return true
	}

	return false
}

func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	// "orderID" -> split before 'I'
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	// "XMLParser" -> split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(r) && unicode.IsUpper(prev) && hasNextLower
}
