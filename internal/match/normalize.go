package match

import (
	"strings"
	"unicode"
)

// initialisms are written all upper case in Go identifiers.
var initialisms = map[string]bool{
	"API": true, "HTML": true, "HTTP": true, "ID": true, "IP": true,
	"JSON": true, "SKU": true, "SQL": true, "URI": true, "URL": true,
	"UUID": true, "XML": true, "YAML": true,
}

// NormalizeIdent normalizes an identifier for fuzzy matching: CamelCase is
// split, the tokens are joined lower case and separators are dropped.
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(tokenizeCamelCase(s), ""))
}

// ExportedName turns a schema name into an exported Go identifier.
// Examples:
//   - "orderItems" -> "OrderItems"
//   - "customer_id" -> "CustomerID"
//   - "a_firstname" -> "AFirstname"
//   - "2fa" -> "X2fa"
func ExportedName(s string) string {
	var b strings.Builder

	for _, tok := range tokenizeCamelCase(s) {
		upper := strings.ToUpper(tok)
		if initialisms[upper] {
			b.WriteString(upper)
			continue
		}

		runes := []rune(tok)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	out := b.String()
	if out == "" {
		return "X"
	}

	if r := []rune(out)[0]; !unicode.IsLetter(r) {
		out = "X" + out
	}

	return out
}

// tokenizeCamelCase splits a CamelCase, camelCase or snake_case string
// into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "order_items" -> ["order", "items"]
func tokenizeCamelCase(s string) []string {
	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return tokens
}

// isSeparator reports whether r separates words.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// shouldStartNewToken determines if a new token starts at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID": lower to upper.
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser": the last capital of an acronym opens the next word.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
