package association

import (
	"strings"
)

const (
	nullableMark  = '?'
	embeddingMark = '.'
	multipleMark  = "[]"

	// embeddingSeparator joins a property name and its fields when an
	// embedded token carries no explicit prefix ("tag." reads "tag_*").
	embeddingSeparator = "_"
)

// Token is the parsed form of one association token.
type Token struct {
	// Raw is the token as declared.
	Raw string
	// Name is the exposed property name.
	Name string
	// Nullable marks "?name": empty data resolves to null.
	Nullable bool
	// Embedded marks "name." and "name.prefix".
	Embedded bool
	// Prefix is the field prefix of an embedded association.
	Prefix string
	// Multiple marks "name[]".
	Multiple bool
}

// ParseToken parses a token of the form [?]name[.[prefix]][[]].
func ParseToken(raw string) (Token, error) {
	tok := Token{Raw: raw}
	pos := 0

	if strings.IndexByte(raw, nullableMark) == 0 {
		tok.Nullable = true
		pos++
	}

	end := pos + scanSegment(raw[pos:])
	if end == pos {
		return Token{}, syntaxError(raw, pos, "missing property name")
	}

	tok.Name = raw[pos:end]
	pos = end

	if pos < len(raw) && raw[pos] == embeddingMark {
		pos++
		end = pos + scanSegment(raw[pos:])
		tok.Embedded = true
		tok.Prefix = raw[pos:end]

		if tok.Prefix == "" {
			tok.Prefix = tok.Name + embeddingSeparator
		}

		pos = end
	}

	if pos < len(raw) && strings.HasPrefix(raw[pos:], multipleMark) {
		tok.Multiple = true
		pos += len(multipleMark)
	}

	if pos < len(raw) {
		return Token{}, syntaxError(raw, pos, "unexpected %q", raw[pos])
	}

	if tok.Embedded && tok.Multiple {
		return Token{}, syntaxError(raw, strings.LastIndex(raw, multipleMark),
			"embedding and multiplicity are mutually exclusive")
	}

	return tok, nil
}

// scanSegment returns the length of the longest prefix of s free of the
// grammar's delimiters.
func scanSegment(s string) int {
	if i := strings.IndexAny(s, ".[]"); i >= 0 {
		return i
	}

	return len(s)
}

// String returns the canonical token: the explicit prefix form is kept
// only when it differs from the default.
func (t Token) String() string {
	var b strings.Builder

	if t.Nullable {
		b.WriteByte(nullableMark)
	}

	b.WriteString(t.Name)

	if t.Embedded {
		b.WriteByte(embeddingMark)

		if t.Prefix != t.Name+embeddingSeparator {
			b.WriteString(t.Prefix)
		}
	}

	if t.Multiple {
		b.WriteString(multipleMark)
	}

	return b.String()
}
