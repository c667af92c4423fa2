package association

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration matches every *ConfigurationError through errors.Is.
var ErrConfiguration = errors.New("invalid association configuration")

// Pair parameters named by a ConfigurationError.
const (
	ParamNone = iota
	ParamEntry
	ParamCollection
)

// ErrorKind classifies a ConfigurationError.
type ErrorKind int

const (
	KindSyntax            ErrorKind = iota // malformed token, Offset is set
	KindUnknownEntry                       // target is not a registered entry type
	KindUnknownCollection                  // collection is not a registered collection type
	KindDuplicate                          // property declared twice on one type
	KindParams                             // wrong number of declaration parameters
)

// ConfigurationError reports a malformed association token or a declaration
// whose target does not have the required capability. It is raised on the
// first use of the owning type and is never retried.
type ConfigurationError struct {
	// Type is the entry type owning the declaration, if known.
	Type string
	// Token is the offending token.
	Token string
	// Offset is the byte offset within Token of a syntax error, or -1.
	Offset int
	// Param is ParamEntry or ParamCollection for a capability error on the
	// first or second declaration parameter.
	Param int
	// Kind classifies the problem.
	Kind ErrorKind
	// Name is the unknown type or duplicated property for the kinds that
	// concern one.
	Name string
	// Reason describes the problem.
	Reason string
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder

	b.WriteString("invalid association")

	if e.Type != "" {
		fmt.Fprintf(&b, " on %s", e.Type)
	}

	fmt.Fprintf(&b, " %q", e.Token)

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	switch e.Param {
	case ParamEntry:
		b.WriteString(" (first parameter)")
	case ParamCollection:
		b.WriteString(" (second parameter)")
	}

	b.WriteString(": ")
	b.WriteString(e.Reason)

	return b.String()
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func syntaxError(token string, offset int, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Token:  token,
		Offset: offset,
		Kind:   KindSyntax,
		Reason: fmt.Sprintf(format, args...),
	}
}

func declarationError(token string, kind ErrorKind, param int, name, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Token:  token,
		Offset: -1,
		Param:  param,
		Kind:   kind,
		Name:   name,
		Reason: fmt.Sprintf(format, args...),
	}
}

// Errors flattens an error returned by Compile, possibly joined, into its
// individual parts.
func Errors(err error) []error {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, Errors(e)...)
		}

		return out
	}

	return []error{err}
}
