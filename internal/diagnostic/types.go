package diagnostic

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"schematic/association"
)

// Codes of association configuration problems.
const (
	CodeSyntax        = "association_syntax"
	CodeDeclaration   = "association_declaration"
	CodeUnknownTarget = "unknown_target"
	CodeDuplicate     = "duplicate_property"
)

// Diagnostics holds all diagnostic information gathered for a schema.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Type is the entry type this relates to (if any).
	Type string
	// Token is the association token this relates to (if any).
	Token string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName, token string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Type:     typeName,
		Token:    token,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName, token string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Type:     typeName,
		Token:    token,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typeName, token string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Type:     typeName,
		Token:    token,
	})
}

// AddConfiguration records one error per *association.ConfigurationError
// found in err. Other errors are recorded as they are. suggest, when not
// nil, is asked for alternatives to unknown target names.
func (d *Diagnostics) AddConfiguration(err error, suggest func(name string) []string) {
	for _, part := range association.Errors(err) {
		var cfg *association.ConfigurationError
		if !errors.As(part, &cfg) {
			d.AddError(CodeDeclaration, part.Error(), "", "")
			continue
		}

		diag := Diagnostic{
			Severity: SeverityError,
			Code:     configurationCode(cfg),
			Message:  cfg.Reason,
			Type:     cfg.Type,
			Token:    cfg.Token,
		}

		if cfg.Offset >= 0 {
			diag.Message = fmt.Sprintf("%s (offset %d)", cfg.Reason, cfg.Offset)
		}

		if diag.Code == CodeUnknownTarget && suggest != nil && cfg.Name != "" {
			diag.Suggestions = suggest(cfg.Name)
		}

		d.Errors = append(d.Errors, diag)
	}
}

func configurationCode(cfg *association.ConfigurationError) string {
	switch cfg.Kind {
	case association.KindSyntax:
		return CodeSyntax
	case association.KindUnknownEntry, association.KindUnknownCollection:
		return CodeUnknownTarget
	case association.KindDuplicate:
		return CodeDuplicate
	default:
		return CodeDeclaration
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// WriteTo prints every diagnostic, errors first, one per line.
func (d *Diagnostics) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			n, err := fmt.Fprintf(w, "%s: %s\n", diag.Severity, diag)
			total += int64(n)

			if err != nil {
				return total, err
			}
		}
	}

	return total, nil
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}

	if d.Token != "" {
		prefix = append(prefix, d.Token)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
