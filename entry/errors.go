package entry

import (
	"errors"
	"fmt"
	"strings"

	"schematic/association"
	"schematic/record"
)

var (
	// ErrMissingField matches every *MissingFieldError.
	ErrMissingField = errors.New("missing field")
	// ErrMissingKey matches every *MissingKeyError and *MissingKeysError.
	ErrMissingKey = errors.New("missing entry key")
	// ErrInvalidData matches every *InvalidDataError.
	ErrInvalidData = errors.New("invalid entry data")
	// ErrAlreadyDefined is returned when a type or collection name is reused.
	ErrAlreadyDefined = errors.New("already defined")
	// ErrUnknownType is returned when a name does not denote a registered type.
	ErrUnknownType = errors.New("unknown type")

	// ErrConfiguration matches every ConfigurationError.
	ErrConfiguration = association.ErrConfiguration
)

// ConfigurationError reports a malformed association declaration.
type ConfigurationError = association.ConfigurationError

// MissingFieldError reports access to a name that is neither a field of the
// record nor a declared association.
type MissingFieldError struct {
	Type  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("object %q is missing field %q", e.Type, e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// MissingKeyError reports a lookup of an absent key.
type MissingKeyError struct {
	Key record.Key
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing entry with key %v", e.Key)
}

// Is reports whether target is ErrMissingKey.
func (e *MissingKeyError) Is(target error) bool { return target == ErrMissingKey }

// MissingKeysError lists every absent key of a bulk operation.
type MissingKeysError struct {
	Keys []record.Key
}

func (e *MissingKeysError) Error() string {
	keys := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		keys[i] = fmt.Sprint(k)
	}

	return "missing entries with keys: " + strings.Join(keys, ", ")
}

// Is reports whether target is ErrMissingKey.
func (e *MissingKeysError) Is(target error) bool { return target == ErrMissingKey }

// InvalidDataError reports association data, or a typed read, whose shape
// does not match what the declaration requires.
type InvalidDataError struct {
	Type  string
	Field string
	Err   error
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("object %q field %q: %v", e.Type, e.Field, e.Err)
}

// Is reports whether target is ErrInvalidData.
func (e *InvalidDataError) Is(target error) bool { return target == ErrInvalidData }

// Unwrap returns the underlying cause.
func (e *InvalidDataError) Unwrap() error { return e.Err }
