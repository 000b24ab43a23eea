package validator

import (
	"sort"
	"strings"
)

type Validator interface {
	// Validate validates the fields of the struct and returns a map of errors.
	// returns nil if no errors are found
	Validate() map[string]string
}

type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "invalid: " + strings.Join(parts, "; ")
}

func Validate(v Validator) error {
	if fields := v.Validate(); len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// Fields accumulates field errors; the zero value is ready to use.
type Fields map[string]string

func (f *Fields) Add(field, msg string) {
	if *f == nil {
		*f = make(Fields)
	}
	(*f)[field] = msg
}

// Check records msg under field when ok is false.
func (f *Fields) Check(ok bool, field, msg string) {
	if !ok {
		f.Add(field, msg)
	}
}

func (f Fields) Map() map[string]string {
	if len(f) == 0 {
		return nil
	}
	return f
}
