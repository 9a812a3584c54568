// Package record reads and writes typed records from delimited text
// (CSV/TSV). Record types declare their columns with an explicit,
// ordered field list instead of reflection: each Field names a column
// and carries the parse and format functions for it.
//
// Example usage:
//
//	type Sample struct {
//	    Name  string
//	    Count int
//	}
//
//	schema, err := record.NewSchema(
//	    record.String("name", func(s *Sample) *string { return &s.Name }),
//	    record.Int("count", func(s *Sample) *int { return &s.Count }),
//	)
//
//	r, err := record.NewReader(src, schema, record.TSV())
//	for r.Next() {
//	    rec, err := r.Record()
//	    ...
//	}
package record

import (
	"fmt"
	"strconv"
)

// Profile configures delimited-text framing for one reader or writer.
// It is fixed for the lifetime of the instance it configures.
type Profile struct {
	// Delimiter separates fields within a row, typically ',' or '\t'.
	Delimiter rune
	// Header controls whether a header row of column names is
	// expected (reading) or emitted (writing).
	Header bool
}

// CSV returns a comma-separated profile with a header row.
func CSV() Profile {
	return Profile{Delimiter: ',', Header: true}
}

// TSV returns a tab-separated profile with a header row.
func TSV() Profile {
	return Profile{Delimiter: '\t', Header: true}
}

// Field describes one column of a record type: its name, how to
// format a record's value for it, and how to parse a token into it.
type Field[T any] struct {
	// Name is the column name used in header rows.
	Name string
	// Type describes the target type in parse error messages.
	Type string
	// Format renders the field's value for rec as a token.
	Format func(rec *T) (string, error)
	// Parse stores the token into the field of rec.
	Parse func(rec *T, token string) error
}

// Schema is the ordered column list for a record type. The order given
// to NewSchema is the header and serialization order.
type Schema[T any] struct {
	fields []Field[T]
	names  []string
}

// NewSchema builds a schema from the given fields. Field names must be
// non-empty and unique.
func NewSchema[T any](fields ...Field[T]) (*Schema[T], error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("record: schema needs at least one field")
	}
	names := make([]string, len(fields))
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("record: field %d has an empty name", i)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("record: duplicate field name %q", f.Name)
		}
		if f.Parse == nil || f.Format == nil {
			return nil, fmt.Errorf("record: field %q is missing a parse or format function", f.Name)
		}
		seen[f.Name] = true
		names[i] = f.Name
	}
	return &Schema[T]{fields: fields, names: names}, nil
}

// MustSchema is like NewSchema but panics on error. Intended for
// package-level schema variables.
func MustSchema[T any](fields ...Field[T]) *Schema[T] {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns the column names in declaration order.
func (s *Schema[T]) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of columns.
func (s *Schema[T]) Len() int {
	return len(s.fields)
}

// String declares a string column backed by the pointer field returns.
func String[T any](name string, field func(*T) *string) Field[T] {
	return Field[T]{
		Name: name,
		Type: "string",
		Format: func(rec *T) (string, error) {
			return *field(rec), nil
		},
		Parse: func(rec *T, token string) error {
			*field(rec) = token
			return nil
		},
	}
}

// Int declares an int column.
func Int[T any](name string, field func(*T) *int) Field[T] {
	return Field[T]{
		Name: name,
		Type: "int",
		Format: func(rec *T) (string, error) {
			return strconv.Itoa(*field(rec)), nil
		},
		Parse: func(rec *T, token string) error {
			n, err := strconv.Atoi(token)
			if err != nil {
				return err
			}
			*field(rec) = n
			return nil
		},
	}
}

// Int64 declares an int64 column.
func Int64[T any](name string, field func(*T) *int64) Field[T] {
	return Field[T]{
		Name: name,
		Type: "int64",
		Format: func(rec *T) (string, error) {
			return strconv.FormatInt(*field(rec), 10), nil
		},
		Parse: func(rec *T, token string) error {
			n, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				return err
			}
			*field(rec) = n
			return nil
		},
	}
}

// Float64 declares a float64 column.
func Float64[T any](name string, field func(*T) *float64) Field[T] {
	return Field[T]{
		Name: name,
		Type: "float64",
		Format: func(rec *T) (string, error) {
			return strconv.FormatFloat(*field(rec), 'g', -1, 64), nil
		},
		Parse: func(rec *T, token string) error {
			v, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return err
			}
			*field(rec) = v
			return nil
		},
	}
}

// Bool declares a bool column, accepting the forms strconv.ParseBool
// accepts and writing "true"/"false".
func Bool[T any](name string, field func(*T) *bool) Field[T] {
	return Field[T]{
		Name: name,
		Type: "bool",
		Format: func(rec *T) (string, error) {
			return strconv.FormatBool(*field(rec)), nil
		},
		Parse: func(rec *T, token string) error {
			v, err := strconv.ParseBool(token)
			if err != nil {
				return err
			}
			*field(rec) = v
			return nil
		},
	}
}

// Custom declares a column with caller-supplied parse and format
// functions. typeName appears in parse error messages.
func Custom[T any](name, typeName string, format func(*T) (string, error), parse func(*T, string) error) Field[T] {
	return Field[T]{
		Name:   name,
		Type:   typeName,
		Format: format,
		Parse:  parse,
	}
}
