package record

import (
	"errors"
	"fmt"
)

// ErrHeaderMismatch indicates the header row of a file does not match
// the schema's column names.
var ErrHeaderMismatch = errors.New("record: header mismatch")

// ColumnCountError reports a row whose token count differs from the
// established column count. Row is the 1-based data row number,
// counted from the first row after the header.
type ColumnCountError struct {
	Row  int
	Want int
	Got  int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("record: row %d has %d columns, want %d", e.Row, e.Got, e.Want)
}

// FieldParseError reports a token that could not be converted to its
// target field type.
type FieldParseError struct {
	Row   int
	Field string
	Token string
	Type  string
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("record: row %d field %q: cannot parse %q as %s: %v", e.Row, e.Field, e.Token, e.Type, e.Err)
}

func (e *FieldParseError) Unwrap() error { return e.Err }

// FieldSerializeError reports a field value that could not be
// rendered as a token. No bytes of the failed row are written.
type FieldSerializeError struct {
	Row   int
	Field string
	Err   error
}

func (e *FieldSerializeError) Error() string {
	return fmt.Sprintf("record: row %d field %q: cannot serialize: %v", e.Row, e.Field, e.Err)
}

func (e *FieldSerializeError) Unwrap() error { return e.Err }

// RowError reports a row the tokenizer could not frame cleanly, such
// as a quoting violation. Subsequent rows remain readable.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("record: row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
