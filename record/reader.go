package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
)

// Reader is a pull cursor over typed records in a delimited-text
// stream. It is forward-only and not restartable: once exhausted or
// failed, it stays that way.
//
// Per-row failures (bad column count, unparseable token, quoting
// violation) surface from Record without ending the stream, so callers
// can skip bad rows and continue. Underlying I/O failures end the
// stream and surface from Err.
type Reader[T any] struct {
	schema  *Schema[T]
	csv     *csv.Reader
	index   []int // schema field i -> token position
	columns int   // expected tokens per row
	row     int   // 1-based data row counter
	cur     T
	curErr  error
	err     error
	done    bool
}

// NewReader returns a reader that decodes rows from r using schema.
//
// With profile.Header set, the first row is consumed as the column
// names and matched to the schema by name, in any order; the name sets
// must be equal or NewReader fails with ErrHeaderMismatch. Without a
// header, rows are matched to the schema positionally.
//
// The reader does not close r; the caller owns the stream.
func NewReader[T any](r io.Reader, schema *Schema[T], profile Profile) (*Reader[T], error) {
	cr := csv.NewReader(r)
	cr.Comma = profile.Delimiter
	cr.FieldsPerRecord = -1 // column counts are checked per row below
	cr.ReuseRecord = true

	rd := &Reader[T]{
		schema:  schema,
		csv:     cr,
		columns: schema.Len(),
	}

	if profile.Header {
		header, err := cr.Read()
		switch {
		case err == io.EOF:
			// Empty input is an empty stream, not an error.
			rd.done = true
		case err != nil:
			return nil, fmt.Errorf("record: reading header: %w", err)
		default:
			index, err := matchHeader(schema, header)
			if err != nil {
				return nil, err
			}
			rd.index = index
		}
	} else {
		index := make([]int, schema.Len())
		for i := range index {
			index[i] = i
		}
		rd.index = index
	}

	return rd, nil
}

// matchHeader maps schema field order to header positions. The header
// must contain exactly the schema's names, each once, in any order.
func matchHeader[T any](schema *Schema[T], header []string) ([]int, error) {
	if len(header) != schema.Len() {
		return nil, fmt.Errorf("%w: header has %d columns, schema has %d", ErrHeaderMismatch, len(header), schema.Len())
	}
	positions := make(map[string]int, len(header))
	for pos, name := range header {
		if _, dup := positions[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrHeaderMismatch, name)
		}
		positions[name] = pos
	}
	index := make([]int, schema.Len())
	for i, name := range schema.names {
		pos, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrHeaderMismatch, name)
		}
		index[i] = pos
		delete(positions, name)
	}
	for name := range positions {
		return nil, fmt.Errorf("%w: unknown column %q", ErrHeaderMismatch, name)
	}
	return index, nil
}

// Next advances to the next row. It returns false when the stream is
// exhausted or has failed; Err distinguishes the two.
func (r *Reader[T]) Next() bool {
	if r.done {
		return false
	}

	tokens, err := r.csv.Read()
	if err == io.EOF {
		r.done = true
		return false
	}
	r.row++

	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			// Framing recovered on the next row; report this one inline.
			var zero T
			r.cur, r.curErr = zero, &RowError{Row: r.row, Err: err}
			return true
		}
		r.err = err
		r.done = true
		return false
	}

	var zero T
	r.cur, r.curErr = zero, nil

	if len(tokens) != r.columns {
		r.curErr = &ColumnCountError{Row: r.row, Want: r.columns, Got: len(tokens)}
		return true
	}

	var rec T
	for i, f := range r.schema.fields {
		token := tokens[r.index[i]]
		if err := f.Parse(&rec, token); err != nil {
			r.curErr = &FieldParseError{Row: r.row, Field: f.Name, Token: token, Type: f.Type, Err: err}
			return true
		}
	}
	r.cur = rec
	return true
}

// Record returns the current row as a typed record, or the row's
// error. Valid only after Next has returned true.
func (r *Reader[T]) Record() (T, error) {
	return r.cur, r.curErr
}

// Err returns the fatal stream error, if any, once Next has returned
// false. A nil result means the stream ended cleanly.
func (r *Reader[T]) Err() error {
	return r.err
}

// Row returns the 1-based number of the current data row.
func (r *Reader[T]) Row() int {
	return r.row
}

// All returns a one-shot iterator over the remaining rows. Row errors
// are yielded alongside their (zero-valued) records; a fatal stream
// error is yielded as the final element.
func (r *Reader[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for r.Next() {
			if !yield(r.Record()) {
				return
			}
		}
		if err := r.Err(); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}
