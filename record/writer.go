package record

import (
	"encoding/csv"
	"io"
)

// Writer serializes typed records as delimited rows. Column order is
// fixed from the schema for the writer's lifetime, so every row shares
// the same shape.
//
// A Writer buffers; call Flush or Close to make trailing rows durable.
type Writer[T any] struct {
	schema  *Schema[T]
	csv     *csv.Writer
	out     io.Writer
	profile Profile
	started bool
	row     int
	tokens  []string
}

// NewWriter returns a writer that encodes records to w using schema.
// With profile.Header set, the schema's column names are written as
// the first row before the first record.
func NewWriter[T any](w io.Writer, schema *Schema[T], profile Profile) *Writer[T] {
	cw := csv.NewWriter(w)
	cw.Comma = profile.Delimiter
	return &Writer[T]{
		schema:  schema,
		csv:     cw,
		out:     w,
		profile: profile,
		tokens:  make([]string, 0, schema.Len()),
	}
}

// Write serializes rec as one row. The row is rendered in memory
// first; a FieldSerializeError leaves the output untouched.
func (w *Writer[T]) Write(rec T) error {
	row := w.row + 1

	tokens := w.tokens[:0]
	for _, f := range w.schema.fields {
		token, err := f.Format(&rec)
		if err != nil {
			return &FieldSerializeError{Row: row, Field: f.Name, Err: err}
		}
		tokens = append(tokens, token)
	}
	w.tokens = tokens

	if !w.started {
		w.started = true
		if w.profile.Header {
			if err := w.csv.Write(w.schema.names); err != nil {
				return err
			}
		}
	}

	if err := w.csv.Write(tokens); err != nil {
		return err
	}
	w.row = row
	return nil
}

// Rows returns the number of records written so far.
func (w *Writer[T]) Rows() int {
	return w.row
}

// Flush writes any buffered rows to the underlying stream and reports
// the first write error encountered.
func (w *Writer[T]) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// Close flushes buffered rows and, when the underlying stream is an
// io.Closer, closes it. All exit paths should reach Close so that
// codec trailers and buffers are flushed.
func (w *Writer[T]) Close() error {
	err := w.Flush()
	if c, ok := w.out.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
