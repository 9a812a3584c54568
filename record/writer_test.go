package record

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWriter_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, pairSchema(t), CSV())

	recs := []pair{{"a", 1}, {"b", 2}}
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if want := "name,count\na,1\nb,2\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if w.Rows() != 2 {
		t.Errorf("Rows() = %d, want 2", w.Rows())
	}
}

func TestWriter_TSVHeaderLine(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, pairSchema(t), TSV())

	if err := w.Write(pair{"a", 1}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	first, _, ok := strings.Cut(buf.String(), "\n")
	if !ok {
		t.Fatalf("output %q has no newline", buf.String())
	}
	// Header equals the field names joined by the delimiter, in
	// declaration order.
	if want := "name\tcount"; first != want {
		t.Errorf("header = %q, want %q", first, want)
	}
}

func TestWriter_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	profile := Profile{Delimiter: ',', Header: false}
	w := NewWriter(&buf, pairSchema(t), profile)

	if err := w.Write(pair{"a", 1}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if want := "a,1\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriter_QuotesDelimiter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, pairSchema(t), CSV())

	if err := w.Write(pair{`a,b "c"`, 1}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if want := "name,count\n\"a,b \"\"c\"\"\",1\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriter_SerializeErrorWritesNothing(t *testing.T) {
	type flaky struct {
		OK  string
		Bad string
	}
	schema, err := NewSchema(
		String("ok", func(f *flaky) *string { return &f.OK }),
		Custom("bad", "flaky",
			func(f *flaky) (string, error) { return "", fmt.Errorf("cannot render %q", f.Bad) },
			func(f *flaky, token string) error { f.Bad = token; return nil },
		),
	)
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}

	var buf bytes.Buffer
	w := NewWriter(&buf, schema, CSV())

	werr := w.Write(flaky{OK: "fine", Bad: "boom"})
	var fse *FieldSerializeError
	if !errors.As(werr, &fse) {
		t.Fatalf("Write() error = %v, want FieldSerializeError", werr)
	}
	if fse.Row != 1 || fse.Field != "bad" {
		t.Errorf("FieldSerializeError = %+v, want row 1, field bad", fse)
	}

	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	// Not even the header: nothing of the failed row reaches the stream.
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty after failed serialize", buf.String())
	}
	if w.Rows() != 0 {
		t.Errorf("Rows() = %d, want 0", w.Rows())
	}
}

func TestWriter_CloseClosesUnderlying(t *testing.T) {
	sink := &closeRecorder{}
	w := NewWriter(sink, pairSchema(t), CSV())

	if err := w.Write(pair{"a", 1}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if !sink.closed {
		t.Error("Close() did not close the underlying stream")
	}
	if want := "name,count\na,1\n"; sink.buf.String() != want {
		t.Errorf("output = %q, want %q", sink.buf.String(), want)
	}
}

// closeRecorder is a write sink that remembers whether it was closed.
type closeRecorder struct {
	buf    bytes.Buffer
	closed bool
}

func (c *closeRecorder) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}
