package delimio

import (
	"fmt"

	"github.com/delimio/delimio/internal/stats"
	"github.com/delimio/delimio/record"
)

// ReadDelim reads every record of a delimited file, decompressing per
// the path's extension. It fails on the first bad row; for
// skip-and-continue semantics, drive a record.Reader over OpenReader
// directly.
func ReadDelim[T any](f *IO, path string, schema *record.Schema[T], profile record.Profile) ([]T, error) {
	r, err := f.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	rd, err := record.NewReader(r, schema, profile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var out []T
	for rd.Next() {
		rec, err := rd.Record()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		out = append(out, rec)
	}
	if err := rd.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	f.stats.IncCounter(stats.MetricRecordsRead, int64(len(out)))
	return out, nil
}

// WriteDelim writes recs to a delimited file, compressing per the
// path's extension. With profile.Header the schema's column names are
// written first, in declaration order.
func WriteDelim[T any](f *IO, path string, recs []T, schema *record.Schema[T], profile record.Profile) error {
	wc, err := f.OpenWriter(path)
	if err != nil {
		return err
	}

	w := record.NewWriter(wc, schema, profile)
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			w.Close() // still release the handle; the write error wins
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	f.stats.IncCounter(stats.MetricRecordsWritten, int64(len(recs)))
	return nil
}

// ReadCSV reads comma-separated records with a header row.
func ReadCSV[T any](f *IO, path string, schema *record.Schema[T]) ([]T, error) {
	return ReadDelim(f, path, schema, record.CSV())
}

// ReadTSV reads tab-separated records with a header row.
func ReadTSV[T any](f *IO, path string, schema *record.Schema[T]) ([]T, error) {
	return ReadDelim(f, path, schema, record.TSV())
}

// WriteCSV writes comma-separated records with a header row.
func WriteCSV[T any](f *IO, path string, recs []T, schema *record.Schema[T]) error {
	return WriteDelim(f, path, recs, schema, record.CSV())
}

// WriteTSV writes tab-separated records with a header row.
func WriteTSV[T any](f *IO, path string, recs []T, schema *record.Schema[T]) error {
	return WriteDelim(f, path, recs, schema, record.TSV())
}
