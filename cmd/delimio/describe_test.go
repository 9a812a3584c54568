package main

import (
	"strings"
	"testing"
)

func TestCollectNumericColumns(t *testing.T) {
	in := "name,count,score\na,1,0.5\nb,2,1.5\nc,3,2.5\n"
	names, columns, err := collectNumericColumns(strings.NewReader(in), ',', true)
	if err != nil {
		t.Fatalf("collectNumericColumns() error = %v", err)
	}

	// "name" is non-numeric and dropped; the other two survive.
	if len(names) != 2 || names[0] != "count" || names[1] != "score" {
		t.Fatalf("names = %q, want [count score]", names)
	}
	if len(columns[0]) != 3 || columns[0][0] != 1 || columns[0][2] != 3 {
		t.Errorf("count column = %v, want [1 2 3]", columns[0])
	}
	if columns[1][1] != 1.5 {
		t.Errorf("score column = %v, want [0.5 1.5 2.5]", columns[1])
	}
}

func TestCollectNumericColumns_NoHeader(t *testing.T) {
	in := "1\t10\n2\t20\n"
	names, columns, err := collectNumericColumns(strings.NewReader(in), '\t', false)
	if err != nil {
		t.Fatalf("collectNumericColumns() error = %v", err)
	}

	if len(names) != 2 || names[0] != "col1" || names[1] != "col2" {
		t.Errorf("names = %q, want synthesized col1/col2", names)
	}
	if columns[1][1] != 20 {
		t.Errorf("col2 = %v, want [10 20]", columns[1])
	}
}

func TestCollectNumericColumns_MixedColumnDropped(t *testing.T) {
	// A single bad token disqualifies the whole column.
	in := "count\n1\nnope\n3\n"
	names, columns, err := collectNumericColumns(strings.NewReader(in), ',', true)
	if err != nil {
		t.Fatalf("collectNumericColumns() error = %v", err)
	}
	if len(names) != 0 || len(columns) != 0 {
		t.Errorf("got %q/%v, want no numeric columns", names, columns)
	}
}

func TestCollectNumericColumns_EmptyInput(t *testing.T) {
	names, columns, err := collectNumericColumns(strings.NewReader(""), ',', true)
	if err != nil {
		t.Fatalf("collectNumericColumns() error = %v", err)
	}
	if names != nil || columns != nil {
		t.Errorf("got %q/%v, want nil for empty input", names, columns)
	}
}

func TestCollectNumericColumns_RaggedRows(t *testing.T) {
	// The short row only contributes to the columns it has.
	in := "a,b\n1,2\n3\n5,6\n"
	names, columns, err := collectNumericColumns(strings.NewReader(in), ',', true)
	if err != nil {
		t.Fatalf("collectNumericColumns() error = %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("names = %q, want both columns", names)
	}
	if len(columns[0]) != 3 {
		t.Errorf("column a has %d values, want 3", len(columns[0]))
	}
	if len(columns[1]) != 2 {
		t.Errorf("column b has %d values, want 2", len(columns[1]))
	}
}
