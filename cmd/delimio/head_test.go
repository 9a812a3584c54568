package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRunHead_LongLines(t *testing.T) {
	// A single line well past bufio's default 64 KiB token limit.
	long := strings.Repeat("x", 256*1024)
	path := filepath.Join(t.TempDir(), "long.txt")
	if err := os.WriteFile(path, []byte(long+"\nshort\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())

	headLines = 2
	defer func() { headLines = 10 }()

	if err := runHead(cmd, []string{path}); err != nil {
		t.Fatalf("runHead() error = %v", err)
	}
	if want := long + "\nshort\n"; out.String() != want {
		t.Errorf("output = %d bytes, want %d bytes with the long line intact", out.Len(), len(want))
	}
}

func TestRunHead_LimitsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte("a\nb\nc\nd\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())

	headLines = 2
	defer func() { headLines = 10 }()

	if err := runHead(cmd, []string{path}); err != nil {
		t.Fatalf("runHead() error = %v", err)
	}
	if want := "a\nb\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
