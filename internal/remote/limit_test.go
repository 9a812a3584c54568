package remote

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"golang.org/x/time/rate"
)

func TestLimitedReader_DeliversAllBytes(t *testing.T) {
	payload := strings.Repeat("x", 4096)
	limiter := rate.NewLimiter(rate.Limit(1<<20), 1<<20)

	r := NewLimitedReader(context.Background(), strings.NewReader(payload), limiter)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != payload {
		t.Errorf("read %d bytes, want %d", len(got), len(payload))
	}
}

func TestLimitedReader_ClipsToBurst(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(1<<20), 8)
	r := NewLimitedReader(context.Background(), bytes.NewReader(bytes.Repeat([]byte("a"), 64)), limiter)

	buf := make([]byte, 64)
	n, err := r.Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n > 8 {
		t.Errorf("Read() = %d bytes, want at most the burst of 8", n)
	}
}

func TestLimitedReader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	limiter := rate.NewLimiter(rate.Limit(1), 1)
	r := NewLimitedReader(ctx, strings.NewReader("abc"), limiter)

	if _, err := io.ReadAll(r); err == nil {
		t.Error("ReadAll() with canceled context should fail")
	}
}
