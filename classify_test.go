package delimio

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Compression
	}{
		{"samples.txt.gz", CompressionGzip},
		{"samples.txt.gzip", CompressionGzip},
		{"samples.gz", CompressionGzip},
		{"samples.txt.zst", CompressionZstd},
		{"samples.txt.zstd", CompressionZstd},
		{"samples.zst", CompressionZstd},
		{"samples.txt", CompressionNone},
		{"samples.csv", CompressionNone},
		{"samples", CompressionNone},
		{"", CompressionNone},
		{"samples.GZ", CompressionNone},   // case-sensitive
		{"samples.Zst", CompressionNone},  // case-sensitive
		{"samples.gz.txt", CompressionNone}, // only the final token counts
		{"samples.tar", CompressionNone},
		{"/data/in.csv.gz", CompressionGzip},
		{"gs://bucket/key.tsv.zst", CompressionZstd},
	}

	for _, tt := range tests {
		if got := Classify(tt.path); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestClassify_Pure(t *testing.T) {
	// Same input, same output, every time.
	for i := 0; i < 3; i++ {
		if got := Classify("a.tsv.gz"); got != CompressionGzip {
			t.Fatalf("Classify() = %v on call %d, want CompressionGzip", got, i+1)
		}
	}
}

func TestCompression_String(t *testing.T) {
	tests := []struct {
		c    Compression
		want string
	}{
		{CompressionNone, "none"},
		{CompressionGzip, "gzip"},
		{CompressionZstd, "zstd"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
