package remote

import (
	"context"
	"testing"
)

func TestIsRemote(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"gs://bucket/key.tsv.gz", true},
		{"s3://bucket/dir/key.csv", true},
		{"/tmp/local.txt", false},
		{"relative/path.gz", false},
		{"http://example.com/file", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsRemote(tt.path); got != tt.want {
			t.Errorf("IsRemote(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestSplitObjectURL(t *testing.T) {
	tests := []struct {
		name       string
		rawURL     string
		scheme     string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{"simple", "gs://bucket/key", "gs://", "bucket", "key", false},
		{"nested key", "s3://bucket/a/b/c.tsv.gz", "s3://", "bucket", "a/b/c.tsv.gz", false},
		{"no key", "gs://bucket", "gs://", "", "", true},
		{"empty key", "gs://bucket/", "gs://", "", "", true},
		{"no bucket", "gs:///key", "gs://", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := splitObjectURL(tt.rawURL, tt.scheme)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("splitObjectURL(%q) expected error", tt.rawURL)
				}
				return
			}
			if err != nil {
				t.Fatalf("splitObjectURL(%q) error = %v", tt.rawURL, err)
			}
			if bucket != tt.wantBucket || key != tt.wantKey {
				t.Errorf("splitObjectURL(%q) = (%q, %q), want (%q, %q)",
					tt.rawURL, bucket, key, tt.wantBucket, tt.wantKey)
			}
		})
	}
}

func TestOpen_UnsupportedScheme(t *testing.T) {
	if _, err := Open(context.Background(), "ftp://bucket/key"); err == nil {
		t.Error("Open() with unsupported scheme should fail")
	}
}
