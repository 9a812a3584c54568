package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"cloud.google.com/go/storage"
)

// openGCS opens an object in Google Cloud Storage.
func openGCS(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}

	r, err := client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		client.Close()
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("gs://%s/%s: %w", bucket, key, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("opening gs://%s/%s: %w", bucket, key, err)
	}

	return &gcsReader{ReadCloser: r, client: client}, nil
}

// gcsReader closes the owning client together with the object reader.
type gcsReader struct {
	io.ReadCloser
	client *storage.Client
}

func (r *gcsReader) Close() error {
	err := r.ReadCloser.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}
