package sampleidentity

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
)

// Open returns a decompressed stream over a local or gs:// path. Closing it
// closes the underlying file or object reader as well.
func Open(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	f, _, err := MaybeOpenSeekerFromGoogleStorage(ctx, path, client)
	if err != nil {
		return nil, err
	}

	r, err := MaybeDecompressReadCloser(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &stackedCloser{Reader: r, closers: []io.Closer{r, f}}, nil
}

type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
