package sampleidentity

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyTable = "sample\tsite1\nS1\t3,0\n"

func TestDetectDataType(t *testing.T) {
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write([]byte(tinyTable))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	for _, v := range []struct {
		name  string
		input []byte
		want  DataType
	}{
		{"plain", []byte(tinyTable), DataTypeNoCompression},
		{"gzip", gz.Bytes(), DataTypeGzip},
		{"short", []byte("ab"), DataTypeNoCompression},
		{"empty", nil, DataTypeNoCompression},
	} {
		dt, err := DetectDataType(bytes.NewReader(v.input))
		require.NoError(t, err, v.name)
		assert.Equal(t, v.want, dt, v.name)
	}
}

func TestOpenLocalGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.tsv.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(tinyTable))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	r, err := Open(context.Background(), path, nil)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, tinyTable, string(got))
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.tsv")
	require.NoError(t, os.WriteFile(path, []byte(tinyTable), 0644))

	r, err := Open(context.Background(), path, nil)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, tinyTable, string(got))
}

func TestGoogleStorageNeedsClient(t *testing.T) {
	_, _, err := MaybeOpenSeekerFromGoogleStorage(context.Background(), "gs://bucket/profiles.tsv", nil)
	assert.Error(t, err)
}
