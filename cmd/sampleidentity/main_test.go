package main

import (
	"bufio"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errDiskFull = errors.New("no space left on device")

// fullDisk accepts nothing and records whether it was closed.
type fullDisk struct {
	closed bool
}

func (f *fullDisk) Write(p []byte) (int, error) {
	return 0, errDiskFull
}

func (f *fullDisk) Close() error {
	f.closed = true
	return nil
}

type closeFails struct{}

func (closeFails) Write(p []byte) (int, error) { return len(p), nil }
func (closeFails) Close() error                { return errDiskFull }

func TestFinishReportsShortWrite(t *testing.T) {
	out := &fullDisk{}
	bw := bufio.NewWriter(out)
	_, err := bw.WriteString("S1\tS2\tLikely Match\n")
	assert.NoError(t, err)

	assert.ErrorIs(t, finish(bw, out), errDiskFull)
	assert.True(t, out.closed)
}

func TestFinishReportsCloseError(t *testing.T) {
	out := closeFails{}
	bw := bufio.NewWriter(out)
	_, err := bw.WriteString("row\n")
	assert.NoError(t, err)

	assert.ErrorIs(t, finish(bw, out), errDiskFull)
}
