// Package output serializes identity verdicts.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/sampleidentity/identity"
	"github.com/carbocation/sampleidentity/panel"
)

// Writer receives verdicts one at a time. Close flushes anything buffered; it
// does not close the destination.
type Writer interface {
	Write(identity.Verdict) error
	Close() error
}

type Format string

const (
	FormatTSV   Format = "tsv"
	FormatJSONL Format = "jsonl"
)

// New returns a writer for the requested format. The panel, if non-nil, names
// the discordant sites.
func New(format Format, w io.Writer, manifest *panel.Manifest) (Writer, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatTSV, "":
		return NewTSVWriter(w, manifest), nil
	case FormatJSONL:
		return NewJSONLWriter(w, manifest), nil
	}
	return nil, fmt.Errorf("unknown output format %q: use tsv or jsonl", format)
}

// Multi fans each verdict out to several writers.
type Multi []Writer

func (m Multi) Write(v identity.Verdict) error {
	for _, w := range m {
		if err := w.Write(v); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Close() error {
	var first error
	for _, w := range m {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// siteLabels names discordant sites by the panel's variant IDs, falling back
// to their 1-based indexes.
func siteLabels(sites []int, manifest *panel.Manifest) []string {
	out := make([]string, len(sites))
	for i, site := range sites {
		if manifest != nil {
			out[i] = manifest.Label(site)
			continue
		}
		out[i] = strconv.Itoa(site)
	}
	return out
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
