package profile

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/sampleidentity"
)

type Format string

const (
	FormatAuto  Format = ""
	FormatTable Format = "table"
	FormatVCF   Format = "vcf"
)

// ParseFormat accepts "", "auto", "table" or "vcf".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case string(FormatTable):
		return FormatTable, nil
	case string(FormatVCF):
		return FormatVCF, nil
	}
	return FormatAuto, fmt.Errorf("unknown input format %q: use table or vcf", s)
}

// DetectFormat guesses the format from the file name.
func DetectFormat(path string) Format {
	lower := strings.ToLower(path)
	for _, suffix := range []string{".vcf", ".vcf.gz", ".vcf.bgz", ".vcf.bz2", ".vcf.xz"} {
		if strings.HasSuffix(lower, suffix) {
			return FormatVCF
		}
	}
	return FormatTable
}

// Open loads a profile table from a local or gs:// path. Compressed inputs are
// decompressed transparently.
func Open(ctx context.Context, path string, format Format, client *storage.Client) (*Table, error) {
	if format == FormatAuto {
		format = DetectFormat(path)
	}

	r, err := sampleidentity.Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	switch format {
	case FormatVCF:
		table, summary, err := ReadVCF(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		log.Printf("Read %d VCF records from %s: kept %d sites, skipped %d\n", summary.Records, path, summary.Sites, summary.Skipped)
		return table, nil
	case FormatTable:
		table, err := ReadTable(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return table, nil
	}

	return nil, fmt.Errorf("unknown input format %q", format)
}
