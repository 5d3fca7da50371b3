package profile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/carbocation/vcfgo"
)

// BufferSize is the read buffer placed in front of VCF streams.
var BufferSize = 4096 * 8

// VCFSummary describes what ReadVCF kept and dropped.
type VCFSummary struct {
	Records int
	Sites   int
	Skipped int
}

// ReadVCF builds a Table from the per-sample AD (allelic depth) field of a VCF.
// Each biallelic SNV becomes one site, with the reference allele as allele A
// and the alternate as allele B. Multi-allelic, indel and AD-less records are
// skipped. A sample whose AD is missing at a kept site gets (0,0).
func ReadVCF(r io.Reader) (*Table, VCFSummary, error) {
	var summary VCFSummary

	vcfReader, err := vcfgo.NewReader(bufio.NewReaderSize(r, BufferSize), false)
	if err != nil {
		return nil, summary, pfx.Err(err)
	}

	names := vcfReader.Header.SampleNames
	perSample := make([][]AlleleCount, len(names))

	for {
		variant := vcfReader.Read()
		if variant == nil {
			break
		}
		summary.Records++

		if !isBiallelicSNV(variant) || variant.Samples == nil {
			summary.Skipped++
			continue
		}

		counts := make([]AlleleCount, len(names))
		hasAD := false
		for i, sample := range variant.Samples {
			if i >= len(names) || sample == nil {
				continue
			}
			ad, exists := sample.Fields["AD"]
			if !exists {
				continue
			}
			hasAD = true

			ac, err := parseAD(ad)
			if err != nil {
				return nil, summary, fmt.Errorf("%s:%d sample %s: %w", variant.Chromosome, variant.Pos, names[i], err)
			}
			counts[i] = ac
		}

		if !hasAD {
			summary.Skipped++
			continue
		}

		for i := range names {
			perSample[i] = append(perSample[i], counts[i])
		}
		summary.Sites++
	}

	if err := vcfReader.Error(); err != nil {
		return nil, summary, pfx.Err(err)
	}

	table := NewTable()
	for i, name := range names {
		if err := table.Add(name, perSample[i]); err != nil {
			return nil, summary, err
		}
	}

	return table, summary, nil
}

func isBiallelicSNV(v *vcfgo.Variant) bool {
	alt := v.Alt()
	if len(alt) != 1 {
		return false
	}
	return len(v.Ref()) == 1 && len(alt[0]) == 1 && alt[0] != "." && alt[0] != "*"
}

// parseAD reads a biallelic AD value. A missing value (".") is no coverage.
func parseAD(ad string) (AlleleCount, error) {
	if ad == "." || ad == ".,." {
		return AlleleCount{}, nil
	}
	if strings.Count(ad, ",") != 1 {
		return AlleleCount{}, fmt.Errorf("AD %q is not biallelic", ad)
	}
	return ParseAlleleCount(ad)
}
