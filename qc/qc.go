// Package qc summarizes a fingerprint panel across a cohort: how well each
// site is called and whether its calls look like real genotypes, and how
// deeply each sample was sequenced.
package qc

import (
	"github.com/carbocation/sampleidentity/hwe"
	"github.com/carbocation/sampleidentity/identity"
	"github.com/carbocation/sampleidentity/profile"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// DefaultHWECutoff is the P value below which the exact HWE test replaces the
// chi square approximation.
const DefaultHWECutoff = 0.05

type SiteSummary struct {
	Site         int // 1-based
	Calls        hwe.Counts
	NoCalls      int
	CallRate     float64
	MAF          float64
	HWEP         float64
	MeanCoverage float64
}

type SampleSummary struct {
	Name           string
	Sites          int
	Called         int
	TotalCoverage  int
	MeanCoverage   float64
	SDCoverage     float64
	MedianCoverage float64
}

// Sites tallies the genotype calls at every site across all samples.
func Sites(table *profile.Table, hweCutoff float64) []SiteSummary {
	out := make([]SiteSummary, table.SiteCount())

	for i := range out {
		summary := SiteSummary{Site: i + 1}
		coverage := 0

		for s := 0; s < table.Len(); s++ {
			ac := table.SitesAt(s)[i]
			coverage += identity.Coverage(ac)

			switch identity.GenotypeOf(ac) {
			case identity.GenotypeA:
				summary.Calls.HomA++
			case identity.GenotypeAB:
				summary.Calls.Het++
			case identity.GenotypeB:
				summary.Calls.HomB++
			default:
				summary.NoCalls++
			}
		}

		if table.Len() > 0 {
			summary.CallRate = float64(summary.Calls.N()) / float64(table.Len())
			summary.MeanCoverage = float64(coverage) / float64(table.Len())
		}
		summary.MAF = summary.Calls.MinorAlleleFrequency()
		summary.HWEP = summary.Calls.Fast(hweCutoff)

		out[i] = summary
	}

	return out
}

// Samples describes each sample's per-site coverage distribution.
func Samples(table *profile.Table) ([]SampleSummary, error) {
	out := make([]SampleSummary, table.Len())

	for s := range out {
		sites := table.SitesAt(s)
		depths := make([]float64, len(sites))

		summary := SampleSummary{Name: table.Name(s), Sites: len(sites)}
		for i, ac := range sites {
			cov := identity.Coverage(ac)
			depths[i] = float64(cov)
			summary.TotalCoverage += cov
			if cov > 0 {
				summary.Called++
			}
		}

		if len(depths) > 0 {
			summary.MeanCoverage, summary.SDCoverage = stat.MeanStdDev(depths, nil)

			median, err := stats.Median(depths)
			if err != nil {
				return nil, err
			}
			summary.MedianCoverage = median
		}

		out[s] = summary
	}

	return out, nil
}
