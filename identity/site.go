package identity

import (
	"math"
	"strings"

	"github.com/carbocation/sampleidentity/profile"
)

// Genotype is the call derived from a site's allele counts: "A", "B", "AB",
// or "N" when neither allele was observed.
type Genotype string

const (
	GenotypeA  Genotype = "A"
	GenotypeB  Genotype = "B"
	GenotypeAB Genotype = "AB"
	GenotypeN  Genotype = "N"
)

// Equal compares calls case-insensitively.
func (g Genotype) Equal(other Genotype) bool {
	return strings.EqualFold(string(g), string(other))
}

// IsHeterozygous is true for two-letter calls. N counts as homozygous.
func (g Genotype) IsHeterozygous() bool {
	return len(g) > 1
}

func (g Genotype) IsNoCall() bool {
	return g.Equal(GenotypeN)
}

// Alleles is the number of allele letters in the call.
func (g Genotype) Alleles() int {
	return len(g)
}

func Coverage(a profile.AlleleCount) int {
	return a.A + a.B
}

func GenotypeOf(a profile.AlleleCount) Genotype {
	switch {
	case a.A > 0 && a.B > 0:
		return GenotypeAB
	case a.A > 0:
		return GenotypeA
	case a.B > 0:
		return GenotypeB
	}
	return GenotypeN
}

// AlleleProbability is the heterozygous draw probability 2*maf*(1-maf), with
// the minor allele frequency estimated from the site's own reads. Sites where
// one allele is unobserved are uninformative and weigh 1.0, which keeps the
// logarithm finite.
func AlleleProbability(a profile.AlleleCount) float64 {
	if a.A <= 0 || a.B <= 0 {
		return 1.0
	}

	minor := a.A
	if a.B < minor {
		minor = a.B
	}
	maf := float64(minor) / float64(a.A+a.B)

	return 2 * maf * (1 - maf)
}

// CombinedAlleleProbability estimates the minor allele frequency from the
// pooled reads of both samples.
func CombinedAlleleProbability(a, b profile.AlleleCount) float64 {
	return AlleleProbability(profile.AlleleCount{A: a.A + b.A, B: a.B + b.B})
}

// HetLogLikelihood is the log-probability of coverage reads under the
// heterozygous allelic-balance model, weighted by the site probability.
func (p Params) HetLogLikelihood(coverage int, probability float64) float64 {
	return float64(coverage)*math.Log(p.HetBalance) + math.Log(probability)
}

// HomLogLikelihood is the homozygous counterpart of HetLogLikelihood, using the
// base-call accuracy.
func (p Params) HomLogLikelihood(coverage int, probability float64) float64 {
	return float64(coverage)*math.Log(p.BaseAccuracy) + math.Log(probability)
}

// logLikelihood picks the het or hom model by the call's zygosity.
func (p Params) logLikelihood(g Genotype, coverage int, probability float64) float64 {
	if g.IsHeterozygous() {
		return p.HetLogLikelihood(coverage, probability)
	}
	return p.HomLogLikelihood(coverage, probability)
}

// ErrorBudget is the number of discordant reads tolerated as sequencing or
// genotyping error for the two samples' total coverage.
func (p Params) ErrorBudget(totalCov1, totalCov2 int) int {
	return int(math.Ceil(float64(totalCov1)*p.ErrorRate)) + int(math.Ceil(float64(totalCov2)*p.ErrorRate))
}
