package identity

import (
	"github.com/carbocation/sampleidentity/profile"
)

// Compare evaluates two samples with the default policy.
func Compare(name1 string, sites1 []profile.AlleleCount, name2 string, sites2 []profile.AlleleCount) (Verdict, error) {
	return DefaultParams().Compare(name1, sites1, name2, sites2)
}

// Compare accumulates the same-source and different-source log-likelihoods of
// two samples site by site and applies both decision criteria: the number of
// discordant reads must fit in the error budget, and the log-likelihood ratio
// must exceed the threshold. The result is symmetric in its two samples.
func (p Params) Compare(name1 string, sites1 []profile.AlleleCount, name2 string, sites2 []profile.AlleleCount) (Verdict, error) {
	if len(sites1) != len(sites2) {
		return Verdict{}, &SiteCountMismatchError{
			Sample1: name1,
			Sample2: name2,
			Sites1:  len(sites1),
			Sites2:  len(sites2),
		}
	}

	v := Verdict{
		Sample1: name1,
		Sample2: name2,
		Sites:   len(sites1),
	}

	for i := range sites1 {
		c1, c2 := sites1[i], sites2[i]

		g1, g2 := GenotypeOf(c1), GenotypeOf(c2)
		cov1, cov2 := Coverage(c1), Coverage(c2)
		v.TotalCoverage1 += cov1
		v.TotalCoverage2 += cov2

		if g1.Equal(g2) {
			v.LogLikelihoodSame += p.logLikelihood(g1, cov1+cov2, CombinedAlleleProbability(c1, c2))
			continue
		}

		p1, p2 := AlleleProbability(c1), AlleleProbability(c2)

		// Sides are summed before accumulating so that a swapped comparison
		// gives bit-identical totals.
		var side1, side2 float64
		switch {
		case g1.IsNoCall() || g2.IsNoCall():
			// Only the covered side carries evidence
			if cov1 > 0 {
				v.MismatchCount += g1.Alleles()
				side1 = p.logLikelihood(g1, cov1, p1)
			}
			if cov2 > 0 {
				v.MismatchCount += g2.Alleles()
				side2 = p.logLikelihood(g2, cov2, p2)
			}
		case g1.Alleles() == g2.Alleles():
			// Opposite homozygotes
			v.MismatchCount += 2
			side1 = p.HomLogLikelihood(cov1, p1)
			side2 = p.HomLogLikelihood(cov2, p2)
		default:
			// One heterozygote, one homozygote
			v.MismatchCount++
			side1 = p.logLikelihood(g1, cov1, p1)
			side2 = p.logLikelihood(g2, cov2, p2)
		}

		v.LogLikelihoodDiff += side1 + side2
		v.DiscordantSites = append(v.DiscordantSites, i+1)
	}

	v.ErrorBudget = p.ErrorBudget(v.TotalCoverage1, v.TotalCoverage2)
	v.Status = p.decide(&v)

	return v, nil
}

// decide sets the ratio and returns the status. With no different-source
// evidence the ratio is undefined: a pair without a single read is
// Indeterminate, while a pair with only concordant evidence passes the
// statistical test. The latter is intentional and must not be folded into
// Indeterminate, or two identical samples could never match.
func (p Params) decide(v *Verdict) Status {
	var likelihoodPasses bool

	switch {
	case v.LogLikelihoodDiff != 0:
		v.Ratio = v.LogLikelihoodSame / v.LogLikelihoodDiff
		v.RatioDefined = true
		likelihoodPasses = v.Ratio > p.RatioThreshold
	case v.TotalCoverage1+v.TotalCoverage2 == 0:
		return StatusIndeterminate
	case v.LogLikelihoodSame < 0:
		likelihoodPasses = true
	}

	if v.MismatchCount <= v.ErrorBudget && likelihoodPasses {
		return StatusLikelyMatch
	}

	return StatusNone
}
