// Package hwe tests whether a site's genotype calls across a cohort are
// consistent with Hardy-Weinberg equilibrium. Fingerprint panel sites far from
// equilibrium usually indicate allele-specific dropout or a mis-specified site,
// and weaken identity calls made with them.
package hwe

// Counts tallies the called genotypes at one site. No-calls are not counted.
type Counts struct {
	HomA int64 // AA
	Het  int64 // AB
	HomB int64 // BB
}

// N is the number of called samples.
func (c Counts) N() int64 {
	return c.HomA + c.Het + c.HomB
}

// MinorAlleleFrequency is computed from allele counts, not sample counts.
func (c Counts) MinorAlleleFrequency() float64 {
	n := c.N()
	if n == 0 {
		return 0
	}
	a := float64(2*c.HomA + c.Het)
	b := float64(2*c.HomB + c.Het)
	if b < a {
		return b / float64(2*n)
	}
	return a / float64(2*n)
}

// Exact is the exact HWE P-value of the counts. See Exact.
func (c Counts) Exact() float64 {
	return Exact(c.HomA, c.Het, c.HomB)
}

// Fast is the chi square P-value, replaced by the exact P-value when it falls
// below cutoff. See Fast. Monomorphic sites are at equilibrium.
func (c Counts) Fast(cutoff float64) float64 {
	if c.MinorAlleleFrequency() == 0 {
		return 1
	}
	return Fast(float64(c.HomA), float64(c.Het), float64(c.HomB), cutoff)
}
