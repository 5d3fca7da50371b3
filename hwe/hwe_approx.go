package hwe

import (
	"math"

	"github.com/tokenme/probab/dst"
)

// Approximate is the 1 degree of freedom chi square P-value for the observed
// genotype counts. A panic inside the CDF (degenerate input) yields 0.
func Approximate(AA, Aa, aa float64) (p float64) {
	defer func() { recover() }()

	p = 1.0 - dst.ChiSquareCDF(1)(chiSquare(AA, Aa, aa))

	return
}

// chiSquare compares the observed genotype counts with those expected from the
// observed allele frequencies.
func chiSquare(AA, Aa, aa float64) float64 {
	A := AA*2 + Aa
	a := aa*2 + Aa

	// A monomorphic site is trivially at equilibrium. Chi square 0 gives P=1
	// instead of NaN.
	if A == 0 || a == 0 {
		return 0.0
	}

	N := AA + Aa + aa
	alleles := A + a

	major := A / alleles
	minor := a / alleles

	eAA := major * major * N
	eAa := 2.0 * major * minor * N
	eaa := minor * minor * N

	return math.Pow(eAA-AA, 2)/eAA +
		math.Pow(eAa-Aa, 2)/eAa +
		math.Pow(eaa-aa, 2)/eaa
}
