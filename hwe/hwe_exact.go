package hwe

import (
	"math"
	"math/big"

	"github.com/BenLubar/memoize"
)

var memoizedExactFor = memoize.Memoize(exactFor)
var memoizedFactorial = memoize.Memoize(factorial)

// Exact computes an exact Hardy-Weinberg equilibrium P-value (Wigginton,
// Cutler and Abecasis 2005), summing the probabilities of every heterozygote
// count at least as extreme as the observed one. Safe for concurrent use.
func Exact(AA, Aa, aa int64) (p float64) {
	if AA+Aa+aa == 0 {
		return 1
	}

	// Enforce AA common, aa rare
	if aa > AA {
		AA, aa = aa, AA
	}

	// Probability of the observed configuration
	baseP := memoizedExactFor.(func(int64, int64, int64) float64)(AA, Aa, aa)

	sumP := baseP
	origAA, origAa, origaa := AA, Aa, aa

	// More heterozygotes
	for i := 0; ; i, Aa, AA, aa = i+1, Aa+2, AA-1, aa-1 {
		if aa < 0 {
			break
		}

		if i == 0 {
			continue
		}

		newest := memoizedExactFor.(func(int64, int64, int64) float64)(AA, Aa, aa)

		if newest > baseP {
			continue
		}

		if newest <= math.SmallestNonzeroFloat64 {
			break
		}

		sumP += newest
	}

	// Fewer heterozygotes
	AA, Aa, aa = origAA, origAa, origaa
	for i := 0; ; i, Aa, AA, aa = i+1, Aa-2, AA+1, aa+1 {
		if Aa < 0 {
			break
		}

		if i == 0 {
			continue
		}

		newest := memoizedExactFor.(func(int64, int64, int64) float64)(AA, Aa, aa)

		if newest > baseP {
			continue
		}

		if newest <= math.SmallestNonzeroFloat64 {
			break
		}

		sumP += newest
	}

	return sumP
}

// exactFor yields the probability of observing exactly Aa heterozygotes in a
// sample of AA+Aa+aa individuals with Aa+2*aa minor alleles.
func exactFor(AA, Aa, aa int64) (p float64) {
	A := AA*2 + Aa
	a := aa*2 + Aa
	N := AA + Aa + aa

	nAa := big.NewInt(Aa)
	var denom, nexp big.Int

	// 2^Aa * A! * a!
	nexp.Exp(big.NewInt(2), nAa, nil)
	nexp.Mul(&nexp, memoizedFactorial.(func(int64, int64) *big.Int)(1, A))
	nexp.Mul(&nexp, memoizedFactorial.(func(int64, int64) *big.Int)(1, a))

	// (2N)!/N! * AA! * Aa! * aa!
	denom.Add(&denom, memoizedFactorial.(func(int64, int64) *big.Int)(N+1, 2*N))
	denom.Mul(&denom, memoizedFactorial.(func(int64, int64) *big.Int)(1, AA))
	denom.Mul(&denom, memoizedFactorial.(func(int64, int64) *big.Int)(1, Aa))
	denom.Mul(&denom, memoizedFactorial.(func(int64, int64) *big.Int)(1, aa))

	var ratNum, ratDenom big.Rat
	ratNum.SetInt(&nexp)
	ratDenom.SetInt(&denom)
	final, _ := new(big.Rat).Quo(&ratNum, &ratDenom).Float64()

	return final
}

func factorial(a, b int64) *big.Int {
	return big.NewInt(1).MulRange(a, b)
}
