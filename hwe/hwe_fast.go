package hwe

import "github.com/BenLubar/memoize"

var memoizedExact = memoize.Memoize(Exact)
var memoizedApproximate = memoize.Memoize(Approximate)

// Fast uses the chi square approximation, and only pays for the exact test
// when the approximate P value is below cutoff. Panels are small and the same
// count triples recur across sites, so both are memoized.
func Fast(AA, Aa, aa, cutoff float64) (p float64) {
	p = memoizedApproximate.(func(float64, float64, float64) float64)(AA, Aa, aa)

	if p < cutoff {
		return memoizedExact.(func(int64, int64, int64) float64)(int64(AA), int64(Aa), int64(aa))
	}

	return p
}
