package identity

import "strings"

// Pair indexes two samples of a table, I < J.
type Pair struct {
	I, J int
}

// PairCount is the number of unordered pairs among n distinct samples.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// ForEachPair visits every unordered pair of names exactly once, in the order
// (0,1), (0,2), ..., (1,2), ... Names equal under case folding are the same
// sample and are never paired. Iteration stops at the first error returned by
// visit.
func ForEachPair(names []string, visit func(Pair) error) error {
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if strings.EqualFold(names[i], names[j]) {
				continue
			}
			if err := visit(Pair{I: i, J: j}); err != nil {
				return err
			}
		}
	}
	return nil
}
