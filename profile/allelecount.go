package profile

import (
	"fmt"
	"strconv"
	"strings"
)

// AlleleCount is the read support for the two alleles at one site in one
// sample.
type AlleleCount struct {
	A int
	B int
}

func (a AlleleCount) String() string {
	return strconv.Itoa(a.A) + "," + strconv.Itoa(a.B)
}

// ParseAlleleCount parses the "<countA>,<countB>" cell format. Both values must
// be non-negative integers with no surrounding whitespace.
func ParseAlleleCount(cell string) (AlleleCount, error) {
	parts := strings.Split(cell, ",")
	if len(parts) != 2 {
		return AlleleCount{}, fmt.Errorf("allele count %q: expected two comma-separated values", cell)
	}

	a, err := parseCount(parts[0])
	if err != nil {
		return AlleleCount{}, fmt.Errorf("allele count %q: %w", cell, err)
	}
	b, err := parseCount(parts[1])
	if err != nil {
		return AlleleCount{}, fmt.Errorf("allele count %q: %w", cell, err)
	}

	return AlleleCount{A: a, B: b}, nil
}

func parseCount(s string) (int, error) {
	// strconv.Atoi accepts a leading sign, which a read count never has
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, fmt.Errorf("%q is not a non-negative integer", s)
	}
	return strconv.Atoi(s)
}
