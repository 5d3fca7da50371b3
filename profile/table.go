package profile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateSample = errors.New("duplicate sample name")
	ErrSiteCount       = errors.New("sample site count differs from the table's")
)

// Table maps sample names to their ordered per-site allele counts. A Table is
// built once by ingestion and is read-only afterwards, so it may be shared by
// concurrent readers. Sample names are compared case-insensitively, and samples
// are kept in the order they were added.
type Table struct {
	names []string
	sites [][]AlleleCount
	index map[string]int
}

func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Add appends a sample. It is only meant to be called while the table is being
// built; the sites slice is retained, not copied. Every sample must have as
// many sites as the first one added.
func (t *Table) Add(name string, sites []AlleleCount) error {
	if name == "" {
		return fmt.Errorf("empty sample name")
	}
	if len(t.sites) > 0 && len(sites) != len(t.sites[0]) {
		return fmt.Errorf("%w: %s has %d sites, expected %d", ErrSiteCount, name, len(sites), len(t.sites[0]))
	}
	key := strings.ToLower(name)
	if _, exists := t.index[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSample, name)
	}

	t.index[key] = len(t.names)
	t.names = append(t.names, name)
	t.sites = append(t.sites, sites)

	return nil
}

// Len is the number of samples.
func (t *Table) Len() int {
	return len(t.names)
}

// Names returns the sample names in insertion order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Name returns the i'th sample's name.
func (t *Table) Name(i int) string {
	return t.names[i]
}

// SitesAt returns the i'th sample's sites. Callers must not modify the slice.
func (t *Table) SitesAt(i int) []AlleleCount {
	return t.sites[i]
}

// Sites looks up a sample case-insensitively.
func (t *Table) Sites(name string) ([]AlleleCount, bool) {
	i, exists := t.index[strings.ToLower(name)]
	if !exists {
		return nil, false
	}
	return t.sites[i], true
}

// SiteCount is the number of sites of the first sample, or 0 for an empty
// table. Ingestion guarantees that every sample has this many.
func (t *Table) SiteCount() int {
	if len(t.sites) == 0 {
		return 0
	}
	return len(t.sites[0])
}
