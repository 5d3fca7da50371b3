// Package panel reads the fingerprint panel's site manifest. The manifest is
// in PLINK BIM format, one row per site in the same order as the profile
// columns.
package panel

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/sampleidentity"
)

// Map columns in the BIM file to their positions
const (
	Chromosome int = iota
	VariantID
	Morgans
	Coordinate
	Allele1
	Allele2
)

type Site struct {
	Chromosome string
	Coordinate uint32 // Labeled "position" by most applications
	VariantID  string // E.g., RSID
	Allele1    string // Reported as allele A
	Allele2    string // Reported as allele B
}

// Manifest is the ordered list of panel sites. Site i of every profile refers
// to Sites[i-1].
type Manifest struct {
	Sites []Site
}

// Read parses a whitespace-delimited BIM stream. Blank lines are ignored.
func Read(r io.Reader) (*Manifest, error) {
	scanner := bufio.NewScanner(r)
	m := &Manifest{}

	line := 0
	for scanner.Scan() {
		line++
		cols := strings.Fields(scanner.Text())
		if len(cols) == 0 {
			continue
		}
		if len(cols) < Allele2+1 {
			return nil, fmt.Errorf("panel line %d: expected %d columns, found %d", line, Allele2+1, len(cols))
		}

		coord64, err := strconv.ParseUint(cols[Coordinate], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("panel line %d: %w", line, err)
		}

		m.Sites = append(m.Sites, Site{
			Chromosome: cols[Chromosome],
			Coordinate: uint32(coord64),
			VariantID:  cols[VariantID],
			Allele1:    cols[Allele1],
			Allele2:    cols[Allele2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return m, nil
}

// Open reads a manifest from a local or gs:// path, compressed or not.
func Open(ctx context.Context, path string, client *storage.Client) (*Manifest, error) {
	r, err := sampleidentity.Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	m, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Len is the number of sites.
func (m *Manifest) Len() int {
	return len(m.Sites)
}

// Label names a 1-based site. Sites without an ID ("." in BIM) are named by
// chromosome and position; indexes outside the manifest by their number.
func (m *Manifest) Label(site int) string {
	if site < 1 || site > len(m.Sites) {
		return strconv.Itoa(site)
	}
	s := m.Sites[site-1]
	if s.VariantID != "" && s.VariantID != "." {
		return s.VariantID
	}
	return s.Chromosome + ":" + strconv.FormatUint(uint64(s.Coordinate), 10)
}

// CheckSiteCount fails unless the manifest describes exactly sites sites.
func (m *Manifest) CheckSiteCount(sites int) error {
	if len(m.Sites) != sites {
		return fmt.Errorf("panel has %d sites but the profiles have %d", len(m.Sites), sites)
	}
	return nil
}
