package panel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBIM = `1	rs123	0	1000	A	G
1	.	0	2000	C	T

2	rs456	0	3000	G	A
`

func TestRead(t *testing.T) {
	m, err := Read(strings.NewReader(testBIM))
	require.NoError(t, err)

	require.Equal(t, 3, m.Len())
	assert.Equal(t, Site{Chromosome: "1", Coordinate: 1000, VariantID: "rs123", Allele1: "A", Allele2: "G"}, m.Sites[0])

	assert.Equal(t, "rs123", m.Label(1))
	assert.Equal(t, "1:2000", m.Label(2))
	assert.Equal(t, "rs456", m.Label(3))
	assert.Equal(t, "4", m.Label(4))

	assert.NoError(t, m.CheckSiteCount(3))
	assert.Error(t, m.CheckSiteCount(4))
}

func TestReadRejectsShortRows(t *testing.T) {
	_, err := Read(strings.NewReader("1\trs1\t0\t1000\tA\n"))
	assert.Error(t, err)

	_, err = Read(strings.NewReader("1\trs1\t0\tX\tA\tG\n"))
	assert.Error(t, err)
}
