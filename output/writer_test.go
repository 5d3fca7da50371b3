package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/carbocation/sampleidentity/identity"
	"github.com/carbocation/sampleidentity/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVerdicts() []identity.Verdict {
	return []identity.Verdict{
		{
			Sample1: "S1", Sample2: "S2", Sites: 3,
			MismatchCount: 2, ErrorBudget: 4, TotalCoverage1: 150, TotalCoverage2: 160,
			DiscordantSites:   []int{2},
			LogLikelihoodSame: -9, LogLikelihoodDiff: -1.5,
			Ratio: 6, RatioDefined: true,
			Status: identity.StatusLikelyMatch,
		},
		{
			Sample1: "S3", Sample2: "S4", Sites: 3,
			Status: identity.StatusIndeterminate,
		},
	}
}

func TestTSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := New(FormatTSV, &buf, nil)
	require.NoError(t, err)

	for _, v := range sampleVerdicts() {
		require.NoError(t, w.Write(v))
	}
	require.NoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Sample1Name\tSample2Name\tNoReads_Delta\tNoReads_possibleError\tSample1_total_coverage\tSample2_total_coverage\tFingerprintStatus\tLogLikelihood_S1\tLogLikelihood_S0\tRatio\tDiscordantSites", lines[0])
	assert.Equal(t, "S1\tS2\t2\t4\t150\t160\tLikely Match\t-9\t-1.5\t6\t2", lines[1])
	assert.Equal(t, "S3\tS4\t0\t0\t0\t0\tIndeterminate\t0\t0\tNA\tNA", lines[2])
}

func TestTSVWriterEmptyStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewTSVWriter(&buf, nil)
	require.NoError(t, w.Close())

	assert.True(t, strings.HasPrefix(buf.String(), "Sample1Name\t"))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestJSONLWriter(t *testing.T) {
	manifest, err := panel.Read(strings.NewReader("1 rs1 0 10 A G\n1 rs2 0 20 C T\n1 rs3 0 30 G A\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	w, err := New(FormatJSONL, &buf, manifest)
	require.NoError(t, err)
	for _, v := range sampleVerdicts() {
		require.NoError(t, w.Write(v))
	}
	require.NoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "Likely Match", first["status"])
	assert.Equal(t, 6.0, first["ratio"])
	assert.Equal(t, []interface{}{"rs2"}, first["discordant_sites"])
	assert.Nil(t, second["ratio"])
	assert.Equal(t, "Indeterminate", second["status"])
}

func TestUnknownFormat(t *testing.T) {
	_, err := New("xml", &bytes.Buffer{}, nil)
	assert.Error(t, err)
}

func TestBigQueryRow(t *testing.T) {
	vs := sampleVerdicts()

	row := toBigQueryRow(vs[0], nil)
	assert.True(t, row.Ratio.Valid)
	assert.Equal(t, 6.0, row.Ratio.Float64)
	assert.Equal(t, []string{"2"}, row.DiscordantSites)

	row = toBigQueryRow(vs[1], nil)
	assert.False(t, row.Ratio.Valid)

	_, err := NewBigQueryWriter(context.Background(), nil, "no_dot", nil)
	assert.Error(t, err)
}

func TestMulti(t *testing.T) {
	var a, b bytes.Buffer
	m := Multi{NewTSVWriter(&a, nil), NewJSONLWriter(&b, nil)}
	require.NoError(t, m.Write(sampleVerdicts()[0]))
	require.NoError(t, m.Close())

	assert.Contains(t, a.String(), "Likely Match")
	assert.Contains(t, b.String(), "Likely Match")
}
