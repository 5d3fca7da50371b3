package identity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/carbocation/sampleidentity/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEachPairVisitsEveryPairOnce(t *testing.T) {
	for n := 0; n <= 9; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("S%d", i)
		}

		seen := make(map[[2]string]int)
		calls := 0
		require.NoError(t, ForEachPair(names, func(p Pair) error {
			calls++
			assert.NotEqual(t, p.I, p.J)
			a, b := names[p.I], names[p.J]
			if b < a {
				a, b = b, a
			}
			seen[[2]string{a, b}]++
			return nil
		}))

		assert.Equal(t, n*(n-1)/2, calls, "n=%d", n)
		assert.Equal(t, PairCount(n), calls, "n=%d", n)
		for pair, count := range seen {
			assert.Equal(t, 1, count, "%v", pair)
		}
	}
}

func TestForEachPairSkipsCaseInsensitiveDuplicates(t *testing.T) {
	var pairs []Pair
	require.NoError(t, ForEachPair([]string{"a", "A", "b"}, func(p Pair) error {
		pairs = append(pairs, p)
		return nil
	}))
	assert.Equal(t, []Pair{{0, 2}, {1, 2}}, pairs)
}

func TestForEachPairStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := ForEachPair([]string{"a", "b", "c", "d"}, func(Pair) error {
		calls++
		if calls == 2 {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 2, calls)
}

func buildTable(t *testing.T) *profile.Table {
	t.Helper()

	hom := profile.AlleleCount{A: 40, B: 0}
	alt := profile.AlleleCount{A: 0, B: 40}
	het := profile.AlleleCount{A: 20, B: 20}

	base := []profile.AlleleCount{hom, het, alt, hom, het, alt, hom, het, hom, alt}
	other := []profile.AlleleCount{alt, hom, het, alt, hom, het, alt, alt, het, hom}

	table := profile.NewTable()
	require.NoError(t, table.Add("donor1_a", base))
	require.NoError(t, table.Add("donor2", other))
	require.NoError(t, table.Add("donor1_b", base))
	require.NoError(t, table.Add("donor3", repeat(profile.AlleleCount{}, len(base))))
	require.NoError(t, table.Add("donor2_rerun", other))
	require.NoError(t, table.Add("donor4", repeat(het, len(base))))

	return table
}

func TestRunParallelMatchesSerialOrder(t *testing.T) {
	table := buildTable(t)
	p := DefaultParams()

	var serial, parallel []Verdict
	require.NoError(t, p.Run(context.Background(), table, 1, func(v Verdict) error {
		serial = append(serial, v)
		return nil
	}))
	require.NoError(t, p.Run(context.Background(), table, 4, func(v Verdict) error {
		parallel = append(parallel, v)
		return nil
	}))

	assert.Len(t, serial, PairCount(table.Len()))
	assert.Equal(t, serial, parallel)
}

func TestMatches(t *testing.T) {
	table := buildTable(t)

	matches, err := DefaultParams().Matches(context.Background(), table, 3)
	require.NoError(t, err)

	got := make(map[string]Status)
	for _, v := range matches {
		got[v.Sample1+"/"+v.Sample2] = v.Status
	}

	assert.Equal(t, StatusLikelyMatch, got["donor1_a/donor1_b"])
	assert.Equal(t, StatusLikelyMatch, got["donor2/donor2_rerun"])
	assert.NotContains(t, got, "donor1_a/donor2")
	assert.NotContains(t, got, "donor1_a/donor4")
}

func TestRunNeverSeesRaggedProfiles(t *testing.T) {
	table := profile.NewTable()
	require.NoError(t, table.Add("X", repeat(profile.AlleleCount{A: 1}, 3)))
	require.NoError(t, table.Add("Z", repeat(profile.AlleleCount{A: 1}, 3)))

	err := table.Add("Y", repeat(profile.AlleleCount{A: 1}, 2))
	require.True(t, errors.Is(err, profile.ErrSiteCount))

	for _, threads := range []int{1, 2} {
		calls := 0
		err := DefaultParams().Run(context.Background(), table, threads, func(Verdict) error {
			calls++
			return nil
		})
		require.NoError(t, err, "threads=%d", threads)
		assert.Equal(t, 1, calls, "threads=%d", threads)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, threads := range []int{1, 4} {
		err := DefaultParams().Run(ctx, buildTable(t), threads, func(Verdict) error { return nil })
		assert.ErrorIs(t, err, context.Canceled, "threads=%d", threads)
	}
}

func TestBatchSize(t *testing.T) {
	assert.Equal(t, 4*pairsPerWorker, batchSize(4, 1_000_000))
	assert.Equal(t, 15, batchSize(4, 15))
	assert.Equal(t, 15, batchSize(math.MaxInt, 15))
	assert.Equal(t, 1, batchSize(8, 0))
}

func TestRunWithHugeThreadCount(t *testing.T) {
	table := buildTable(t)
	p := DefaultParams()

	var serial, parallel []Verdict
	require.NoError(t, p.Run(context.Background(), table, 1, func(v Verdict) error {
		serial = append(serial, v)
		return nil
	}))
	require.NoError(t, p.Run(context.Background(), table, math.MaxInt32, func(v Verdict) error {
		parallel = append(parallel, v)
		return nil
	}))

	assert.Equal(t, serial, parallel)
}

func TestRunRejectsInvalidParams(t *testing.T) {
	p := DefaultParams()
	p.HetBalance = 0
	err := p.Run(context.Background(), buildTable(t), 1, func(Verdict) error { return nil })
	assert.Error(t, err)
}
