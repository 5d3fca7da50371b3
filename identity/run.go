package identity

import (
	"context"

	"github.com/carbocation/sampleidentity/profile"
	"golang.org/x/sync/errgroup"
)

// pairsPerWorker bounds how many finished comparisons are held in memory per
// worker while waiting to be emitted in order.
const pairsPerWorker = 256

// Run compares every pair of samples in table and passes each verdict,
// reported or not, to visit in enumeration order. With threads > 1 the
// comparisons are spread over that many goroutines; visit is still called from
// a single goroutine and in the same order as a serial run.
func (p Params) Run(ctx context.Context, table *profile.Table, threads int, visit func(Verdict) error) error {
	if err := p.Validate(); err != nil {
		return err
	}

	names := table.Names()

	compare := func(pair Pair) (Verdict, error) {
		return p.Compare(names[pair.I], table.SitesAt(pair.I), names[pair.J], table.SitesAt(pair.J))
	}

	if threads <= 1 {
		return ForEachPair(names, func(pair Pair) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := compare(pair)
			if err != nil {
				return err
			}
			return visit(v)
		})
	}

	batch := make([]Pair, 0, batchSize(threads, PairCount(len(names))))
	flush := func() error {
		results := make([]Verdict, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(threads)
		for k, pair := range batch {
			k, pair := k, pair
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				v, err := compare(pair)
				if err != nil {
					return err
				}
				results[k] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		batch = batch[:0]
		for _, v := range results {
			if err := visit(v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := ForEachPair(names, func(pair Pair) error {
		batch = append(batch, pair)
		if len(batch) == cap(batch) {
			return flush()
		}
		return nil
	}); err != nil {
		return err
	}

	return flush()
}

// batchSize is threads*pairsPerWorker, but never more than the number of pairs
// there are to compare, and at least 1.
func batchSize(threads, pairs int) int {
	size := pairs
	if threads <= pairs/pairsPerWorker {
		size = threads * pairsPerWorker
	}
	if size < 1 {
		size = 1
	}
	return size
}

// Matches returns the reported verdicts for every pair in table.
func (p Params) Matches(ctx context.Context, table *profile.Table, threads int) ([]Verdict, error) {
	out := make([]Verdict, 0)
	err := p.Run(ctx, table, threads, func(v Verdict) error {
		if v.Reported() {
			out = append(out, v)
		}
		return nil
	})
	return out, err
}
