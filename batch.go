package krypt

/*
batch.go implements concurrent batch decode/encode helpers exercising
the concurrency guarantee in spec.md §5: "distinct Value trees rooted
on distinct goroutines are safe to decode/encode concurrently; a
single Value tree is not safe for concurrent mutation." Grounded on
solidcoredata-dca's internal/start/start.go, which fans work out across
an errgroup.Group and collects the first error.
*/

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DecodeAll decodes each element of srcs concurrently, one goroutine
// per source, returning results in input order. The first decode
// error cancels the remaining goroutines' context and is returned;
// partially-decoded results for goroutines still in flight are
// discarded.
func DecodeAll(ctx context.Context, srcs []Readable, opts ...DecodeOption) ([]*Value, error) {
	out := make([]*Value, len(srcs))
	group, gctx := errgroup.WithContext(ctx)
	for i, src := range srcs {
		i, src := i, src
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := Decode(src, opts...)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeAll encodes each element of vs concurrently, one goroutine per
// Value tree, returning the rendered bytes in input order. Distinct
// Value trees may be encoded concurrently; passing the same tree twice
// is a caller error (spec.md §5).
func EncodeAll(ctx context.Context, vs []*Value, opts ...EncodeOption) ([][]byte, error) {
	out := make([][]byte, len(vs))
	group, _ := errgroup.WithContext(ctx)
	for i, v := range vs {
		i, v := i, v
		group.Go(func() error {
			b, err := ToBytes(v, opts...)
			if err != nil {
				return err
			}
			out[i] = b
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
