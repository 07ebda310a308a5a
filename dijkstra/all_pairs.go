// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/causalctx/matrixgraph"
)

var tracer = otel.Tracer("github.com/katalvlaran/causalctx/dijkstra")

// AllPairs runs Dijkstra from every live vertex of g and returns the results
// keyed by source.
//
// Sources run concurrently under an errgroup, at most Options.Parallelism at a
// time (unbounded when ≤ 0). g is only read, so the caller must not mutate it
// until AllPairs returns. Cancelling ctx stops scheduling new sources and
// returns ctx.Err().
//
// Complexity: V independent runs of Dijkstra.
func AllPairs(ctx context.Context, g Graph, opts ...Option) (map[matrixgraph.NodeIndex]*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	sources := g.NodeIndices()
	ctx, span := tracer.Start(ctx, "dijkstra.AllPairs", trace.WithAttributes(
		attribute.Int("dijkstra.sources", len(sources)),
		attribute.Int("dijkstra.parallelism", cfg.Parallelism),
	))
	defer span.End()

	var mu sync.Mutex
	out := make(map[matrixgraph.NodeIndex]*Result, len(sources))

	eg, egCtx := errgroup.WithContext(ctx)
	if cfg.Parallelism > 0 {
		eg.SetLimit(cfg.Parallelism)
	}
	var src matrixgraph.NodeIndex
	for _, src = range sources {
		if egCtx.Err() != nil {
			break
		}
		src := src
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := run(g, src, cfg)
			if err != nil {
				return err
			}
			mu.Lock()
			out[src] = res
			mu.Unlock()

			return nil
		})
	}

	err := eg.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	return out, nil
}
