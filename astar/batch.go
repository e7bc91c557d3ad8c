package astar

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Query is one start/goal pair for ComputeAll.
type Query struct {
	Start *Node
	Goal  *Node
}

// ComputeAll runs ComputeShared for every query, at most Options.Workers at
// a time, and returns the paths in query order. A nil entry means that goal
// was unreachable.
//
// The graph must not be mutated while ComputeAll runs. Cancelling ctx stops
// queries that have not started yet; a single search is never interrupted.
// The first failing query cancels the rest and its error is returned, wrapped
// with the query index.
func ComputeAll(ctx context.Context, queries []Query, opts ...Option) ([][]*Node, error) {
	cfg := buildOptions(opts)
	paths := make([][]*Node, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, q := range queries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, err := search(q.Start, q.Goal, make(sideTable), cfg)
			if err != nil {
				return fmt.Errorf("astar: query %d: %w", i, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}
