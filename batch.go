package polyclip

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one operation to run as part of a [Batch]: the four Boolean
// entry points and [Normalize] all have this shape once their operands
// are bound, e.g. func() (Solution, error) { return Union(a, b) }.
type Job func() (Solution, error)

// Batch runs independent jobs concurrently and returns their results
// in the same order they were given, or the first error encountered
// (the others are abandoned). This is purely an outer convenience: the
// engine itself stays single-threaded and synchronous per job; Batch
// just runs each independent job in its own goroutine.
func Batch(ctx context.Context, jobs []Job) ([]Solution, error) {
	results := make([]Solution, len(jobs))
	g, _ := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			solution, err := job()
			if err != nil {
				return err
			}
			results[i] = solution
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
