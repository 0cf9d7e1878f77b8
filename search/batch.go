package search

import (
	"context"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/slideworks/atomix/grid"
)

// Job is one puzzle submitted to SolveAll.
type Job struct {
	Name   string
	Grid   *grid.Grid
	Start  grid.Configuration
	Target grid.Configuration
}

// JobResult pairs a job with its outcome. Exactly one of Result and Err is set.
type JobResult struct {
	Job    Job
	Result *Result
	Err    error
}

// SolveAll runs every job on a pool of workers, each with its own Solver.
// Results are returned in job order. workers <= 0 means runtime.NumCPU().
// Cancelling ctx stops running searches; jobs not yet started report ctx.Err().
func SolveAll(ctx context.Context, jobs []Job, workers int) []JobResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]JobResult, len(jobs))
	workQueue := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := range workQueue {
				job := jobs[i]
				results[i].Job = job
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				log.Debug().Int("worker", worker).Str("job", job.Name).Msg("solving")
				r, err := NewSolver(job.Grid, job.Start, job.Target).SolveContext(ctx)
				results[i].Result = r
				results[i].Err = err
			}
		}(w)
	}

	for i := range jobs {
		workQueue <- i
	}
	close(workQueue)
	wg.Wait()
	return results
}
