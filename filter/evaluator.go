package filter

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*Evaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *Evaluator) {
		if workers > 0 {
			e.workerCount = workers
		}
	}
}

// WithBatchSize sets the batch size for chunked processing
func WithBatchSize(size int) EvaluatorOption {
	return func(e *Evaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// Evaluator evaluates a filter over record lists. Lists shorter than the
// batch size are evaluated sequentially; longer ones are split into chunks
// evaluated concurrently. Matches keep their input order either way.
type Evaluator struct {
	workerCount int
	batchSize   int
}

// NewEvaluator creates a new evaluator
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   500,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Apply returns the items of records matching f. envOf builds the
// expression environment for one record. The first evaluation error aborts
// the whole call.
func Apply[T any](ctx context.Context, e *Evaluator, f Filter, records []T, envOf func(T) Env) ([]T, error) {
	if f == nil {
		return records, nil
	}
	if len(records) == 0 {
		return []T{}, nil
	}

	// For small lists, don't bother with concurrency
	if len(records) < e.batchSize {
		return evaluateChunk(f, records, 0, envOf)
	}

	return evaluateConcurrent(ctx, e, f, records, envOf)
}

// evaluateChunk evaluates f over records; offset is the index of the first
// record in the full list, used in error reports.
func evaluateChunk[T any](f Filter, records []T, offset int, envOf func(T) Env) ([]T, error) {
	matches := make([]T, 0, len(records)/4)
	for i, r := range records {
		ok, err := f.Match(envOf(r))
		if err != nil {
			return nil, &EvaluationError{Expression: f.Expression(), Index: offset + i, Err: err}
		}
		if ok {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// evaluateConcurrent splits records into chunks and evaluates them with
// bounded concurrency
func evaluateConcurrent[T any](ctx context.Context, e *Evaluator, f Filter, records []T, envOf func(T) Env) ([]T, error) {
	chunkSize := max(len(records)/e.workerCount, e.batchSize)
	chunks := (len(records) + chunkSize - 1) / chunkSize
	results := make([][]T, chunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workerCount)

	for i := 0; i < chunks; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, len(records))

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			matches, err := evaluateChunk(f, records[start:end], start, envOf)
			if err != nil {
				return err
			}
			results[i] = matches
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]T, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
