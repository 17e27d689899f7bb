package cmd

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/fredctl/filter"
	"github.com/s0up4200/fredctl/fred"
)

// seriesObservation is an observation tagged with the series it belongs to
type seriesObservation struct {
	SeriesID         string `json:"series_id" yaml:"series_id"`
	fred.Observation `yaml:",inline"`
}

func seriesObservationEnv(o seriesObservation) filter.Env {
	env := filter.ObservationEnv(o.Observation)
	env["series_id"] = o.SeriesID
	return env
}

// fetchAll runs fetch for every id with at most limit requests in flight.
// Results keep the order of ids; the first failure cancels the rest.
func fetchAll[T any](ctx context.Context, ids []string, limit int, fetch func(context.Context, string) (T, error)) ([]T, error) {
	results := make([]T, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i, id := range ids {
		g.Go(func() error {
			res, err := fetch(ctx, id)
			if err != nil {
				return fmt.Errorf("series %s: %w", id, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
