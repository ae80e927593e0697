// Package resample converts irregular multi-symbol tick or bar series
// into fixed-granularity OHLC(V) bars under calendar-time or event-count
// windows. One call is one stateless batch transform: partition by
// symbol, bucket, aggregate, repair calendar gaps, merge.
package resample

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"barflow/internal/model"
)

// Options configures one resampling call.
type Options struct {
	// Resolution is the bucketing policy string, e.g. "3K", "500V",
	// "30S", "1T", "4H", "1D", "1W". Required.
	Resolution string
	// TZ is the output timezone. Nil inherits the input zone.
	TZ *time.Location
	// FFill forward-fills synthetic OHLC rows created by calendar
	// resampling with the previous close.
	FFill bool
	// DropNA removes rows still missing close after gap repair.
	DropNA bool
}

// DefaultOptions returns Options for a resolution with the default
// policies: forward-fill on, drop-null off.
func DefaultOptions(resolution string) Options {
	return Options{Resolution: resolution, FFill: true}
}

// Resample runs the whole pipeline over a bounded dataset and returns the
// merged, deterministically ordered bars. Zero rows in means zero bars
// out, never an error. Any per-symbol failure aborts the whole call with
// the symbol named; no partial output is returned.
func Resample(ds model.Dataset, opts Options) ([]model.Bar, error) {
	res, err := ParseResolution(opts.Resolution)
	if err != nil {
		return nil, err
	}
	if err := checkSchema(ds, res); err != nil {
		return nil, err
	}
	if len(ds.Rows) == 0 {
		return []model.Bar{}, nil
	}

	parts := partition(ds.Rows)
	results := make([][]model.Bar, len(parts))

	var g errgroup.Group
	for i, part := range parts {
		i, part := i, part
		g.Go(func() error {
			bars, err := resampleSymbol(ds.Kind, part, res, opts)
			if err != nil {
				return fmt.Errorf("symbol %s: %w", part.symbol, err)
			}
			results[i] = bars
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeResults(results, outputZone(opts.TZ, ds.Rows)), nil
}

// checkSchema verifies the dataset carries the columns the selected mode
// reads, before any bucketing begins.
func checkSchema(ds model.Dataset, res Resolution) error {
	mode := res.Unit.String()
	if ds.PriceCol == "" {
		return &SchemaError{Column: ds.Kind.PriceColumn(), Mode: mode}
	}
	if res.Unit == UnitVolume && ds.SizeCol == "" {
		return &SchemaError{Column: ds.Kind.SizeColumn(), Mode: mode}
	}
	return nil
}

// resampleSymbol runs the single-symbol pipeline: bucketize, aggregate,
// gap-repair (time path), completeness-filter (count path), and stamp the
// captured metadata onto every bar.
func resampleSymbol(kind model.Kind, part series, res Resolution, opts Options) ([]model.Bar, error) {
	var bars []model.Bar
	switch res.Unit {
	case UnitTicks:
		bars = aggregateCount(kind, part.rows, tickBuckets(len(part.rows), res.Period))
		bars = filterIncomplete(bars, model.IsOption(part.symbol, part.assetClass))
	case UnitVolume:
		bars = aggregateCount(kind, part.rows, volumeBuckets(kind, part.rows, res.Period))
		bars = filterIncomplete(bars, model.IsOption(part.symbol, part.assetClass))
	default:
		bars = aggregateTime(kind, part.rows, res)
		bars = fillGaps(bars, res, opts.FFill, opts.DropNA)
	}
	for i := range bars {
		bars[i].Symbol = part.symbol
		bars[i].SymbolGroup = part.symbolGroup
		bars[i].AssetClass = part.assetClass
	}
	return bars, nil
}
