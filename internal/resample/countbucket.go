package resample

import (
	"math"

	"barflow/internal/model"
)

// bucket is an immutable accumulation window handed to the aggregator.
// start is the timestamp of the first contributing row for count buckets
// and the aligned boundary for time buckets.
type bucket struct {
	start int // index of first row
	end   int // one past last row
}

// tickBuckets slices rows into windows of exactly period rows; the final
// window may be partial. The first row always opens bucket 0.
func tickBuckets(n, period int) []bucket {
	var out []bucket
	for i := 0; i < n; i += period {
		end := i + period
		if end > n {
			end = n
		}
		out = append(out, bucket{start: i, end: end})
	}
	return out
}

// volumeBuckets groups rows by cumulative size: a row belongs to bucket
// floor(cum_before/period), so bucket n covers the cumulative-volume range
// [n*period, (n+1)*period) and the row whose size reaches a multiple of
// period closes the bucket it started in. Rows with a missing size stay in
// the current bucket without advancing the sum, like the volume reduction.
func volumeBuckets(kind model.Kind, rows []model.Row, period int) []bucket {
	var out []bucket
	var cum float64
	prev := -1
	for i, r := range rows {
		id := int(cum) / period
		if id != prev {
			out = append(out, bucket{start: i, end: i})
			prev = id
		}
		out[len(out)-1].end = i + 1
		if s := kind.Size(r); !math.IsNaN(s) {
			cum += s
		}
	}
	return out
}

// filterIncomplete applies the post-aggregation completeness rule for
// count-based buckets: option and future-option symbols drop any bar with
// a missing column, auxiliary ones included; everything else drops a bar
// only when a core OHLC or volume column is missing.
func filterIncomplete(bars []model.Bar, isOption bool) []model.Bar {
	out := bars[:0]
	for _, b := range bars {
		if !b.HasOHLC() {
			continue
		}
		if isOption && !b.Opt.Complete() {
			continue
		}
		out = append(out, b)
	}
	return out
}
