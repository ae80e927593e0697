package resample

import (
	"time"

	"barflow/internal/model"
)

// epochMonday is the first Monday of the Unix epoch (1970-01-05), the
// anchor for week-aligned buckets.
var epochMonday = time.Date(1970, 1, 5, 0, 0, 0, 0, time.UTC)

// bucketStart returns the aligned calendar interval containing t. Alignment
// is to absolute epoch boundaries in UTC, not to the first row; weeks
// align to Monday 00:00 UTC.
func bucketStart(t time.Time, res Resolution) time.Time {
	u := t.UTC()
	if res.Unit == UnitWeeks {
		span := res.Duration()
		off := u.Sub(epochMonday) % span
		if off < 0 {
			off += span
		}
		return u.Add(-off)
	}
	return u.Truncate(res.Duration())
}

// timeBucket pairs an aligned boundary with its contributing row window.
type timeBucket struct {
	start time.Time
	bucket
}

// timeBuckets walks the ordered per-symbol rows and cuts a new bucket at
// every aligned boundary change. Buckets with no contributing rows are not
// emitted here; gap repair synthesizes them afterwards.
func timeBuckets(rows []model.Row, res Resolution) []timeBucket {
	var out []timeBucket
	for i, r := range rows {
		key := bucketStart(r.Timestamp, res)
		if n := len(out); n > 0 && out[n-1].start.Equal(key) {
			out[n-1].end = i + 1
			continue
		}
		out = append(out, timeBucket{start: key, bucket: bucket{start: i, end: i + 1}})
	}
	return out
}

// aggregateTime reduces each time bucket to a bar. Sub-minute resolutions
// keep the legacy split path: OHLC is computed from the raw price column
// alone, independent of the volume and auxiliary reduction, and the two
// halves are merged.
func aggregateTime(kind model.Kind, rows []model.Row, res Resolution) []model.Bar {
	tbs := timeBuckets(rows, res)
	bars := make([]model.Bar, 0, len(tbs))
	for _, tb := range tbs {
		window := rows[tb.bucket.start:tb.bucket.end]
		var b model.Bar
		switch {
		case res.Unit == UnitSeconds:
			b = aggregateAux(kind, window)
			b.Open, b.High, b.Low, b.Close = reducePrice(kind, window)
		case kind == model.KindBar:
			b = aggregateBarWindow(window)
		default:
			b = aggregateTicks(kind, window)
		}
		b.Start = tb.start
		bars = append(bars, b)
	}
	return bars
}
