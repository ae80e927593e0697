package resample

import (
	"math"

	"barflow/internal/model"
)

// reducePrice computes first/max/min/last over the kind's price column.
func reducePrice(kind model.Kind, rows []model.Row) (open, high, low, last float64) {
	open = kind.Price(rows[0])
	high = open
	low = open
	last = open
	for _, r := range rows[1:] {
		p := kind.Price(r)
		if p > high {
			high = p
		}
		if p < low {
			low = p
		}
		last = p
	}
	return open, high, low, last
}

// aggregateAux sums the size column into volume and keeps the last
// non-missing value of every auxiliary column.
func aggregateAux(kind model.Kind, rows []model.Row) model.Bar {
	var sum float64
	opt := model.EmptyOptionFields()
	for _, r := range rows {
		if s := kind.Size(r); !math.IsNaN(s) {
			sum += s
		}
		opt.Merge(r.Opt)
	}
	return model.Bar{Volume: int64(sum), Opt: opt}
}

// aggregateTicks reduces a tick (or single-price-column) window:
// open=first, high=max, low=min, close=last of the price column, volume
// summed from the size column, auxiliary columns last-non-missing.
func aggregateTicks(kind model.Kind, rows []model.Row) model.Bar {
	b := aggregateAux(kind, rows)
	b.Open, b.High, b.Low, b.Close = reducePrice(kind, rows)
	return b
}

// aggregateBarWindow reduces a window of pre-bucketed bars column-wise:
// open=first open, high=max high, low=min low, close=last close.
func aggregateBarWindow(rows []model.Row) model.Bar {
	b := aggregateAux(model.KindBar, rows)
	b.Open = rows[0].Open
	b.High = rows[0].High
	b.Low = rows[0].Low
	b.Close = rows[0].Close
	for _, r := range rows[1:] {
		if r.High > b.High {
			b.High = r.High
		}
		if r.Low < b.Low {
			b.Low = r.Low
		}
		b.Close = r.Close
	}
	return b
}

// aggregateCount reduces the count-policy buckets of one symbol. The bar
// timestamp is the timestamp of the first contributing row.
func aggregateCount(kind model.Kind, rows []model.Row, buckets []bucket) []model.Bar {
	bars := make([]model.Bar, 0, len(buckets))
	for _, bk := range buckets {
		window := rows[bk.start:bk.end]
		b := aggregateTicks(kind, window)
		b.Start = window[0].Timestamp
		bars = append(bars, b)
	}
	return bars
}
