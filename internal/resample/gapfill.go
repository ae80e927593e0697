package resample

import (
	"math"
	"time"

	"barflow/internal/model"
)

// fillGaps repairs the synthetic empty buckets calendar resampling leaves
// between the first and last real bar of a symbol:
//
//  1. every synthetic bucket gets volume 0
//  2. close is forward-filled across the series (auxiliary columns too)
//  3. ffill=true sets open/high/low of a synthetic bucket to its filled
//     close; ffill=false leaves all four price columns null instead
//  4. dropna=true removes rows still missing close, which can only be a
//     leading gap before the first real close
func fillGaps(bars []model.Bar, res Resolution, ffill, dropna bool) []model.Bar {
	if len(bars) == 0 {
		return bars
	}
	step := res.Duration()

	filled := make([]model.Bar, 0, len(bars))
	synthetic := make([]bool, 0, len(bars))
	next := bars[0].Start
	for _, b := range bars {
		for next.Before(b.Start) {
			filled = append(filled, emptyBar(next))
			synthetic = append(synthetic, true)
			next = next.Add(step)
		}
		filled = append(filled, b)
		synthetic = append(synthetic, false)
		next = b.Start.Add(step)
	}

	// forward-fill close and the auxiliary block
	lastClose := math.NaN()
	carried := model.EmptyOptionFields()
	for i := range filled {
		if synthetic[i] {
			filled[i].Close = lastClose
			filled[i].Opt = carried
			if ffill {
				filled[i].Open = lastClose
				filled[i].High = lastClose
				filled[i].Low = lastClose
			}
		} else {
			lastClose = filled[i].Close
			carried.Merge(filled[i].Opt)
			filled[i].Opt = carried
		}
	}

	if !ffill {
		for i := range filled {
			if synthetic[i] {
				filled[i].Close = math.NaN()
			}
		}
	}
	if dropna {
		kept := filled[:0]
		for _, b := range filled {
			if math.IsNaN(b.Close) {
				continue
			}
			kept = append(kept, b)
		}
		filled = kept
	}
	return filled
}

func emptyBar(start time.Time) model.Bar {
	nan := math.NaN()
	return model.Bar{
		Start: start,
		Open:  nan, High: nan, Low: nan, Close: nan,
		Volume: 0,
		Opt:    model.EmptyOptionFields(),
	}
}
