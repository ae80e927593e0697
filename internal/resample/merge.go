package resample

import (
	"sort"
	"time"

	"barflow/internal/model"
)

// mergeResults concatenates per-symbol outputs, converts timestamps to
// the resolved output zone and restores deterministic ordering: symbol
// ascending, then timestamp. The sort is what makes parallel per-symbol
// execution order-independent.
func mergeResults(perSymbol [][]model.Bar, tz *time.Location) []model.Bar {
	var n int
	for _, bars := range perSymbol {
		n += len(bars)
	}
	out := make([]model.Bar, 0, n)
	for _, bars := range perSymbol {
		out = append(out, bars...)
	}
	if tz != nil {
		for i := range out {
			out[i].Start = out[i].Start.In(tz)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Symbol != out[j].Symbol {
			return out[i].Symbol < out[j].Symbol
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// outputZone resolves the output timezone: an explicit caller zone wins;
// otherwise the input's own zone is kept. Rows parsed from zoneless
// sources were already localized UTC by the loader, so "inherit input"
// degrades to UTC exactly when the input carried no zone.
func outputZone(requested *time.Location, rows []model.Row) *time.Location {
	if requested != nil {
		return requested
	}
	if len(rows) > 0 {
		return rows[0].Timestamp.Location()
	}
	return time.UTC
}
