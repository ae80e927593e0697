package model

import (
	"math"
	"time"
)

// Bar is one aggregated OHLC(V) output row for a fixed window.
// Open/High/Low/Close are NaN on synthetic gap rows left unfilled.
type Bar struct {
	Start       time.Time
	Open        float64
	High        float64
	Low         float64
	Close       float64
	Volume      int64
	Opt         OptionFields
	Symbol      string
	SymbolGroup string
	AssetClass  string
}

// HasOHLC reports whether all four price columns carry a value.
func (b Bar) HasOHLC() bool {
	return !math.IsNaN(b.Open) && !math.IsNaN(b.High) &&
		!math.IsNaN(b.Low) && !math.IsNaN(b.Close)
}
