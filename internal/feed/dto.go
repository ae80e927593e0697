// Package feed loads bounded tick or bar datasets from files and HTTP
// endpoints into the row model the resampler consumes.
package feed

import (
	"math"
	"sort"

	"barflow/internal/calendar"
	"barflow/internal/model"
)

// feedRow is the serialized input row shared by the json, parquet and
// HTTP sources. Numeric columns are pointers so absent values survive the
// round trip as missing rather than zero.
type feedRow struct {
	Datetime    int64  `json:"datetime" parquet:"datetime"`
	Symbol      string `json:"symbol" parquet:"symbol"`
	SymbolGroup string `json:"symbol_group,omitempty" parquet:"symbol_group,optional"`
	AssetClass  string `json:"asset_class,omitempty" parquet:"asset_class,optional"`

	Last     *float64 `json:"last,omitempty" parquet:"last,optional"`
	LastSize *float64 `json:"lastsize,omitempty" parquet:"lastsize,optional"`

	Open   *float64 `json:"open,omitempty" parquet:"open,optional"`
	High   *float64 `json:"high,omitempty" parquet:"high,optional"`
	Low    *float64 `json:"low,omitempty" parquet:"low,optional"`
	Close  *float64 `json:"close,omitempty" parquet:"close,optional"`
	Volume *float64 `json:"volume,omitempty" parquet:"volume,optional"`

	OptUnderlying *float64 `json:"opt_underlying,omitempty" parquet:"opt_underlying,optional"`
	OptPrice      *float64 `json:"opt_price,omitempty" parquet:"opt_price,optional"`
	OptDividend   *float64 `json:"opt_dividend,omitempty" parquet:"opt_dividend,optional"`
	OptVolume     *float64 `json:"opt_volume,omitempty" parquet:"opt_volume,optional"`
	OptIV         *float64 `json:"opt_iv,omitempty" parquet:"opt_iv,optional"`
	OptOI         *float64 `json:"opt_oi,omitempty" parquet:"opt_oi,optional"`
	OptDelta      *float64 `json:"opt_delta,omitempty" parquet:"opt_delta,optional"`
	OptGamma      *float64 `json:"opt_gamma,omitempty" parquet:"opt_gamma,optional"`
	OptTheta      *float64 `json:"opt_theta,omitempty" parquet:"opt_theta,optional"`
	OptVega       *float64 `json:"opt_vega,omitempty" parquet:"opt_vega,optional"`
}

func deref(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

func (fr feedRow) toRow() model.Row {
	return model.Row{
		Timestamp:   calendar.FromEpoch(fr.Datetime),
		Symbol:      fr.Symbol,
		SymbolGroup: fr.SymbolGroup,
		AssetClass:  fr.AssetClass,
		Last:        deref(fr.Last),
		LastSize:    deref(fr.LastSize),
		Open:        deref(fr.Open),
		High:        deref(fr.High),
		Low:         deref(fr.Low),
		Close:       deref(fr.Close),
		Volume:      deref(fr.Volume),
		Opt: model.OptionFields{
			Underlying: deref(fr.OptUnderlying),
			Price:      deref(fr.OptPrice),
			Dividend:   deref(fr.OptDividend),
			Volume:     deref(fr.OptVolume),
			IV:         deref(fr.OptIV),
			OI:         deref(fr.OptOI),
			Delta:      deref(fr.OptDelta),
			Gamma:      deref(fr.OptGamma),
			Theta:      deref(fr.OptTheta),
			Vega:       deref(fr.OptVega),
		},
	}
}

// toDataset converts decoded rows into a dataset sorted ascending by
// timestamp per symbol. The price and size columns are marked absent when
// no row carries one, so the schema check can name the missing column.
func toDataset(kind model.Kind, frs []feedRow) model.Dataset {
	ds := model.NewDataset(kind)
	hasPrice, hasSize := false, false
	for _, fr := range frs {
		ds.Rows = append(ds.Rows, fr.toRow())
		switch kind {
		case model.KindTick:
			hasPrice = hasPrice || fr.Last != nil
			hasSize = hasSize || fr.LastSize != nil
		case model.KindBar:
			hasPrice = hasPrice || fr.Close != nil
			hasSize = hasSize || fr.Volume != nil
		}
	}
	if len(frs) > 0 && !hasPrice {
		ds.PriceCol = ""
	}
	if len(frs) > 0 && !hasSize {
		ds.SizeCol = ""
	}
	sort.SliceStable(ds.Rows, func(i, j int) bool {
		if ds.Rows[i].Symbol != ds.Rows[j].Symbol {
			return ds.Rows[i].Symbol < ds.Rows[j].Symbol
		}
		return ds.Rows[i].Timestamp.Before(ds.Rows[j].Timestamp)
	})
	return ds
}
