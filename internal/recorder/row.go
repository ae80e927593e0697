package recorder

import "math"

// Row is the serialized table row shared by the csv, parquet and json
// savers. Price and option columns are pointers so missing values come
// out as parquet nulls and are omitted from json.
type Row struct {
	Datetime    int64    `parquet:"datetime" json:"datetime"`
	Symbol      string   `parquet:"symbol" json:"symbol"`
	SymbolGroup string   `parquet:"symbol_group" json:"symbol_group"`
	AssetClass  string   `parquet:"asset_class" json:"asset_class"`
	Open        *float64 `parquet:"open,optional" json:"open,omitempty"`
	High        *float64 `parquet:"high,optional" json:"high,omitempty"`
	Low         *float64 `parquet:"low,optional" json:"low,omitempty"`
	Close       *float64 `parquet:"close,optional" json:"close,omitempty"`
	Volume      int64    `parquet:"volume" json:"volume"`

	OptUnderlying *float64 `parquet:"opt_underlying,optional" json:"opt_underlying,omitempty"`
	OptPrice      *float64 `parquet:"opt_price,optional" json:"opt_price,omitempty"`
	OptDividend   *float64 `parquet:"opt_dividend,optional" json:"opt_dividend,omitempty"`
	OptVolume     *float64 `parquet:"opt_volume,optional" json:"opt_volume,omitempty"`
	OptIV         *float64 `parquet:"opt_iv,optional" json:"opt_iv,omitempty"`
	OptOI         *float64 `parquet:"opt_oi,optional" json:"opt_oi,omitempty"`
	OptDelta      *float64 `parquet:"opt_delta,optional" json:"opt_delta,omitempty"`
	OptGamma      *float64 `parquet:"opt_gamma,optional" json:"opt_gamma,omitempty"`
	OptTheta      *float64 `parquet:"opt_theta,optional" json:"opt_theta,omitempty"`
	OptVega       *float64 `parquet:"opt_vega,optional" json:"opt_vega,omitempty"`

	Position int64              `parquet:"position" json:"position"`
	Extra    map[string]float64 `parquet:"-" json:"extra,omitempty"`
}

func optional(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func newRow(e *entry) Row {
	b := e.bar
	opt := b.Opt.Values()
	row := Row{
		Datetime:    e.ts.UnixMilli(),
		Symbol:      displaySymbol(b.Symbol, b.AssetClass),
		SymbolGroup: b.SymbolGroup,
		AssetClass:  b.AssetClass,
		Open:        optional(b.Open),
		High:        optional(b.High),
		Low:         optional(b.Low),
		Close:       optional(b.Close),
		Volume:      b.Volume,
	}
	dst := []**float64{
		&row.OptUnderlying, &row.OptPrice, &row.OptDividend, &row.OptVolume,
		&row.OptIV, &row.OptOI, &row.OptDelta, &row.OptGamma,
		&row.OptTheta, &row.OptVega,
	}
	for i, v := range opt {
		*dst[i] = optional(v)
	}
	if len(e.extra) > 0 {
		row.Extra = make(map[string]float64, len(e.extra))
		for k, v := range e.extra {
			row.Extra[k] = v
		}
	}
	return row
}

// hasOptionData reports whether any option column carries a value across
// the table; the csv saver drops the whole block otherwise, matching the
// legacy recorder's non-option output.
func hasOptionData(rows []Row) bool {
	for _, r := range rows {
		for _, p := range r.optColumns() {
			if p != nil {
				return true
			}
		}
	}
	return false
}

func (r *Row) optColumns() []*float64 {
	return []*float64{
		r.OptUnderlying, r.OptPrice, r.OptDividend, r.OptVolume,
		r.OptIV, r.OptOI, r.OptDelta, r.OptGamma, r.OptTheta, r.OptVega,
	}
}
