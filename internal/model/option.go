package model

import "math"

// OptionFields carries the auxiliary option columns attached to each row.
// Missing values are NaN; aggregation keeps the last non-missing value
// seen inside a bucket.
type OptionFields struct {
	Underlying float64
	Price      float64
	Dividend   float64
	Volume     float64
	IV         float64
	OI         float64
	Delta      float64
	Gamma      float64
	Theta      float64
	Vega       float64
}

// OptionColumns lists the serialized column names in struct field order.
var OptionColumns = []string{
	"opt_underlying", "opt_price", "opt_dividend", "opt_volume",
	"opt_iv", "opt_oi", "opt_delta", "opt_gamma", "opt_theta", "opt_vega",
}

// EmptyOptionFields returns a block with every column missing.
func EmptyOptionFields() OptionFields {
	nan := math.NaN()
	return OptionFields{
		Underlying: nan, Price: nan, Dividend: nan, Volume: nan,
		IV: nan, OI: nan, Delta: nan, Gamma: nan, Theta: nan, Vega: nan,
	}
}

func (o *OptionFields) fields() []*float64 {
	return []*float64{
		&o.Underlying, &o.Price, &o.Dividend, &o.Volume,
		&o.IV, &o.OI, &o.Delta, &o.Gamma, &o.Theta, &o.Vega,
	}
}

// Values returns the columns in OptionColumns order.
func (o OptionFields) Values() []float64 {
	out := make([]float64, 0, len(OptionColumns))
	for _, f := range o.fields() {
		out = append(out, *f)
	}
	return out
}

// Merge overwrites each column with the value from next when next has one.
func (o *OptionFields) Merge(next OptionFields) {
	dst := o.fields()
	for i, src := range next.fields() {
		if !math.IsNaN(*src) {
			*dst[i] = *src
		}
	}
}

// Complete reports whether every column has a value.
func (o OptionFields) Complete() bool {
	for _, f := range o.fields() {
		if math.IsNaN(*f) {
			return false
		}
	}
	return true
}

// Empty reports whether no column has a value.
func (o OptionFields) Empty() bool {
	for _, f := range o.fields() {
		if !math.IsNaN(*f) {
			return false
		}
	}
	return true
}
