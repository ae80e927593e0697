package resample

import (
	"sort"

	"barflow/internal/model"
)

// series is the per-symbol slice of a dataset plus the metadata captured
// from that symbol's last row.
type series struct {
	symbol      string
	symbolGroup string
	assetClass  string
	rows        []model.Row
}

// partition splits a multi-symbol dataset into independent per-symbol
// series, ordered by symbol for a stable fan-out. Zero rows in, zero
// series out.
func partition(rows []model.Row) []series {
	bySym := make(map[string]*series)
	var order []string
	for _, r := range rows {
		s, ok := bySym[r.Symbol]
		if !ok {
			s = &series{symbol: r.Symbol}
			bySym[r.Symbol] = s
			order = append(order, r.Symbol)
		}
		s.rows = append(s.rows, r)
		s.symbolGroup = r.SymbolGroup
		s.assetClass = r.AssetClass
	}
	sort.Strings(order)
	out := make([]series, 0, len(order))
	for _, sym := range order {
		out = append(out, *bySym[sym])
	}
	return out
}
