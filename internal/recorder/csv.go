package recorder

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"

	"barflow/internal/model"
)

// CSVSaver writes the table as CSV. The option column block is emitted
// only when at least one row carries option data; extra key/value fields
// become trailing columns sorted by key.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	withOpt := hasOptionData(rows)
	extraKeys := collectExtraKeys(rows)

	header := []string{"datetime", "symbol", "symbol_group", "asset_class",
		"open", "high", "low", "close", "volume"}
	if withOpt {
		header = append(header, model.OptionColumns...)
	}
	header = append(header, "position")
	header = append(header, extraKeys...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		rec := []string{
			strconv.FormatInt(r.Datetime, 10),
			r.Symbol, r.SymbolGroup, r.AssetClass,
			optStr(r.Open), optStr(r.High), optStr(r.Low), optStr(r.Close),
			strconv.FormatInt(r.Volume, 10),
		}
		if withOpt {
			for _, p := range r.optColumns() {
				rec = append(rec, optStr(p))
			}
		}
		rec = append(rec, strconv.FormatInt(r.Position, 10))
		for _, k := range extraKeys {
			if v, ok := r.Extra[k]; ok {
				rec = append(rec, floatStr(v))
			} else {
				rec = append(rec, "")
			}
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

func collectExtraKeys(rows []Row) []string {
	seen := make(map[string]bool)
	for _, r := range rows {
		for k := range r.Extra {
			seen[k] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func optStr(p *float64) string {
	if p == nil {
		return ""
	}
	return floatStr(*p)
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
