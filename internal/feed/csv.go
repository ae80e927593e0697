package feed

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"barflow/internal/calendar"
	"barflow/internal/model"
)

// ReadCSV loads a tick or bar dataset from a header-mapped CSV file.
// UTF-16 input (a common artifact of spreadsheet exports) is detected by
// BOM and transcoded. Timestamps follow the two-step zone rule: zoned
// values are kept, zoneless ones are localized UTC.
func ReadCSV(path string, kind model.Kind) (model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Dataset{}, err
	}
	defer f.Close()
	return parseCSV(f, kind)
}

func parseCSV(rd io.ReadSeeker, kind model.Kind) (model.Dataset, error) {
	br := bufio.NewReader(rd)
	if b, _ := br.Peek(2); len(b) >= 2 && ((b[0] == 0xFF && b[1] == 0xFE) || (b[0] == 0xFE && b[1] == 0xFF)) {
		if _, err := rd.Seek(0, io.SeekStart); err != nil {
			return model.Dataset{}, err
		}
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		br = bufio.NewReader(transform.NewReader(rd, dec))
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return model.Dataset{}, fmt.Errorf("feed: read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))] = i
	}

	tsCol, ok := findColumn(cols, "datetime", "timestamp", "t")
	if !ok {
		return model.Dataset{}, fmt.Errorf("feed: csv has no timestamp column")
	}
	symCol, ok := cols["symbol"]
	if !ok {
		return model.Dataset{}, fmt.Errorf("feed: csv has no symbol column")
	}

	ds := model.NewDataset(kind)
	if _, ok := cols[ds.PriceCol]; !ok {
		ds.PriceCol = ""
	}
	if _, ok := cols[ds.SizeCol]; !ok {
		ds.SizeCol = ""
	}

	field := func(rec []string, name string) float64 {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return math.NaN()
		}
		s := strings.TrimSpace(rec[i])
		if s == "" {
			return math.NaN()
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return v
	}
	text := func(rec []string, name string) string {
		if i, ok := cols[name]; ok && i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Dataset{}, fmt.Errorf("feed: csv line %d: %w", line, err)
		}
		if tsCol >= len(rec) || symCol >= len(rec) {
			continue
		}
		ts, err := calendar.ParseTimestamp(strings.TrimSpace(rec[tsCol]))
		if err != nil {
			return model.Dataset{}, fmt.Errorf("feed: csv line %d: %w", line, err)
		}
		row := model.Row{
			Timestamp:   ts,
			Symbol:      rec[symCol],
			SymbolGroup: text(rec, "symbol_group"),
			AssetClass:  text(rec, "asset_class"),
			Last:        field(rec, "last"),
			LastSize:    field(rec, "lastsize"),
			Open:        field(rec, "open"),
			High:        field(rec, "high"),
			Low:         field(rec, "low"),
			Close:       field(rec, "close"),
			Volume:      field(rec, "volume"),
			Opt: model.OptionFields{
				Underlying: field(rec, "opt_underlying"),
				Price:      field(rec, "opt_price"),
				Dividend:   field(rec, "opt_dividend"),
				Volume:     field(rec, "opt_volume"),
				IV:         field(rec, "opt_iv"),
				OI:         field(rec, "opt_oi"),
				Delta:      field(rec, "opt_delta"),
				Gamma:      field(rec, "opt_gamma"),
				Theta:      field(rec, "opt_theta"),
				Vega:       field(rec, "opt_vega"),
			},
		}
		ds.Rows = append(ds.Rows, row)
	}
	sort.SliceStable(ds.Rows, func(i, j int) bool {
		if ds.Rows[i].Symbol != ds.Rows[j].Symbol {
			return ds.Rows[i].Symbol < ds.Rows[j].Symbol
		}
		return ds.Rows[i].Timestamp.Before(ds.Rows[j].Timestamp)
	})
	return ds, nil
}

func findColumn(cols map[string]int, names ...string) (int, bool) {
	for _, n := range names {
		if i, ok := cols[n]; ok {
			return i, true
		}
	}
	return 0, false
}
