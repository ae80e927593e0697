package recorder

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"barflow/internal/model"
)

var ts0 = time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)

func sampleBar(sym string, close float64) model.Bar {
	return model.Bar{
		Start: ts0, Open: close - 1, High: close + 1, Low: close - 2, Close: close,
		Volume: 100, Opt: model.EmptyOptionFields(),
		Symbol: sym, SymbolGroup: sym, AssetClass: "STK",
	}
}

func TestNewUnsupportedExtension(t *testing.T) {
	if _, err := New("out.xlsx"); err == nil {
		t.Fatal("want error for unsupported extension")
	}
	if _, err := New("out"); err == nil {
		t.Fatal("want error for missing extension")
	}
}

func TestRecordMergesByTimestampAndSymbol(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	rec, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := rec.Record(ts0, sampleBar("AAPL", 11), map[string]float64{"signal": 1}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	// same key: bar overwritten, extras merged
	if err := rec.Record(ts0, sampleBar("AAPL", 12), map[string]float64{"score": 0.5}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := rec.Record(ts0, sampleBar("MSFT", 20), nil); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.Len() != 2 {
		t.Fatalf("table has %d rows, want 2", rec.Len())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("file has %d rows, want 2", len(rows))
	}
	if rows[0].Symbol != "AAPL" || rows[1].Symbol != "MSFT" {
		t.Errorf("rows not sorted by symbol: %q, %q", rows[0].Symbol, rows[1].Symbol)
	}
	if rows[0].Close == nil || *rows[0].Close != 12 {
		t.Errorf("close not overwritten: %v", rows[0].Close)
	}
	if rows[0].Extra["signal"] != 1 || rows[0].Extra["score"] != 0.5 {
		t.Errorf("extras not merged: %v", rows[0].Extra)
	}
}

func TestRecordCSVOmitsEmptyOptionBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rec, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := rec.Record(ts0, sampleBar("AAPL", 11), map[string]float64{"position": 2}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d csv lines, want 2", len(recs))
	}
	for _, col := range recs[0] {
		if col == "opt_iv" {
			t.Error("empty option block written to csv")
		}
	}
	wantHeader := []string{"datetime", "symbol", "symbol_group", "asset_class",
		"open", "high", "low", "close", "volume", "position"}
	if len(recs[0]) != len(wantHeader) {
		t.Fatalf("header = %v, want %v", recs[0], wantHeader)
	}
	if recs[1][len(recs[1])-1] != "2" {
		t.Errorf("position column = %q, want 2", recs[1][len(recs[1])-1])
	}
}

func TestRecordNormalizesPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rec, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := rec.Record(ts0, sampleBar("AAPL", 11), nil); err != nil {
		t.Fatalf("Record: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm()&0o002 == 0 {
		t.Errorf("file mode %v is not world-writable", info.Mode().Perm())
	}
}

func TestDisplaySymbolStripsAssetClass(t *testing.T) {
	if got := displaySymbol("ES_FUT", "FUT"); got != "ES" {
		t.Errorf("displaySymbol = %q, want ES", got)
	}
	if got := displaySymbol("AAPL", "STK"); got != "AAPL" {
		t.Errorf("displaySymbol = %q, want AAPL", got)
	}
}
