package resample

import (
	"math"
	"testing"
	"time"

	"barflow/internal/model"
)

func TestGapFillDisabledLeavesNulls(t *testing.T) {
	ds := barDataset(
		barRow(t0, "AAPL", 10, 12, 9, 11, 100),
		barRow(t0.Add(3*time.Minute), "AAPL", 11, 13, 10, 12, 50),
	)
	opts := Options{Resolution: "1T", FFill: false}
	bars, err := Resample(ds, opts)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if len(bars) != 4 {
		t.Fatalf("got %d bars, want 4", len(bars))
	}
	for i := 1; i <= 2; i++ {
		b := bars[i]
		if b.Volume != 0 {
			t.Errorf("synthetic bar %d volume = %d, want 0", i, b.Volume)
		}
		if !math.IsNaN(b.Open) || !math.IsNaN(b.High) || !math.IsNaN(b.Low) || !math.IsNaN(b.Close) {
			t.Errorf("synthetic bar %d has filled prices: %+v", i, b)
		}
	}
}

func TestGapFillDropNA(t *testing.T) {
	ds := barDataset(
		barRow(t0, "AAPL", 10, 12, 9, 11, 100),
		barRow(t0.Add(3*time.Minute), "AAPL", 11, 13, 10, 12, 50),
	)
	opts := Options{Resolution: "1T", FFill: false, DropNA: true}
	bars, err := Resample(ds, opts)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("got %d bars, want 2 (nulls dropped)", len(bars))
	}
	for _, b := range bars {
		if !b.HasOHLC() {
			t.Errorf("null bar survived dropna: %+v", b)
		}
	}
}

func TestGapFillForwardFillsAux(t *testing.T) {
	first := barRow(t0, "AAPL", 10, 12, 9, 11, 100)
	first.Opt.IV = 0.25
	ds := barDataset(
		first,
		barRow(t0.Add(2*time.Minute), "AAPL", 11, 13, 10, 12, 50),
	)
	bars, err := Resample(ds, DefaultOptions("1T"))
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if len(bars) != 3 {
		t.Fatalf("got %d bars, want 3", len(bars))
	}
	if bars[1].Opt.IV != 0.25 {
		t.Errorf("synthetic bar iv = %v, want 0.25 (forward-filled)", bars[1].Opt.IV)
	}
	if bars[2].Opt.IV != 0.25 {
		t.Errorf("real bar iv = %v, want 0.25 (carried forward)", bars[2].Opt.IV)
	}
}

func TestGapFillNoGaps(t *testing.T) {
	bars := []model.Bar{
		{Start: t0, Open: 1, High: 2, Low: 1, Close: 2, Volume: 5, Opt: model.EmptyOptionFields()},
		{Start: t0.Add(time.Minute), Open: 2, High: 3, Low: 2, Close: 3, Volume: 5, Opt: model.EmptyOptionFields()},
	}
	out := fillGaps(bars, Resolution{Period: 1, Unit: UnitMinutes}, true, false)
	if len(out) != 2 {
		t.Fatalf("got %d bars, want 2", len(out))
	}
	if out[0].Close != 2 || out[1].Close != 3 {
		t.Errorf("closes changed: %v %v", out[0].Close, out[1].Close)
	}
}
