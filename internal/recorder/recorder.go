// Package recorder persists finalized bars plus arbitrary key/value
// fields into an accumulating table keyed by (timestamp, symbol). Every
// Record call rewrites the destination file; the on-disk format follows
// the file extension (csv, parquet, json).
package recorder

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"barflow/internal/model"
)

type rowKey struct {
	ms     int64
	symbol string
}

type entry struct {
	ts       time.Time
	bar      model.Bar
	position float64 // NaN until set
	extra    map[string]float64
}

// Recorder accumulates rows and flushes the whole table on every write.
type Recorder struct {
	path  string
	saver Saver

	mu   sync.Mutex
	rows map[rowKey]*entry
}

// New builds a Recorder for the destination path. The file extension
// selects the format.
func New(path string) (*Recorder, error) {
	s := NewSaver(strings.TrimPrefix(filepath.Ext(path), "."))
	if s == nil {
		return nil, fmt.Errorf("recorder: unsupported extension on %q (use: .csv, .parquet, .json)", path)
	}
	return &Recorder{path: path, saver: s, rows: make(map[rowKey]*entry)}, nil
}

// Record merges one finalized bar plus extra fields into the table under
// (timestamp, symbol) and persists. A repeated key overwrites the bar and
// merges the extras. The written file is normalized world-writable so
// sibling processes can rotate it.
func (r *Recorder) Record(ts time.Time, bar model.Bar, extra map[string]float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := rowKey{ms: ts.UnixMilli(), symbol: bar.Symbol}
	e, ok := r.rows[key]
	if !ok {
		e = &entry{ts: ts, position: math.NaN(), extra: make(map[string]float64)}
		r.rows[key] = e
	}
	e.bar = bar
	for k, v := range extra {
		if k == "position" {
			e.position = v
			continue
		}
		e.extra[k] = v
	}

	if err := r.saver.Save(r.table(), r.path); err != nil {
		return err
	}
	// best effort, matches legacy recorder behavior on odd filesystems
	_ = os.Chmod(r.path, 0o777)
	return nil
}

// RecordBars records a resampled batch in order, using each bar's own
// bucket timestamp.
func (r *Recorder) RecordBars(bars []model.Bar, extra map[string]float64) error {
	for _, b := range bars {
		if err := r.Record(b.Start, b, extra); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of accumulated rows.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// table flattens the map into Rows sorted by symbol then timestamp, with
// per-symbol position forward-fill and the asset-class suffix stripped
// from symbols.
func (r *Recorder) table() []Row {
	keys := make([]rowKey, 0, len(r.rows))
	for k := range r.rows {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].symbol != keys[j].symbol {
			return keys[i].symbol < keys[j].symbol
		}
		return keys[i].ms < keys[j].ms
	})

	out := make([]Row, 0, len(keys))
	lastPos := make(map[string]int64)
	for _, k := range keys {
		e := r.rows[k]
		row := newRow(e)
		pos, ok := lastPos[k.symbol]
		if !math.IsNaN(e.position) {
			pos = int64(e.position)
		} else if !ok {
			pos = 0
		}
		lastPos[k.symbol] = pos
		row.Position = pos
		out = append(out, row)
	}
	return out
}

func displaySymbol(symbol, assetClass string) string {
	if assetClass == "" {
		return symbol
	}
	return strings.ReplaceAll(symbol, "_"+assetClass, "")
}
