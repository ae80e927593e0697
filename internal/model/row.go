package model

import (
	"strings"
	"time"
)

// Kind tags the input variant of a whole dataset. It is chosen once when
// the data is loaded and never re-derived from row contents.
type Kind int

const (
	// KindTick marks raw trade events: price in Last, size in LastSize.
	KindTick Kind = iota
	// KindBar marks pre-bucketed bars: prices in Open/High/Low/Close,
	// size in Volume.
	KindBar
)

func (k Kind) String() string {
	if k == KindTick {
		return "tick"
	}
	return "bar"
}

// PriceColumn returns the source column name the kind reads prices from.
func (k Kind) PriceColumn() string {
	if k == KindTick {
		return "last"
	}
	return "close"
}

// SizeColumn returns the source column name the kind reads sizes from.
func (k Kind) SizeColumn() string {
	if k == KindTick {
		return "lastsize"
	}
	return "volume"
}

// Price extracts the row's price under this kind.
func (k Kind) Price(r Row) float64 {
	if k == KindTick {
		return r.Last
	}
	return r.Close
}

// Size extracts the row's size under this kind.
func (k Kind) Size(r Row) float64 {
	if k == KindTick {
		return r.LastSize
	}
	return r.Volume
}

// Row is one input observation. Tick datasets populate Last/LastSize,
// bar datasets populate Open/High/Low/Close/Volume; the unused group is
// left zero and never read (the dataset Kind decides which is live).
type Row struct {
	Timestamp   time.Time
	Symbol      string
	SymbolGroup string
	AssetClass  string

	Last     float64
	LastSize float64

	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64

	Opt OptionFields
}

// Dataset is a bounded multi-symbol input series, rows sorted ascending
// by timestamp within each symbol. PriceCol/SizeCol record which source
// columns were actually present; loaders clear SizeCol when the source
// carries no size data so schema checks can name the missing column.
type Dataset struct {
	Kind     Kind
	Rows     []Row
	PriceCol string
	SizeCol  string
}

// NewDataset returns an empty dataset of the given kind with the kind's
// default columns marked present.
func NewDataset(kind Kind) Dataset {
	return Dataset{
		Kind:     kind,
		PriceCol: kind.PriceColumn(),
		SizeCol:  kind.SizeColumn(),
	}
}

// IsOption reports whether a symbol trades options or future options,
// by asset class tag or legacy symbol suffix.
func IsOption(symbol, assetClass string) bool {
	switch assetClass {
	case "OPT", "FOP":
		return true
	}
	return strings.HasSuffix(symbol, "OPT") || strings.HasSuffix(symbol, "FOP")
}
