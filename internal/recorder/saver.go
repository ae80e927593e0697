package recorder

import "strings"

// Saver writes one full table snapshot to a destination path.
type Saver interface {
	Save(rows []Row, path string) error
	Extension() string
}

// NewSaver creates the implementation for a format or extension name
// (csv, parquet, json). Returns nil if the format is not supported.
func NewSaver(format string) Saver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}
