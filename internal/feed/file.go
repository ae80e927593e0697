package feed

import (
	"fmt"
	"path/filepath"
	"strings"

	"barflow/internal/model"
)

// ReadFile loads a dataset picking the decoder from the file extension
// (.csv, .json, .parquet).
func ReadFile(path string, kind model.Kind) (model.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path, kind)
	case ".json":
		return ReadJSON(path, kind)
	case ".parquet":
		return ReadParquet(path, kind)
	}
	return model.Dataset{}, fmt.Errorf("feed: unsupported input extension on %q (use: .csv, .json, .parquet)", path)
}
