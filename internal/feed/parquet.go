package feed

import (
	"fmt"

	"github.com/parquet-go/parquet-go"

	"barflow/internal/model"
)

// ReadParquet loads a dataset from a Parquet file with the feed row
// schema.
func ReadParquet(path string, kind model.Kind) (model.Dataset, error) {
	frs, err := parquet.ReadFile[feedRow](path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("feed: read %s: %w", path, err)
	}
	return toDataset(kind, frs), nil
}
