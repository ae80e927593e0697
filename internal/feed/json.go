package feed

import (
	"encoding/json"
	"fmt"
	"os"

	"barflow/internal/model"
)

// ReadJSON loads a dataset from a JSON array of rows.
func ReadJSON(path string, kind model.Kind) (model.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Dataset{}, err
	}
	var frs []feedRow
	if err := json.Unmarshal(data, &frs); err != nil {
		return model.Dataset{}, fmt.Errorf("feed: parse %s: %w", path, err)
	}
	return toDataset(kind, frs), nil
}
