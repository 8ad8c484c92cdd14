package dome9

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadJSONFile loads a JSON document from disk into a generic value. It is a
// convenience for callers that keep rule bundles or request bodies in files.
func ReadJSONFile(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var value interface{}

	err = json.Unmarshal(data, &value)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return value, nil
}
