package jira

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadExport decodes one issue-search export file. Unknown fields are
// ignored; missing or null fields decode to zero values and degrade to
// "no signal" further down the pipeline.
func ReadExport(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export %s: %w", path, err)
	}

	var ex Export
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, fmt.Errorf("parsing export %s: %w", path, err)
	}
	return &ex, nil
}
