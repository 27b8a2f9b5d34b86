// Package inputs expands and filters the export paths given on the command
// line. A directory argument contributes the .json files directly inside it.
// Results are sorted so runs are deterministic regardless of argument order.
package inputs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Collect resolves the command-line input arguments to a sorted list of
// export files. File arguments are taken as-is; directory arguments are
// expanded non-recursively to their .json entries.
func Collect(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading input directory %s: %w", arg, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
				continue
			}
			files = append(files, filepath.Join(arg, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
