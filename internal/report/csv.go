// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report renders extract results as the per-issue CSV artifact and
// writes it atomically.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/bartekus/sprintlens/internal/extract"
)

var baseHeader = []string{"Issue Key", "Issue Type", "Created", "Commitment Date"}

// StatusColumns returns the sorted union of status names observed across all
// results. These become the per-status columns of the artifact; an issue that
// never entered a status gets an empty cell there.
func StatusColumns(results []extract.IssueResult) []string {
	seen := make(map[string]struct{})
	for _, r := range results {
		for name := range r.Statuses {
			seen[name] = struct{}{}
		}
	}

	cols := make([]string, 0, len(seen))
	for name := range seen {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	return cols
}

// Render produces the full CSV content. Dates use the given Go layout;
// absent values render as empty cells. Row order follows result order, which
// follows input order, so output is deterministic.
func Render(results []extract.IssueResult, dateFormat string) ([]byte, error) {
	statuses := StatusColumns(results)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append(append([]string{}, baseHeader...), statuses...)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for _, r := range results {
		row := []string{
			r.Key,
			r.Type,
			formatDate(r.Created, dateFormat),
			formatDate(r.Committed, dateFormat),
		}
		for _, name := range statuses {
			if at, ok := r.Statuses[name]; ok {
				row = append(row, at.Format(dateFormat))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing row for %s: %w", r.Key, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatDate(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	return t.Format(layout)
}
