// SPDX-License-Identifier: AGPL-3.0-or-later

// Package extract runs the per-issue pipeline: filter issues per the run
// configuration, normalize each changelog, and resolve commitment dates.
// Issues are independent of each other; the pipeline processes them
// sequentially and shares no state between them.
package extract

import (
	"strings"
	"time"

	"github.com/bartekus/sprintlens/internal/commitment"
	"github.com/bartekus/sprintlens/internal/config"
	"github.com/bartekus/sprintlens/internal/history"
	"github.com/bartekus/sprintlens/internal/jira"
)

// IssueResult pairs one retained issue with its resolved commitment and
// status-first times, ready for serialization.
type IssueResult struct {
	Key       string
	Type      string
	Created   *time.Time
	Committed *time.Time
	Statuses  map[string]time.Time
}

// Run processes issues in input order. Issues filtered out by configuration
// or excluded by the resolution-consistency guard are counted as dropped.
func Run(issues []jira.Issue, cfg config.Config) (results []IssueResult, dropped int) {
	for _, issue := range issues {
		if !keep(issue, cfg) {
			dropped++
			continue
		}

		known := make(map[int]struct{}, len(issue.Fields.Sprints))
		for _, s := range issue.Fields.Sprints {
			if s.ID != 0 && s.StartAt() != nil {
				known[s.ID] = struct{}{}
			}
		}

		tl := history.Normalize(issue.Changelog, known)
		res := commitment.Resolve(issue.CreatedAt(), issue.ResolvedAt(), issue.Fields.Sprints, tl)
		if res.Excluded {
			dropped++
			continue
		}

		results = append(results, IssueResult{
			Key:       issue.Key,
			Type:      issue.TypeName(),
			Created:   issue.CreatedAt(),
			Committed: res.Committed,
			Statuses:  tl.StatusFirst,
		})
	}
	return results, dropped
}

// keep applies the configured issue filters.
func keep(issue jira.Issue, cfg config.Config) bool {
	sprints := issue.Fields.Sprints
	if cfg.OmitOutsideSprint && len(sprints) == 0 {
		return false
	}
	if len(cfg.SprintKeywords) == 0 {
		return true
	}
	for _, s := range sprints {
		for _, kw := range cfg.SprintKeywords {
			if strings.Contains(s.Name, kw) {
				return true
			}
		}
	}
	return false
}
