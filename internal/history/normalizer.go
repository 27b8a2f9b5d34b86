// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history derives per-issue timelines from the raw changelog: the
// times the issue joined each known work cycle, and the first time it entered
// each status.
package history

import (
	"strconv"
	"strings"
	"time"

	"github.com/bartekus/sprintlens/internal/jira"
)

// Changelog field names the normalizer reacts to.
const (
	fieldSprint = "Sprint"
	fieldStatus = "status"
)

// Timeline holds the two derived views of an issue's changelog. Join times
// are recorded per cycle in source order, but consumers must treat them as
// unordered and aggregate via min.
type Timeline struct {
	CycleJoins  map[int][]time.Time
	StatusFirst map[string]time.Time
}

// Normalize scans the changelog once and returns the derived timeline.
// Entries with unparseable timestamps contribute nothing. A status is
// recorded at its earliest observed transition only; later re-entries are
// dropped silently. Cycle ids outside the known set are ignored.
func Normalize(log jira.Changelog, knownCycles map[int]struct{}) Timeline {
	tl := Timeline{
		CycleJoins:  make(map[int][]time.Time),
		StatusFirst: make(map[string]time.Time),
	}

	for _, h := range log.Histories {
		at := jira.ParseTime(h.Created)
		if at == nil {
			continue
		}
		for _, item := range h.Items {
			switch item.Field {
			case fieldSprint:
				for _, id := range parseCycleIDs(item.To) {
					if _, known := knownCycles[id]; known {
						tl.CycleJoins[id] = append(tl.CycleJoins[id], *at)
					}
				}
			case fieldStatus:
				if item.ToString == "" {
					continue
				}
				// Earliest transition wins even if the source entries
				// arrive out of chronological order.
				if cur, seen := tl.StatusFirst[item.ToString]; !seen || at.Before(cur) {
					tl.StatusFirst[item.ToString] = *at
				}
			}
		}
	}
	return tl
}

// parseCycleIDs extracts cycle ids from a Sprint change payload. The tracker
// emits either a bracketed list ("[81, 82]") or free text; tokens that are
// not plain non-negative integers contribute no ids.
func parseCycleIDs(payload string) []int {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil
	}
	payload = strings.TrimPrefix(payload, "[")
	payload = strings.TrimSuffix(payload, "]")

	var ids []int
	for _, tok := range strings.Split(payload, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" || !allDigits(tok) {
			continue
		}
		id, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
