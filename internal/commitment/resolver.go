// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commitment implements the commitment-date inference policy: given
// an issue's sprint assignments and its normalized changelog timeline, decide
// when the issue was actually committed to active work, as distinct from the
// sprint's nominal start or the issue's creation date.
package commitment

import (
	"time"

	"github.com/bartekus/sprintlens/internal/history"
	"github.com/bartekus/sprintlens/internal/jira"
)

// Backlog statuses. A commitment date must never predate the issue's
// last-observed "not started" transition.
const (
	statusNew  = "New"
	statusToDo = "To Do"
)

// Result is the per-issue outcome. Committed is nil when no sprint carries a
// known start date. Excluded marks records whose resolution predates their
// commitment; they are unreliable and left out of the output entirely.
type Result struct {
	Committed *time.Time
	Excluded  bool
}

// Resolve infers the commitment date for one issue. The policy is pure and
// deterministic: a per-cycle candidate for every sprint with a known start,
// the minimum across cycles, then the early-status and backlog-floor
// corrections in that order, then the resolution-consistency guard. The
// correction order is load-bearing; do not reorder.
func Resolve(created, resolved *time.Time, sprints []jira.Sprint, tl history.Timeline) Result {
	raw := rawCandidate(created, sprints, tl)
	if raw == nil {
		return Result{}
	}
	final := *raw

	// Early-status correction: a status entered before the issue was ever
	// committed to a cycle is the truer commitment signal.
	if early := earliestBefore(tl.StatusFirst, final); early != nil {
		final = *early
	}

	// Backlog-floor correction: the backlog transition is authoritative
	// evidence work had not yet begun, so it can only raise the date.
	for _, name := range []string{statusNew, statusToDo} {
		if at, ok := tl.StatusFirst[name]; ok && at.After(final) {
			final = at
		}
	}

	// An issue cannot resolve before it commits; such a record is dropped
	// rather than corrected.
	if resolved != nil && resolved.Before(final) {
		return Result{Excluded: true}
	}
	return Result{Committed: &final}
}

// rawCandidate is the minimum per-cycle candidate across all sprints with a
// known start date, or nil when there are none.
func rawCandidate(created *time.Time, sprints []jira.Sprint, tl history.Timeline) *time.Time {
	var raw *time.Time
	for _, s := range sprints {
		start := s.StartAt()
		if start == nil {
			continue
		}
		cand := cycleCandidate(created, *start, tl.CycleJoins[s.ID])
		if raw == nil || cand.Before(*raw) {
			raw = &cand
		}
	}
	return raw
}

// cycleCandidate honors a changelog-observed join only when it is not earlier
// than the cycle's declared start; an earlier join indicates stale or
// reordered data. With no qualifying join, an issue created mid-cycle commits
// at creation, otherwise at the declared start.
func cycleCandidate(created *time.Time, start time.Time, joins []time.Time) time.Time {
	var best *time.Time
	for _, j := range joins {
		if j.Before(start) {
			continue
		}
		if best == nil || j.Before(*best) {
			at := j
			best = &at
		}
	}
	if best != nil {
		return *best
	}
	if created != nil && created.After(start) {
		return *created
	}
	return start
}

// earliestBefore returns the minimum status-first time strictly earlier than
// cutoff, or nil when none is.
func earliestBefore(statuses map[string]time.Time, cutoff time.Time) *time.Time {
	var earliest *time.Time
	for _, at := range statuses {
		if !at.Before(cutoff) {
			continue
		}
		if earliest == nil || at.Before(*earliest) {
			a := at
			earliest = &a
		}
	}
	return earliest
}
