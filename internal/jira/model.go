// SPDX-License-Identifier: AGPL-3.0-or-later

// Package jira models the subset of a Jira issue-search export that
// sprintlens consumes: issue fields, sprint assignments, and the field-change
// changelog. Records are never mutated after decoding; everything downstream
// derives new values.
package jira

import "time"

// Export is the top-level shape of one issue-search export file.
type Export struct {
	Issues []Issue `json:"issues"`
}

// Issue is one tracked work item.
type Issue struct {
	Key       string    `json:"key"`
	Fields    Fields    `json:"fields"`
	Changelog Changelog `json:"changelog"`
}

// Fields carries the issue fields sprintlens reads. Sprint assignments live
// in the customfield the tracker instance uses for its sprint board.
type Fields struct {
	IssueType      IssueType `json:"issuetype"`
	Created        string    `json:"created"`
	ResolutionDate string    `json:"resolutiondate"`
	Sprints        []Sprint  `json:"customfield_10020"`
}

type IssueType struct {
	Name string `json:"name"`
}

// Sprint is one work cycle the issue is assigned to. IDs are unique within an
// issue's assignment list but not globally. A sprint without a parseable
// start date carries no commitment signal.
type Sprint struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
}

// Changelog is the issue's audit trail of field-level changes.
type Changelog struct {
	Histories []History `json:"histories"`
}

// History is one changelog entry: a timestamp plus the field changes recorded
// at that moment. Entries arrive in source order but consumers must not rely
// on it.
type History struct {
	Created string        `json:"created"`
	Items   []HistoryItem `json:"items"`
}

// HistoryItem is a single field change. Sprint changes carry the target
// sprint ids in To; status changes carry the new status name in ToString.
type HistoryItem struct {
	Field    string `json:"field"`
	To       string `json:"to"`
	ToString string `json:"toString"`
}

// TypeName returns the declared issue type, or "" when absent.
func (i Issue) TypeName() string { return i.Fields.IssueType.Name }

// CreatedAt returns the parsed creation timestamp, or nil when unparseable.
func (i Issue) CreatedAt() *time.Time { return ParseTime(i.Fields.Created) }

// ResolvedAt returns the parsed resolution timestamp, or nil when the issue
// is unresolved or the timestamp is unparseable.
func (i Issue) ResolvedAt() *time.Time { return ParseTime(i.Fields.ResolutionDate) }

// StartAt returns the sprint's parsed start timestamp, or nil.
func (s Sprint) StartAt() *time.Time { return ParseTime(s.StartDate) }
