package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/sprintlens/internal/jira"
)

func entry(created string, items ...jira.HistoryItem) jira.History {
	return jira.History{Created: created, Items: items}
}

func sprintChange(to string) jira.HistoryItem {
	return jira.HistoryItem{Field: "Sprint", To: to}
}

func statusChange(name string) jira.HistoryItem {
	return jira.HistoryItem{Field: "status", ToString: name}
}

func TestNormalize_CycleJoins(t *testing.T) {
	log := jira.Changelog{Histories: []jira.History{
		entry("2024-01-05T10:00:00", sprintChange("[81]")),
		entry("2024-01-12T10:00:00", sprintChange("[81, 82]")),
		entry("2024-01-15T10:00:00", sprintChange("[99]")), // unknown cycle
	}}
	known := map[int]struct{}{81: {}, 82: {}}

	tl := Normalize(log, known)

	require.Len(t, tl.CycleJoins[81], 2)
	require.Len(t, tl.CycleJoins[82], 1)
	assert.NotContains(t, tl.CycleJoins, 99)
	assert.Equal(t, 12, tl.CycleJoins[82][0].Day())
}

func TestNormalize_StatusFirstWriteWins(t *testing.T) {
	log := jira.Changelog{Histories: []jira.History{
		entry("2024-01-20T10:00:00", statusChange("In Progress")),
		entry("2024-01-08T10:00:00", statusChange("In Progress")),
		entry("2024-01-25T10:00:00", statusChange("Done")),
	}}

	tl := Normalize(log, nil)

	require.Contains(t, tl.StatusFirst, "In Progress")
	// Earliest transition wins regardless of entry order.
	assert.Equal(t, 8, tl.StatusFirst["In Progress"].Day())
	assert.Contains(t, tl.StatusFirst, "Done")
}

func TestNormalize_DropsUnusableEntries(t *testing.T) {
	log := jira.Changelog{Histories: []jira.History{
		entry("not a timestamp", statusChange("Done"), sprintChange("[81]")),
		entry("", statusChange("New")),
		entry("2024-01-10T10:00:00", statusChange("")),
		entry("2024-01-10T10:00:00", jira.HistoryItem{Field: "assignee", ToString: "someone"}),
	}}

	tl := Normalize(log, map[int]struct{}{81: {}})

	assert.Empty(t, tl.StatusFirst)
	assert.Empty(t, tl.CycleJoins)
}

func TestParseCycleIDs(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []int
	}{
		{"single id", "[81]", []int{81}},
		{"multiple ids", "[81, 82]", []int{81, 82}},
		{"no brackets", "81,82", []int{81, 82}},
		{"free text", "Alpha Sprint 1", nil},
		{"mixed tokens", "[81, next, 82]", []int{81, 82}},
		{"negative rejected", "[-5]", nil},
		{"empty", "", nil},
		{"brackets only", "[]", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCycleIDs(tt.payload))
		})
	}
}

func TestNormalize_PureOverInputs(t *testing.T) {
	log := jira.Changelog{Histories: []jira.History{
		entry("2024-01-12T10:00:00", sprintChange("[81]"), statusChange("To Do")),
	}}
	known := map[int]struct{}{81: {}}

	a := Normalize(log, known)
	b := Normalize(log, known)

	assert.Equal(t, a.CycleJoins, b.CycleJoins)
	assert.Equal(t, a.StatusFirst, b.StatusFirst)
}
