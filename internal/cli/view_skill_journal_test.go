package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedJournalSkill creates a skill whose journal spans yesterday, today,
// and tomorrow relative to the pinned test clock (2026-08-31).
func seedJournalSkill(backend *fakeBackend, name string) string {
	return backend.seedSkill(name, []map[string]any{
		{"date": "2026-08-30", "note": "intro chapter", "completed": true},
		{"date": "2026-08-31", "note": "", "completed": false},
		{"date": "2026-09-01", "note": "", "completed": false},
	})
}

func journalDriver(t *testing.T, backend *fakeBackend) *TestDriver {
	t.Helper()
	d := NewTestDriver(t, testApp(t, backend))
	d.PressKey('s')
	require.Equal(t, ViewSkills, d.ActiveViewID())
	d.PressEnter()
	require.Equal(t, ViewSkillJournal, d.ActiveViewID())
	return d
}

func activeJournalView(t *testing.T, d *TestDriver) *skillJournalView {
	t.Helper()
	v, ok := d.ActiveView().(*skillJournalView)
	require.True(t, ok, "expected *skillJournalView, got %T", d.ActiveView())
	return v
}

func TestJournal_ShowsDaysWithTodayMarked(t *testing.T) {
	backend := newFakeBackend(t)
	seedJournalSkill(backend, "Go Generics")
	d := journalDriver(t, backend)

	view := d.View()
	assert.Contains(t, view, "Go Generics")
	assert.Contains(t, view, "2026-08-31")
	assert.Contains(t, view, "(today)")
	assert.Contains(t, view, "intro chapter")
}

func TestJournal_CursorStartsOnToday(t *testing.T) {
	backend := newFakeBackend(t)
	seedJournalSkill(backend, "Go Generics")
	d := journalDriver(t, backend)

	v := activeJournalView(t, d)
	assert.Equal(t, 1, v.cursor)
}

func TestJournal_ToggleMarksTodayAndAdoptsServerRecord(t *testing.T) {
	backend := newFakeBackend(t)
	id := seedJournalSkill(backend, "Go Generics")
	d := journalDriver(t, backend)

	d.PressSpace()

	v := activeJournalView(t, d)
	today := v.skill.Day("2026-08-31")
	require.NotNil(t, today)
	assert.True(t, today.Completed)

	// The server recomputed the percentage from the days array.
	assert.Equal(t, 66, v.skill.Completed)
	assert.Equal(t, 1, backend.countRequests("PUT /api/skills/"+id+"/day/2026-08-31"))
}

func TestJournal_ToggleWithoutTodayEntryIsRejected(t *testing.T) {
	backend := newFakeBackend(t)
	backend.seedSkill("Archived Skill", []map[string]any{
		{"date": "2026-08-01", "note": "", "completed": false},
	})
	d := journalDriver(t, backend)

	d.PressSpace()

	toasts := d.Toasts()
	require.Len(t, toasts, 1)
	assert.Contains(t, toasts[0], "No journal entry for today")
	assert.Equal(t, 0, backend.countRequests("PUT /api/skills"))
}

func TestJournal_DayUpdatePropagatesToSkillList(t *testing.T) {
	backend := newFakeBackend(t)
	id := seedJournalSkill(backend, "Go Generics")
	d := journalDriver(t, backend)

	d.PressSpace()
	d.PressEsc() // back to the skills list

	require.Equal(t, ViewSkills, d.ActiveViewID())
	v, ok := d.ActiveView().(*skillsView)
	require.True(t, ok)
	skill, ok := v.skills.Get(id)
	require.True(t, ok)
	assert.Equal(t, 66, skill.Completed)
}

func TestJournal_FailedDayUpdateLeavesRecordUntouched(t *testing.T) {
	backend := newFakeBackend(t)
	seedJournalSkill(backend, "Go Generics")
	d := journalDriver(t, backend)

	backend.failWrites = true
	d.PressSpace()

	v := activeJournalView(t, d)
	today := v.skill.Day("2026-08-31")
	require.NotNil(t, today)
	assert.False(t, today.Completed)

	toasts := d.Toasts()
	require.Len(t, toasts, 1)
	assert.Contains(t, toasts[0], "Could not update day")
}

func TestJournal_NoteOnNonTodayIsRejected(t *testing.T) {
	backend := newFakeBackend(t)
	backend.seedSkill("Archived Skill", []map[string]any{
		{"date": "2026-08-01", "note": "", "completed": false},
	})
	d := journalDriver(t, backend)

	d.PressKey('n')

	assert.Equal(t, ViewSkillJournal, d.ActiveViewID())
	toasts := d.Toasts()
	require.Len(t, toasts, 1)
	assert.Contains(t, toasts[0], "Only today's entry")
}
