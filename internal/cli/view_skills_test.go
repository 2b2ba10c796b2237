package cli

import (
	"testing"

	"github.com/avillega/pulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skillsDriver(t *testing.T, backend *fakeBackend) *TestDriver {
	t.Helper()
	d := NewTestDriver(t, testApp(t, backend))
	d.PressKey('s')
	require.Equal(t, ViewSkills, d.ActiveViewID())
	return d
}

func activeSkillsView(t *testing.T, d *TestDriver) *skillsView {
	t.Helper()
	v, ok := d.ActiveView().(*skillsView)
	require.True(t, ok, "expected *skillsView, got %T", d.ActiveView())
	return v
}

func TestSkills_ListShowsProgress(t *testing.T) {
	backend := newFakeBackend(t)
	seedJournalSkill(backend, "Go Generics")
	d := skillsDriver(t, backend)

	view := d.View()
	assert.Contains(t, view, "Go Generics")
	assert.Contains(t, view, "%")
}

func TestSkills_ViewModeTogglePersists(t *testing.T) {
	backend := newFakeBackend(t)
	seedJournalSkill(backend, "Go Generics")
	app := testApp(t, backend)
	d := NewTestDriver(t, app)
	d.PressKey('s')

	v := activeSkillsView(t, d)
	require.Equal(t, domain.ViewGrid, v.viewMode)

	d.PressKey('v')
	assert.Equal(t, domain.ViewList, v.viewMode)

	saved, err := app.Prefs.Get(skillsSection)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewList, saved.ViewMode)

	// A fresh view reads the stored preference.
	d2 := NewTestDriver(t, app)
	d2.PressKey('s')
	v2 := activeSkillsView(t, d2)
	assert.Equal(t, domain.ViewList, v2.viewMode)
}

func TestSkills_ToggleReRendersWithoutNetworkCalls(t *testing.T) {
	backend := newFakeBackend(t)
	seedJournalSkill(backend, "Go Generics")
	d := skillsDriver(t, backend)
	listsBefore := backend.countRequests("GET /api/skills")

	d.PressKey('v')
	gridOff := d.View()
	d.PressKey('v')
	gridOn := d.View()

	assert.Contains(t, gridOff, "Go Generics")
	assert.Contains(t, gridOn, "Go Generics")
	assert.Equal(t, listsBefore, backend.countRequests("GET /api/skills"))
}
