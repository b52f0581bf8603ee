package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bijmantra/wsctl/internal/catalog"
	"github.com/bijmantra/wsctl/internal/workspace"
)

func pickerModules() []catalog.Module {
	return []catalog.Module{
		{
			ID:   "irrigation",
			Name: "Irrigation",
			Pages: []catalog.Page{
				{ID: "schedule", Name: "Schedule"},
				{ID: "zones", Name: "Zones"},
				{ID: "sensors", Name: "Sensors"},
			},
		},
		{
			ID:   "carbon",
			Name: "Carbon",
			Pages: []catalog.Page{
				{ID: "dashboard", Name: "Carbon Dashboard"},
				{ID: "credits", Name: "Credits"},
			},
		},
	}
}

func pickerLimits() workspace.Limits {
	limits := workspace.DefaultLimits()
	limits.MaxPages = 4
	return limits
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runesMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPicker_ExpandAndTogglePage(t *testing.T) {
	m := newPagePicker(pickerModules(), pickerLimits(), DefaultTheme(), false)
	var selected []string

	// Cursor starts on the first module header; enter expands it.
	m, selected, _ = m.Update(keyMsg(tea.KeyEnter), selected)
	if !m.expanded["irrigation"] {
		t.Fatalf("expected irrigation expanded")
	}

	m, selected, _ = m.Update(keyMsg(tea.KeyDown), selected)
	m, selected, _ = m.Update(keyMsg(tea.KeyEnter), selected)
	if !workspace.ContainsID(selected, "schedule") {
		t.Fatalf("expected schedule selected, got %v", selected)
	}

	// Toggling again removes it.
	m, selected, _ = m.Update(keyMsg(tea.KeyEnter), selected)
	if len(selected) != 0 {
		t.Fatalf("expected empty selection, got %v", selected)
	}
}

func TestPicker_ToggleNoOpAtCap(t *testing.T) {
	limits := pickerLimits()
	limits.MaxPages = 1
	m := newPagePicker(pickerModules(), limits, DefaultTheme(), false)
	selected := []string{"zones"}

	m, selected, _ = m.Update(keyMsg(tea.KeyEnter), selected) // expand module
	m, selected, _ = m.Update(keyMsg(tea.KeyDown), selected)  // Schedule row
	m, selected, _ = m.Update(keyMsg(tea.KeyEnter), selected)
	if len(selected) != 1 || selected[0] != "zones" {
		t.Fatalf("expected cap no-op, got %v", selected)
	}
}

func TestPicker_SelectAllRespectsCap(t *testing.T) {
	m := newPagePicker(pickerModules(), pickerLimits(), DefaultTheme(), false)
	var selected []string

	// Select all of Irrigation (3 pages), then all of Carbon with cap 4.
	m, selected, _ = m.Update(keyMsg(tea.KeyCtrlA), selected)
	if len(selected) != 3 {
		t.Fatalf("expected 3 selected, got %v", selected)
	}

	m, selected, _ = m.Update(keyMsg(tea.KeyDown), selected) // onto carbon header (irrigation collapsed)
	if row, ok := m.currentRow(); !ok || row.module.ID != "carbon" {
		t.Fatalf("expected carbon header under cursor")
	}
	m, selected, _ = m.Update(keyMsg(tea.KeyCtrlA), selected)
	if len(selected) != 4 {
		t.Fatalf("expected cap of 4, got %v", selected)
	}
	if !workspace.ContainsID(selected, "dashboard") || workspace.ContainsID(selected, "credits") {
		t.Fatalf("expected partial fill in catalog order, got %v", selected)
	}
}

func TestPicker_CtrlAOnFullModuleDeselects(t *testing.T) {
	m := newPagePicker(pickerModules(), pickerLimits(), DefaultTheme(), false)
	selected := []string{"schedule", "zones", "sensors", "credits"}

	m, selected, _ = m.Update(keyMsg(tea.KeyCtrlA), selected)
	if len(selected) != 1 || selected[0] != "credits" {
		t.Fatalf("expected only credits left, got %v", selected)
	}
}

func TestPicker_ClearAll(t *testing.T) {
	m := newPagePicker(pickerModules(), pickerLimits(), DefaultTheme(), false)
	selected := []string{"schedule", "credits"}

	_, selected, _ = m.Update(keyMsg(tea.KeyCtrlX), selected)
	if len(selected) != 0 {
		t.Fatalf("expected cleared selection, got %v", selected)
	}
}

func TestPicker_SearchAutoExpandsAndPersists(t *testing.T) {
	m := newPagePicker(pickerModules(), pickerLimits(), DefaultTheme(), false)
	var selected []string

	m, selected, _ = m.Update(runesMsg("zones"), selected)
	if !m.expanded["irrigation"] {
		t.Fatalf("expected surviving module expanded during search")
	}

	rows := m.rows()
	if len(rows) != 2 || rows[1].kind != rowPage || rows[1].page.ID != "zones" {
		t.Fatalf("expected module header plus zones row, got %d rows", len(rows))
	}

	// Clearing the query must not collapse the module.
	m.search.SetValue("")
	found := false
	for _, row := range m.rows() {
		if row.kind == rowPage && row.page.ID == "schedule" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected irrigation to stay expanded after clearing search")
	}
}

func TestPicker_SearchByModuleName(t *testing.T) {
	m := newPagePicker(pickerModules(), pickerLimits(), DefaultTheme(), false)
	var selected []string

	m, _, _ = m.Update(runesMsg("carbon"), selected)
	rows := m.rows()
	if len(rows) != 3 {
		t.Fatalf("expected carbon header plus 2 pages, got %d rows", len(rows))
	}
	if rows[0].module.ID != "carbon" {
		t.Fatalf("expected carbon module, got %s", rows[0].module.ID)
	}
}

func TestPicker_ViewShowsCounter(t *testing.T) {
	m := newPagePicker(pickerModules(), pickerLimits(), DefaultTheme(), false)
	view := m.View([]string{"schedule", "zones"})
	if !strings.Contains(view, "2/4 selected") {
		t.Fatalf("expected counter in view:\n%s", view)
	}
	if !strings.Contains(view, "Irrigation (2/3)") {
		t.Fatalf("expected module count in view:\n%s", view)
	}
}
