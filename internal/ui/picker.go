package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bijmantra/wsctl/internal/catalog"
	"github.com/bijmantra/wsctl/internal/output"
	"github.com/bijmantra/wsctl/internal/workspace"
)

// pagePickerModel is the searchable, collapsible, cap-enforcing page
// selector embedded in wizard step 2. It is fully controlled: the
// selection is passed into Update and View and returned to the caller,
// never stored on the model. The model owns only the search string,
// the expanded-module set and the cursor.
type pagePickerModel struct {
	modules  []catalog.Module
	limits   workspace.Limits
	theme    Theme
	useColor bool

	search   textinput.Model
	expanded map[string]bool
	cursor   int
}

type pickerRowKind int

const (
	rowModule pickerRowKind = iota
	rowPage
)

type pickerRow struct {
	kind   pickerRowKind
	module catalog.Module
	page   catalog.Page
}

func newPagePicker(modules []catalog.Module, limits workspace.Limits, theme Theme, useColor bool) pagePickerModel {
	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "search pages"
	search.Focus()
	if useColor {
		search.PlaceholderStyle = theme.Muted
	}
	return pagePickerModel{
		modules:  modules,
		limits:   limits,
		theme:    theme,
		useColor: useColor,
		search:   search,
		expanded: make(map[string]bool),
	}
}

func (m pagePickerModel) visible() []catalog.Module {
	return catalog.Filter(m.modules, m.search.Value())
}

func (m pagePickerModel) rows() []pickerRow {
	searching := strings.TrimSpace(m.search.Value()) != ""
	var out []pickerRow
	for _, module := range m.visible() {
		out = append(out, pickerRow{kind: rowModule, module: module})
		if !searching && !m.expanded[module.ID] {
			continue
		}
		for _, page := range module.Pages {
			out = append(out, pickerRow{kind: rowPage, module: module, page: page})
		}
	}
	return out
}

func (m pagePickerModel) currentRow() (pickerRow, bool) {
	rows := m.rows()
	if len(rows) == 0 || m.cursor >= len(rows) {
		return pickerRow{}, false
	}
	return rows[m.cursor], true
}

// Update applies one message to the picker and returns the possibly
// changed selection.
func (m pagePickerModel) Update(msg tea.Msg, selected []string) (pagePickerModel, []string, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, selected, nil
		case tea.KeyDown:
			if m.cursor < len(m.rows())-1 {
				m.cursor++
			}
			return m, selected, nil
		case tea.KeyEnter:
			row, ok := m.currentRow()
			if !ok {
				return m, selected, nil
			}
			if row.kind == rowModule {
				m.expanded[row.module.ID] = !m.expanded[row.module.ID]
				return m, selected, nil
			}
			return m, workspace.ToggleID(selected, row.page.ID, m.limits.MaxPages), nil
		case tea.KeyCtrlA:
			row, ok := m.currentRow()
			if !ok {
				return m, selected, nil
			}
			ids := catalog.PageIDs(row.module)
			if moduleFullySelected(row.module, selected) {
				return m, workspace.DeselectAll(selected, ids), nil
			}
			return m, workspace.SelectAll(selected, ids, m.limits.MaxPages), nil
		case tea.KeyCtrlX:
			return m, nil, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if strings.TrimSpace(m.search.Value()) != "" {
		// Searching expands every surviving module and leaves it
		// expanded after the query is cleared.
		for _, module := range m.visible() {
			m.expanded[module.ID] = true
		}
	}
	if rows := m.rows(); m.cursor >= len(rows) {
		m.cursor = maxInt(0, len(rows)-1)
	}
	return m, selected, cmd
}

func moduleFullySelected(module catalog.Module, selected []string) bool {
	for _, page := range module.Pages {
		if !workspace.ContainsID(selected, page.ID) {
			return false
		}
	}
	return len(module.Pages) > 0
}

func (m pagePickerModel) View(selected []string) string {
	var b strings.Builder
	prefix := promptPrefix(m.theme, m.useColor)
	label := promptLabel(m.theme, m.useColor, "pages")
	counter := fmt.Sprintf("%d/%d selected", len(selected), m.limits.MaxPages)
	if m.useColor {
		if len(selected) >= m.limits.MaxPages {
			counter = m.theme.Warn.Render(counter)
		} else {
			counter = m.theme.Muted.Render(counter)
		}
	}
	b.WriteString(fmt.Sprintf("%s%s %s: %s  %s\n", output.Indent, prefix, label, m.search.View(), counter))

	rows := m.rows()
	if len(rows) == 0 {
		msg := "no matches"
		if m.useColor {
			msg = m.theme.Muted.Render(msg)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", output.Indent+output.Indent, mutedToken(m.theme, m.useColor, output.LogConnector), msg))
		return b.String()
	}

	counts := catalog.SelectionCounts(m.modules, selected)
	atCap := len(selected) >= m.limits.MaxPages
	searching := strings.TrimSpace(m.search.Value()) != ""
	for i, row := range rows {
		if row.kind == rowModule {
			b.WriteString(m.moduleLine(row.module, counts[row.module.ID], i == m.cursor, searching))
			continue
		}
		b.WriteString(m.pageLine(row.page, workspace.ContainsID(selected, row.page.ID), atCap, i == m.cursor))
	}
	return b.String()
}

func (m pagePickerModel) moduleLine(module catalog.Module, count int, current, searching bool) string {
	marker := "▸"
	if searching || m.expanded[module.ID] {
		marker = "▾"
	}
	display := fmt.Sprintf("%s %s (%d/%d)", marker, module.Name, count, len(module.Pages))
	if current && m.useColor {
		display = lipgloss.NewStyle().Bold(true).Render(display)
	}
	return fmt.Sprintf("%s%s %s\n", output.Indent+output.Indent, mutedToken(m.theme, m.useColor, output.LogConnector), display)
}

func (m pagePickerModel) pageLine(page catalog.Page, selected, atCap, current bool) string {
	box := "[ ]"
	if selected {
		box = "[x]"
		if m.useColor {
			box = m.theme.Success.Render(box)
		}
	} else if atCap && m.useColor {
		box = m.theme.Muted.Render(box)
	}
	display := fmt.Sprintf("%s %s", box, page.Name)
	if !selected && atCap && m.useColor {
		display = fmt.Sprintf("%s %s", box, m.theme.Muted.Render(page.Name))
	}
	if current && m.useColor {
		display = fmt.Sprintf("%s %s", box, lipgloss.NewStyle().Bold(true).Render(page.Name))
	}
	return fmt.Sprintf("%s   %s\n", output.Indent+output.Indent, display)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
