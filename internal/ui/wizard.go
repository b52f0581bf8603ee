package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bijmantra/wsctl/internal/catalog"
	"github.com/bijmantra/wsctl/internal/output"
	"github.com/bijmantra/wsctl/internal/template"
	"github.com/bijmantra/wsctl/internal/workspace"
)

// CreateWizardOptions wires the wizard to its providers. Catalog,
// templates, limits and the create action are all injected so tests can
// substitute fakes.
type CreateWizardOptions struct {
	Title     string
	Modules   []catalog.Module
	Templates template.Registry
	Limits    workspace.Limits
	Creator   workspace.Creator
	Theme     Theme
	UseColor  bool
}

// RunCreateWizard drives the three-step creation flow and returns the id
// of the created workspace. Cancel returns ErrPromptCanceled.
func RunCreateWizard(ctx context.Context, opts CreateWizardOptions) (string, error) {
	model := newCreateWizardModel(ctx, opts)
	out, err := runProgram(model)
	if err != nil {
		return "", err
	}
	final := out.(createWizardModel)
	if final.err != nil {
		return "", final.err
	}
	return final.createdID, nil
}

type wizardStep int

const (
	stepInfo wizardStep = iota
	stepPages
	stepReview
)

func (s wizardStep) label() string {
	switch s {
	case stepInfo:
		return "Basic Info"
	case stepPages:
		return "Select Pages"
	default:
		return "Review"
	}
}

type infoField int

const (
	fieldTemplate infoField = iota
	fieldName
	fieldDescription
	fieldColor
	fieldIcon
)

type createWizardModel struct {
	ctx  context.Context
	opts CreateWizardOptions

	step  wizardStep
	field infoField
	form  workspace.FormData

	tmplSearch textinput.Model
	tmplCursor int

	nameInput   textinput.Model
	descInput   textinput.Model
	colorCursor int
	iconCursor  int
	colorKeys   []string
	iconKeys    []string

	picker pagePickerModel

	errorLine string
	createdID string
	err       error
}

func newCreateWizardModel(ctx context.Context, opts CreateWizardOptions) createWizardModel {
	m := createWizardModel{ctx: ctx, opts: opts}
	m.reset()
	return m
}

// reset is the single place wizard state returns to its opening shape.
// Every close path discards the model, so a fresh Run always starts here.
func (m *createWizardModel) reset() {
	theme, useColor := m.opts.Theme, m.opts.UseColor

	tmplSearch := textinput.New()
	tmplSearch.Prompt = ""
	tmplSearch.Placeholder = "search templates"
	tmplSearch.Focus()
	if useColor {
		tmplSearch.PlaceholderStyle = theme.Muted
	}

	nameInput := textinput.New()
	nameInput.Prompt = ""
	nameInput.Placeholder = "workspace name"
	nameInput.CharLimit = m.opts.Limits.MaxNameLength + 1
	if useColor {
		nameInput.PlaceholderStyle = theme.Muted
	}

	descInput := textinput.New()
	descInput.Prompt = ""
	descInput.Placeholder = "optional description"
	descInput.CharLimit = m.opts.Limits.MaxDescriptionLength + 1
	if useColor {
		descInput.PlaceholderStyle = theme.Muted
	}

	m.step = stepInfo
	m.field = fieldTemplate
	m.form = workspace.NewFormData()
	m.tmplSearch = tmplSearch
	m.tmplCursor = 0
	m.nameInput = nameInput
	m.descInput = descInput
	m.colorKeys = workspace.ColorKeys()
	m.iconKeys = workspace.IconKeys()
	m.colorCursor = indexOf(m.colorKeys, m.form.Color)
	m.iconCursor = indexOf(m.iconKeys, m.form.Icon)
	m.picker = newPagePicker(m.opts.Modules, m.opts.Limits, theme, useColor)
	m.errorLine = ""
	m.createdID = ""
	m.err = nil
}

func (m createWizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m createWizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrPromptCanceled
			return m, tea.Quit
		case tea.KeyShiftTab:
			return m.goBack(), nil
		}
	}

	switch m.step {
	case stepInfo:
		return m.updateInfo(msg)
	case stepPages:
		return m.updatePages(msg)
	default:
		return m.updateReview(msg)
	}
}

// goBack moves one field or one step backward and clears the error.
func (m createWizardModel) goBack() createWizardModel {
	m.errorLine = ""
	switch m.step {
	case stepReview:
		m.step = stepPages
	case stepPages:
		m.step = stepInfo
		m.enterField(fieldName)
	case stepInfo:
		if m.field > fieldTemplate {
			m.enterField(m.field - 1)
		}
	}
	return m
}

func (m *createWizardModel) enterField(field infoField) {
	m.field = field
	m.nameInput.Blur()
	m.descInput.Blur()
	m.tmplSearch.Blur()
	switch field {
	case fieldTemplate:
		m.tmplSearch.Focus()
	case fieldName:
		m.nameInput.Focus()
	case fieldDescription:
		m.descInput.Focus()
	}
}

func (m createWizardModel) filteredTemplates() []template.Template {
	q := strings.ToLower(strings.TrimSpace(m.tmplSearch.Value()))
	all := m.opts.Templates.All()
	if q == "" {
		return all
	}
	var out []template.Template
	for _, tmpl := range all {
		if strings.Contains(strings.ToLower(tmpl.Name), q) {
			out = append(out, tmpl)
		}
	}
	return out
}

// applyTemplate overwrites the whole form from the template and records
// its id. Unknown ids are a no-op.
func (m *createWizardModel) applyTemplate(id string) {
	tmpl, ok := m.opts.Templates.Get(id)
	if !ok {
		return
	}
	m.form = workspace.FormData{
		Name:        tmpl.Name,
		Description: tmpl.Description,
		Icon:        tmpl.Icon,
		Color:       tmpl.Color,
		PageIDs:     append([]string(nil), tmpl.PageIDs...),
		TemplateID:  tmpl.ID,
	}
	m.nameInput.SetValue(tmpl.Name)
	m.nameInput.CursorEnd()
	m.descInput.SetValue(tmpl.Description)
	m.descInput.CursorEnd()
	m.colorCursor = indexOf(m.colorKeys, tmpl.Color)
	m.iconCursor = indexOf(m.iconKeys, tmpl.Icon)
}

func (m createWizardModel) updateInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch m.field {
		case fieldTemplate:
			switch key.Type {
			case tea.KeyUp:
				if m.tmplCursor > 0 {
					m.tmplCursor--
				}
				return m, nil
			case tea.KeyDown:
				// Index 0 is the blank choice; templates follow.
				if m.tmplCursor < len(m.filteredTemplates()) {
					m.tmplCursor++
				}
				return m, nil
			case tea.KeyEnter:
				if m.tmplCursor > 0 {
					filtered := m.filteredTemplates()
					if m.tmplCursor-1 < len(filtered) {
						m.applyTemplate(filtered[m.tmplCursor-1].ID)
					}
				}
				m.enterField(fieldName)
				return m, nil
			}
		case fieldName:
			if key.Type == tea.KeyEnter {
				m.form.Name = m.nameInput.Value()
				m.enterField(fieldDescription)
				return m, nil
			}
		case fieldDescription:
			if key.Type == tea.KeyEnter {
				m.form.Description = m.descInput.Value()
				m.enterField(fieldColor)
				return m, nil
			}
		case fieldColor:
			switch key.Type {
			case tea.KeyLeft:
				m.colorCursor = cycle(m.colorCursor-1, len(m.colorKeys))
				m.form.Color = m.colorKeys[m.colorCursor]
				return m, nil
			case tea.KeyRight:
				m.colorCursor = cycle(m.colorCursor+1, len(m.colorKeys))
				m.form.Color = m.colorKeys[m.colorCursor]
				return m, nil
			case tea.KeyEnter:
				m.enterField(fieldIcon)
				return m, nil
			}
		case fieldIcon:
			switch key.Type {
			case tea.KeyLeft:
				m.iconCursor = cycle(m.iconCursor-1, len(m.iconKeys))
				m.form.Icon = m.iconKeys[m.iconCursor]
				return m, nil
			case tea.KeyRight:
				m.iconCursor = cycle(m.iconCursor+1, len(m.iconKeys))
				m.form.Icon = m.iconKeys[m.iconCursor]
				return m, nil
			case tea.KeyEnter:
				m.form.Name = m.nameInput.Value()
				m.form.Description = m.descInput.Value()
				if errLine := workspace.ValidateBasicInfo(m.form, m.opts.Limits); errLine != "" {
					m.errorLine = errLine
					m.enterField(fieldName)
					return m, nil
				}
				m.errorLine = ""
				m.step = stepPages
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.field {
	case fieldTemplate:
		m.tmplSearch, cmd = m.tmplSearch.Update(msg)
		if limit := len(m.filteredTemplates()); m.tmplCursor > limit {
			m.tmplCursor = limit
		}
	case fieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.form.Name = m.nameInput.Value()
		if strings.TrimSpace(m.form.Name) != "" {
			m.errorLine = ""
		}
	case fieldDescription:
		m.descInput, cmd = m.descInput.Update(msg)
		m.form.Description = m.descInput.Value()
	}
	return m, cmd
}

func (m createWizardModel) updatePages(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlD {
		if errLine := workspace.ValidatePageCount(m.form, m.opts.Limits); errLine != "" {
			m.errorLine = errLine
			return m, nil
		}
		m.errorLine = ""
		m.step = stepReview
		return m, nil
	}

	before := len(m.form.PageIDs)
	var cmd tea.Cmd
	m.picker, m.form.PageIDs, cmd = m.picker.Update(msg, m.form.PageIDs)
	if len(m.form.PageIDs) != before {
		m.errorLine = ""
	}
	return m, cmd
}

func (m createWizardModel) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || key.Type != tea.KeyEnter {
		return m, nil
	}
	input := workspace.BuildCreateInput(m.form)
	id, err := m.opts.Creator.Create(m.ctx, input)
	if err != nil || id == "" {
		m.errorLine = workspace.CreateFailedMessage
		return m, nil
	}
	m.createdID = id
	return m, tea.Quit
}

func (m createWizardModel) View() string {
	var b strings.Builder
	header := fmt.Sprintf("%s (step %d/3: %s)", m.opts.Title, int(m.step)+1, m.step.label())
	if m.opts.UseColor {
		header = m.opts.Theme.Header.Render(header)
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	title := "Inputs"
	if m.opts.UseColor {
		title = m.opts.Theme.SectionTitle.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n")

	switch m.step {
	case stepInfo:
		m.viewInfo(&b)
	case stepPages:
		b.WriteString(m.picker.View(m.form.PageIDs))
	default:
		m.viewReview(&b)
	}

	if m.errorLine != "" {
		msg := m.errorLine
		if m.opts.UseColor {
			msg = m.opts.Theme.Error.Render(msg)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", output.Indent, mutedToken(m.opts.Theme, m.opts.UseColor, output.LogConnector), msg))
	}

	m.viewHints(&b)
	return b.String()
}

func (m createWizardModel) viewInfo(b *strings.Builder) {
	prefix := promptPrefix(m.opts.Theme, m.opts.UseColor)

	tmplValue := m.templateLabel()
	if m.field == fieldTemplate {
		tmplValue = m.tmplSearch.View()
	}
	b.WriteString(fmt.Sprintf("%s%s %s: %s\n", output.Indent, prefix, promptLabel(m.opts.Theme, m.opts.UseColor, "template"), tmplValue))
	if m.field == fieldTemplate {
		m.viewTemplateChoices(b)
	}

	nameValue := m.form.Name
	if m.field == fieldName {
		nameValue = m.nameInput.View()
	}
	b.WriteString(fmt.Sprintf("%s%s %s: %s\n", output.Indent, prefix, promptLabel(m.opts.Theme, m.opts.UseColor, "name"), nameValue))

	descValue := m.form.Description
	if m.field == fieldDescription {
		descValue = m.descInput.View()
	}
	b.WriteString(fmt.Sprintf("%s%s %s: %s\n", output.Indent, prefix, promptLabel(m.opts.Theme, m.opts.UseColor, "description"), descValue))

	b.WriteString(fmt.Sprintf("%s%s %s: %s\n", output.Indent, prefix, promptLabel(m.opts.Theme, m.opts.UseColor, "color"), m.colorValue()))
	b.WriteString(fmt.Sprintf("%s%s %s: %s\n", output.Indent, prefix, promptLabel(m.opts.Theme, m.opts.UseColor, "icon"), m.iconValue()))
}

func (m createWizardModel) templateLabel() string {
	if m.form.TemplateID == "" {
		return "(blank)"
	}
	if tmpl, ok := m.opts.Templates.Get(m.form.TemplateID); ok {
		return tmpl.Name
	}
	return m.form.TemplateID
}

func (m createWizardModel) viewTemplateChoices(b *strings.Builder) {
	connector := mutedToken(m.opts.Theme, m.opts.UseColor, output.LogConnector)
	blank := "start blank"
	if m.tmplCursor == 0 && m.opts.UseColor {
		blank = lipgloss.NewStyle().Bold(true).Render(blank)
	}
	b.WriteString(fmt.Sprintf("%s%s %s\n", output.Indent+output.Indent, connector, blank))
	for i, tmpl := range m.filteredTemplates() {
		display := tmpl.Name
		if desc := strings.TrimSpace(tmpl.Description); desc != "" {
			if m.opts.UseColor {
				display += m.opts.Theme.Muted.Render(" - " + desc)
			} else {
				display += " - " + desc
			}
		}
		if i+1 == m.tmplCursor && m.opts.UseColor {
			display = lipgloss.NewStyle().Bold(true).Render(tmpl.Name)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", output.Indent+output.Indent, connector, display))
	}
}

func (m createWizardModel) colorValue() string {
	key := m.colorKeys[m.colorCursor]
	label := workspace.Colors[key].Label
	swatch := "●"
	if m.opts.UseColor {
		swatch = ColorStyle(key).Render(swatch)
	}
	if m.field == fieldColor {
		return fmt.Sprintf("◀ %s %s ▶", swatch, label)
	}
	return fmt.Sprintf("%s %s", swatch, label)
}

func (m createWizardModel) iconValue() string {
	key := m.iconKeys[m.iconCursor]
	glyph := workspace.IconGlyph(key)
	if m.field == fieldIcon {
		return fmt.Sprintf("◀ %s %s ▶", glyph, key)
	}
	return fmt.Sprintf("%s %s", glyph, key)
}

func (m createWizardModel) viewReview(b *strings.Builder) {
	prefix := promptPrefix(m.opts.Theme, m.opts.UseColor)
	b.WriteString(fmt.Sprintf("%s%s %s: %s\n", output.Indent, prefix, promptLabel(m.opts.Theme, m.opts.UseColor, "name"), strings.TrimSpace(m.form.Name)))
	if desc := strings.TrimSpace(m.form.Description); desc != "" {
		b.WriteString(fmt.Sprintf("%s%s %s: %s\n", output.Indent, prefix, promptLabel(m.opts.Theme, m.opts.UseColor, "description"), desc))
	}
	b.WriteString(fmt.Sprintf("%s%s %s: %s\n", output.Indent, prefix, promptLabel(m.opts.Theme, m.opts.UseColor, "appearance"), m.colorValue()+"  "+m.iconValue()))

	selected := catalog.Selected(m.opts.Modules, m.form.PageIDs)
	badges := fmt.Sprintf("%d pages, %d modules", len(m.form.PageIDs), len(selected))
	if m.opts.UseColor {
		badges = m.opts.Theme.Success.Render(badges)
	}
	b.WriteString(fmt.Sprintf("%s%s %s: %s\n", output.Indent, prefix, promptLabel(m.opts.Theme, m.opts.UseColor, "selection"), badges))

	for _, module := range selected {
		b.WriteString(fmt.Sprintf("%s%s %s (%d)\n", output.Indent+output.Indent, mutedToken(m.opts.Theme, m.opts.UseColor, output.LogConnector), module.Name, len(module.Pages)))
		for i, page := range module.Pages {
			connector := "├─"
			if i == len(module.Pages)-1 {
				connector = "└─"
			}
			line := fmt.Sprintf("%s%s %s", output.Indent+output.Indent+output.Indent, connector, page.Name)
			if m.opts.UseColor {
				line = m.opts.Theme.Muted.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
}

func (m createWizardModel) viewHints(b *strings.Builder) {
	infoPrefix := mutedToken(m.opts.Theme, m.opts.UseColor, output.StepPrefix)
	b.WriteString("\n")
	switch m.step {
	case stepInfo:
		b.WriteString(fmt.Sprintf("%s%s enter: next field\n", output.Indent, infoPrefix))
		b.WriteString(fmt.Sprintf("%s%s shift+tab: previous field\n", output.Indent, infoPrefix))
	case stepPages:
		b.WriteString(fmt.Sprintf("%s%s enter: toggle page or module\n", output.Indent, infoPrefix))
		b.WriteString(fmt.Sprintf("%s%s ctrl+a: select/deselect module, ctrl+x: clear\n", output.Indent, infoPrefix))
		b.WriteString(fmt.Sprintf("%s%s ctrl+d: review, shift+tab: back\n", output.Indent, infoPrefix))
	default:
		b.WriteString(fmt.Sprintf("%s%s enter: create workspace, shift+tab: back\n", output.Indent, infoPrefix))
	}
}

func indexOf(items []string, value string) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return 0
}

func cycle(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
