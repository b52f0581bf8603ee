package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bijmantra/wsctl/internal/output"
)

var ErrPromptCanceled = errors.New("prompt canceled")

func runProgram(model tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(model)
	return prog.Run()
}

// PromptConfirmInline asks a single y/n question on one line.
func PromptConfirmInline(label string, theme Theme, useColor bool) (bool, error) {
	model := newConfirmInlineModel(label, theme, useColor)
	out, err := runProgram(model)
	if err != nil {
		return false, err
	}
	final := out.(confirmInlineModel)
	if final.err != nil {
		return false, final.err
	}
	return final.value, nil
}

type confirmInlineModel struct {
	label    string
	theme    Theme
	useColor bool
	input    textinput.Model
	value    bool
	err      error
}

func newConfirmInlineModel(label string, theme Theme, useColor bool) confirmInlineModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "y/n"
	ti.Focus()
	if useColor {
		ti.PlaceholderStyle = theme.Muted
	}
	return confirmInlineModel{
		label:    label,
		theme:    theme,
		useColor: useColor,
		input:    ti,
	}
}

func (m confirmInlineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m confirmInlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrPromptCanceled
			return m, tea.Quit
		case tea.KeyEnter:
			value := strings.ToLower(strings.TrimSpace(m.input.Value()))
			switch value {
			case "y", "yes":
				m.value = true
				return m, tea.Quit
			case "n", "no":
				m.value = false
				return m, tea.Quit
			default:
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m confirmInlineModel) View() string {
	prefix := promptPrefix(m.theme, m.useColor)
	label := promptLabel(m.theme, m.useColor, m.label)
	line := fmt.Sprintf("%s%s %s (y/n): %s", output.Indent, prefix, label, m.input.View())
	return line + "\n"
}

func promptPrefix(theme Theme, useColor bool) string {
	prefix := output.StepPrefix
	if useColor {
		return theme.Accent.Render(prefix)
	}
	return prefix
}

func promptLabel(theme Theme, useColor bool, label string) string {
	if useColor {
		return theme.Accent.Render(label)
	}
	return label
}

func mutedToken(theme Theme, useColor bool, token string) string {
	if useColor {
		return theme.Muted.Render(token)
	}
	return token
}
