package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bijmantra/wsctl/internal/output"
)

type Renderer struct {
	out      io.Writer
	theme    Theme
	useColor bool
}

func NewRenderer(out io.Writer, theme Theme, useColor bool) *Renderer {
	return &Renderer{
		out:      out,
		theme:    theme,
		useColor: useColor,
	}
}

func (r *Renderer) Header(text string) {
	r.writeLine(r.style(text, r.theme.Header))
}

func (r *Renderer) Blank() {
	fmt.Fprintln(r.out)
}

func (r *Renderer) Section(title string) {
	r.writeLine(r.style(title, r.theme.SectionTitle))
}

func (r *Renderer) Bullet(text string) {
	prefix := output.StepPrefix + " "
	if r.useColor {
		prefix = r.theme.Muted.Render(output.StepPrefix) + " "
	}
	r.writeLine(output.Indent + prefix + text)
}

func (r *Renderer) BulletWithDescription(id, description, suffix string) {
	prefix := output.StepPrefix + " "
	if r.useColor {
		prefix = r.theme.Muted.Render(prefix)
	}
	line := id
	desc := strings.TrimSpace(description)
	if desc != "" {
		if r.useColor {
			line += r.theme.Muted.Render(" - " + desc)
		} else {
			line += " - " + desc
		}
	}
	if strings.TrimSpace(suffix) != "" {
		value := " " + strings.TrimSpace(suffix)
		if r.useColor {
			value = r.theme.Muted.Render(value)
		}
		line += value
	}
	r.writeLine(output.Indent + prefix + line)
}

func (r *Renderer) BulletError(text string) {
	prefix := output.StepPrefix + " "
	if r.useColor {
		prefix = r.theme.Error.Render(prefix)
		text = r.theme.Error.Render(text)
	}
	r.writeLine(output.Indent + prefix + text)
}

func (r *Renderer) TreeLine(connector, text string) {
	line := fmt.Sprintf("%s%s %s", output.Indent+output.Indent, connector, text)
	if r.useColor {
		line = r.theme.Muted.Render(line)
	}
	r.writeLine(line)
}

func (r *Renderer) style(text string, style lipgloss.Style) string {
	if !r.useColor {
		return text
	}
	return style.Render(text)
}

func (r *Renderer) writeLine(text string) {
	fmt.Fprintln(r.out, text)
}
