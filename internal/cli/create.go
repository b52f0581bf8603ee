package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/bijmantra/wsctl/internal/ui"
	"github.com/bijmantra/wsctl/internal/workspace"
)

// stringSliceFlag collects repeated --page values.
type stringSliceFlag struct {
	values []string
}

func (f *stringSliceFlag) String() string {
	return strings.Join(f.values, ",")
}

func (f *stringSliceFlag) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("page id must not be empty")
	}
	f.values = append(f.values, value)
	return nil
}

func (a *app) runCreate(ctx context.Context, args []string, noPrompt bool) error {
	createFlags := flag.NewFlagSet("create", flag.ContinueOnError)
	var name string
	var description string
	var icon string
	var color string
	var templateID string
	var pages stringSliceFlag
	var helpFlag bool
	createFlags.StringVar(&name, "name", "", "workspace name")
	createFlags.StringVar(&description, "description", "", "workspace description")
	createFlags.StringVar(&icon, "icon", "", "icon key")
	createFlags.StringVar(&color, "color", "", "color key")
	createFlags.StringVar(&templateID, "template", "", "template id")
	createFlags.Var(&pages, "page", "page id (repeatable)")
	createFlags.BoolVar(&helpFlag, "help", false, "show help")
	createFlags.BoolVar(&helpFlag, "h", false, "show help")
	createFlags.SetOutput(os.Stdout)
	createFlags.Usage = func() {
		printCreateHelp(os.Stdout)
	}
	if err := createFlags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if helpFlag {
		printCreateHelp(os.Stdout)
		return nil
	}

	if noPrompt {
		return a.createNoPrompt(ctx, name, description, icon, color, templateID, pages.values)
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("interactive create requires a TTY; use --no-prompt with flags")
	}

	id, err := ui.RunCreateWizard(ctx, ui.CreateWizardOptions{
		Title:     "wsctl create",
		Modules:   a.modules,
		Templates: a.registry,
		Limits:    a.limits,
		Creator:   a.backend(),
		Theme:     a.theme,
		UseColor:  a.useColor,
	})
	if err != nil {
		if errors.Is(err, ui.ErrPromptCanceled) {
			return nil
		}
		return err
	}

	a.renderer.Blank()
	a.renderer.Section("Result")
	a.renderer.Bullet(fmt.Sprintf("created workspace %s", id))
	return nil
}

// createNoPrompt builds the form from flags and applies the same
// validation the wizard steps enforce.
func (a *app) createNoPrompt(ctx context.Context, name, description, icon, color, templateID string, pageIDs []string) error {
	form := workspace.NewFormData()
	if templateID != "" {
		tmpl, ok := a.registry.Get(templateID)
		if !ok {
			return fmt.Errorf("unknown template: %s", templateID)
		}
		form = workspace.FormData{
			Name:        tmpl.Name,
			Description: tmpl.Description,
			Icon:        tmpl.Icon,
			Color:       tmpl.Color,
			PageIDs:     append([]string(nil), tmpl.PageIDs...),
			TemplateID:  tmpl.ID,
		}
	}
	if name != "" {
		form.Name = name
	}
	if description != "" {
		form.Description = description
	}
	if icon != "" {
		form.Icon = icon
	}
	if color != "" {
		if !workspace.ValidColor(color) {
			return fmt.Errorf("unknown color: %s", color)
		}
		form.Color = color
	}
	if len(pageIDs) > 0 {
		form.PageIDs = workspace.SelectAll(nil, pageIDs, a.limits.MaxPages)
	}

	if msg := workspace.ValidateBasicInfo(form, a.limits); msg != "" {
		return fmt.Errorf("%s", strings.ToLower(msg[:1])+msg[1:])
	}
	if msg := workspace.ValidatePageCount(form, a.limits); msg != "" {
		return fmt.Errorf("%s", strings.ToLower(msg[:1])+msg[1:])
	}

	id, err := a.backend().Create(ctx, workspace.BuildCreateInput(form))
	if err != nil {
		return err
	}
	a.renderer.Section("Result")
	a.renderer.Bullet(fmt.Sprintf("created workspace %s", id))
	return nil
}
