package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/bijmantra/wsctl/internal/catalog"
	"github.com/bijmantra/wsctl/internal/output"
	"github.com/bijmantra/wsctl/internal/ui"
	"github.com/bijmantra/wsctl/internal/workspace"
)

func (a *app) runList(ctx context.Context, args []string) error {
	if len(args) == 1 && isHelpArg(args[0]) {
		printListHelp(os.Stdout)
		return nil
	}
	if len(args) != 0 {
		return fmt.Errorf("usage: wsctl ls")
	}

	workspaces, err := a.backend().List(ctx)
	if err != nil {
		return err
	}
	active := ""
	if !a.cfg.RemoteEnabled() {
		active, err = a.localStore().Active()
		if err != nil {
			return err
		}
	}

	a.renderer.Section("Workspaces")
	if len(workspaces) == 0 {
		a.renderer.Bullet("none")
		return nil
	}
	for _, ws := range workspaces {
		suffix := fmt.Sprintf("(%d pages)", len(ws.PageIDs))
		if ws.ID == active {
			suffix += " *"
		}
		glyph := workspace.IconGlyph(ws.Icon)
		name := ws.Name
		if a.useColor {
			name = ui.ColorStyle(ws.Color).Render(name)
		}
		a.renderer.BulletWithDescription(fmt.Sprintf("%s %s", glyph, name), ws.Description, suffix)
		a.renderer.TreeLine(output.LogConnector, ws.ID)
	}
	return nil
}

func (a *app) runShow(ctx context.Context, args []string) error {
	if len(args) == 1 && isHelpArg(args[0]) {
		printShowHelp(os.Stdout)
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: wsctl show <workspace-id>")
	}

	ws, err := a.findWorkspace(ctx, args[0])
	if err != nil {
		return err
	}

	name := ws.Name
	if a.useColor {
		name = ui.ColorStyle(ws.Color).Render(name)
	}
	a.renderer.Header(fmt.Sprintf("%s %s", workspace.IconGlyph(ws.Icon), name))
	if desc := strings.TrimSpace(ws.Description); desc != "" {
		a.renderer.Bullet(desc)
	}
	a.renderer.Blank()

	selected := catalog.Selected(a.modules, ws.PageIDs)
	a.renderer.Section(fmt.Sprintf("Pages (%d in %d modules)", len(ws.PageIDs), len(selected)))
	for _, module := range selected {
		a.renderer.Bullet(module.Name)
		for i, page := range module.Pages {
			connector := "├─"
			if i == len(module.Pages)-1 {
				connector = "└─"
			}
			a.renderer.TreeLine(connector, page.Name)
		}
	}
	return nil
}

func (a *app) runUse(args []string) error {
	if len(args) == 1 && isHelpArg(args[0]) {
		printUseHelp(os.Stdout)
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: wsctl use <workspace-id>")
	}
	if a.cfg.RemoteEnabled() {
		return fmt.Errorf("use is not supported with a remote backend")
	}

	if err := a.localStore().SetActive(args[0]); err != nil {
		return err
	}
	a.renderer.Section("Result")
	a.renderer.Bullet(fmt.Sprintf("active workspace is now %s", args[0]))
	return nil
}

func (a *app) runRemove(ctx context.Context, args []string, noPrompt bool) error {
	force := false
	rest := make([]string, 0, len(args))
	for _, arg := range args {
		switch arg {
		case "--force", "-f":
			force = true
		case "-h", "--help", "help":
			printRemoveHelp(os.Stdout)
			return nil
		default:
			rest = append(rest, arg)
		}
	}
	if len(rest) != 1 {
		return fmt.Errorf("usage: wsctl rm [--force] <workspace-id>")
	}
	id := rest[0]

	ws, err := a.findWorkspace(ctx, id)
	if err != nil {
		return err
	}

	if !force {
		if noPrompt || !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("refusing to delete without confirmation; pass --force")
		}
		confirmed, err := ui.PromptConfirmInline(fmt.Sprintf("delete workspace %q", ws.Name), a.theme, a.useColor)
		if err != nil {
			return err
		}
		if !confirmed {
			a.renderer.Bullet("canceled")
			return nil
		}
	}

	if err := a.backend().Delete(ctx, id); err != nil {
		return err
	}
	a.renderer.Section("Result")
	a.renderer.Bullet(fmt.Sprintf("deleted workspace %s", id))
	return nil
}

func (a *app) findWorkspace(ctx context.Context, id string) (workspace.Workspace, error) {
	workspaces, err := a.backend().List(ctx)
	if err != nil {
		return workspace.Workspace{}, err
	}
	for _, ws := range workspaces {
		if ws.ID == id {
			return ws, nil
		}
	}
	return workspace.Workspace{}, fmt.Errorf("workspace not found: %s", id)
}
