package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/bijmantra/wsctl/internal/ui"
)

func printGlobalHelp(w io.Writer) {
	theme, useColor := helpTheme(w)
	fmt.Fprintln(w, "Usage: wsctl <command> [flags] [args]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, helpSectionTitle(theme, useColor, "Commands:"))
	fmt.Fprintln(w, helpCommand(theme, useColor, "create", "create a workspace (interactive wizard)"))
	fmt.Fprintln(w, helpCommand(theme, useColor, "ls", "list workspaces"))
	fmt.Fprintln(w, helpCommand(theme, useColor, "show <WORKSPACE_ID>", "show a workspace's pages by module"))
	fmt.Fprintln(w, helpCommand(theme, useColor, "use <WORKSPACE_ID>", "mark a workspace as active"))
	fmt.Fprintln(w, helpCommand(theme, useColor, "rm [--force] <WORKSPACE_ID>", "delete a workspace"))
	fmt.Fprintln(w, helpCommand(theme, useColor, "templates", "list workspace templates"))
	fmt.Fprintln(w, helpCommand(theme, useColor, "pages [query]", "browse or search the page catalog"))
	fmt.Fprintln(w, helpCommand(theme, useColor, "help [command]", "show help for a command"))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, helpSectionTitle(theme, useColor, "Global flags:"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--root <path>", "override wsctl root"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--no-prompt", "disable interactive prompt"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--help, -h", "show help"))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, helpSectionTitle(theme, useColor, "Environment:"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "WSCTL_ROOT", "root directory for local data (default ~/.wsctl)"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "BIJMANTRA_API_URL", "use the platform API instead of the local store"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "BIJMANTRA_API_TOKEN", "bearer token for the platform API"))
}

func printCommandHelp(cmd string, w io.Writer) bool {
	switch cmd {
	case "create":
		printCreateHelp(w)
	case "ls":
		printListHelp(w)
	case "show":
		printShowHelp(w)
	case "use":
		printUseHelp(w)
	case "rm":
		printRemoveHelp(w)
	case "templates":
		printTemplatesHelp(w)
	case "pages":
		printPagesHelp(w)
	default:
		return false
	}
	return true
}

func printCreateHelp(w io.Writer) {
	theme, useColor := helpTheme(w)
	fmt.Fprintln(w, "Usage: wsctl create [--name <name>] [--description <text>] [--icon <key>] [--color <key>] [--template <id>] [--page <id> ...]")
	fmt.Fprintln(w, helpFlag(theme, useColor, "--name <name>", "workspace name"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--description <text>", "workspace description"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--icon <key>", "icon key (see wsctl templates)"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--color <key>", "color key"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--template <id>", "start from a template"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--page <id>", "page id (repeatable)"))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  Without --no-prompt this opens the interactive wizard.")
}

func printListHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: wsctl ls")
	fmt.Fprintln(w, "  List workspaces; the active one is marked with *")
}

func printShowHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: wsctl show <WORKSPACE_ID>")
	fmt.Fprintln(w, "  Show a workspace's pages grouped by module")
}

func printUseHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: wsctl use <WORKSPACE_ID>")
	fmt.Fprintln(w, "  Mark a workspace as the active one")
}

func printRemoveHelp(w io.Writer) {
	theme, useColor := helpTheme(w)
	fmt.Fprintln(w, "Usage: wsctl rm [--force] <WORKSPACE_ID>")
	fmt.Fprintln(w, helpFlag(theme, useColor, "--force", "skip the confirmation prompt"))
}

func printTemplatesHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: wsctl templates")
	fmt.Fprintln(w, "  List built-in and user templates")
}

func printPagesHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: wsctl pages [query]")
	fmt.Fprintln(w, "  Browse the page catalog; query matches page or module names")
}

func helpTheme(w io.Writer) (ui.Theme, bool) {
	theme := ui.DefaultTheme()
	if file, ok := w.(*os.File); ok {
		return theme, isatty.IsTerminal(file.Fd())
	}
	return theme, false
}

func helpSectionTitle(theme ui.Theme, useColor bool, title string) string {
	if !useColor {
		return title
	}
	return theme.SectionTitle.Render(title)
}

func helpCommand(theme ui.Theme, useColor bool, name, description string) string {
	if useColor {
		return fmt.Sprintf("  %s  %s", theme.Accent.Render(name), description)
	}
	return fmt.Sprintf("  %-30s %s", name, description)
}

func helpFlag(theme ui.Theme, useColor bool, flag, description string) string {
	if useColor {
		return fmt.Sprintf("  %s  %s", theme.Accent.Render(flag), description)
	}
	return fmt.Sprintf("  %-22s %s", flag, description)
}
