package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/bijmantra/wsctl/internal/catalog"
	"github.com/bijmantra/wsctl/internal/config"
	"github.com/bijmantra/wsctl/internal/template"
	"github.com/bijmantra/wsctl/internal/ui"
	"github.com/bijmantra/wsctl/internal/workspace"
)

// Run is the CLI entrypoint.
func Run() error {
	fs := flag.NewFlagSet("wsctl", flag.ContinueOnError)
	var rootFlag string
	var noPrompt bool
	var helpFlag bool
	fs.StringVar(&rootFlag, "root", "", "override wsctl root")
	fs.BoolVar(&noPrompt, "no-prompt", false, "disable interactive prompt")
	fs.BoolVar(&helpFlag, "help", false, "show help")
	fs.BoolVar(&helpFlag, "h", false, "show help")
	fs.SetOutput(os.Stdout)
	fs.Usage = func() {
		printGlobalHelp(os.Stdout)
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	args := fs.Args()
	if helpFlag {
		if len(args) > 0 && printCommandHelp(args[0], os.Stdout) {
			return nil
		}
		printGlobalHelp(os.Stdout)
		return nil
	}
	if len(args) == 0 {
		printGlobalHelp(os.Stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) > 1 && printCommandHelp(args[1], os.Stdout) {
			return nil
		}
		printGlobalHelp(os.Stdout)
		return nil
	}

	app, err := setup(rootFlag)
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch args[0] {
	case "create":
		return app.runCreate(ctx, args[1:], noPrompt)
	case "ls":
		return app.runList(ctx, args[1:])
	case "show":
		return app.runShow(ctx, args[1:])
	case "use":
		return app.runUse(args[1:])
	case "rm":
		return app.runRemove(ctx, args[1:], noPrompt)
	case "templates":
		return app.runTemplates(args[1:])
	case "pages":
		return app.runPages(args[1:])
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

// app holds the resolved providers shared by all commands.
type app struct {
	cfg      config.Config
	modules  []catalog.Module
	registry template.Registry
	limits   workspace.Limits
	theme    ui.Theme
	useColor bool
	renderer *ui.Renderer
}

func setup(rootFlag string) (*app, error) {
	cfg, err := config.Load(rootFlag)
	if err != nil {
		return nil, err
	}

	modules := catalog.Builtin()
	overridePath := filepath.Join(cfg.RootDir, catalog.FileName)
	if _, statErr := os.Stat(overridePath); statErr == nil {
		modules, err = catalog.Load(overridePath)
		if err != nil {
			return nil, err
		}
	}

	userTemplates, err := template.Load(cfg.RootDir)
	if err != nil {
		return nil, err
	}
	pageIDs := catalog.PageIDSet(modules)
	for _, tmpl := range userTemplates {
		if err := template.Validate(tmpl, pageIDs); err != nil {
			return nil, err
		}
	}
	// User templates error on unknown pages above; Restrict then drops
	// built-ins whose pages an override catalog removed.
	registry := template.NewRegistry(userTemplates...).Restrict(pageIDs)

	theme := ui.DefaultTheme()
	useColor := isatty.IsTerminal(os.Stdout.Fd())
	return &app{
		cfg:      cfg,
		modules:  modules,
		registry: registry,
		limits:   workspace.DefaultLimits(),
		theme:    theme,
		useColor: useColor,
		renderer: ui.NewRenderer(os.Stdout, theme, useColor),
	}, nil
}

func isHelpArg(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
