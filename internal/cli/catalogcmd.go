package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/bijmantra/wsctl/internal/catalog"
)

func (a *app) runTemplates(args []string) error {
	if len(args) == 1 && isHelpArg(args[0]) {
		printTemplatesHelp(os.Stdout)
		return nil
	}
	if len(args) != 0 {
		return fmt.Errorf("usage: wsctl templates")
	}

	a.renderer.Section("Templates")
	for _, tmpl := range a.registry.All() {
		suffix := fmt.Sprintf("(%d pages)", len(tmpl.PageIDs))
		a.renderer.BulletWithDescription(tmpl.ID, tmpl.Description, suffix)
	}
	return nil
}

func (a *app) runPages(args []string) error {
	if len(args) == 1 && isHelpArg(args[0]) {
		printPagesHelp(os.Stdout)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("usage: wsctl pages [query]")
	}
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	modules := catalog.Filter(a.modules, query)
	if len(modules) == 0 {
		// Name search missed; the query may be a page id.
		if page, module, ok := catalog.FindPage(a.modules, strings.TrimSpace(query)); ok {
			a.renderer.Section(module.Name)
			a.renderer.Bullet(fmt.Sprintf("%s (%s)", page.Name, page.ID))
			return nil
		}
		a.renderer.Bullet("no matches")
		return nil
	}
	title := fmt.Sprintf("Pages (%d)", catalog.TotalPages(a.modules))
	if strings.TrimSpace(query) != "" {
		title = fmt.Sprintf("Pages matching %q", query)
	}
	a.renderer.Section(title)
	for _, module := range modules {
		a.renderer.Bullet(fmt.Sprintf("%s (%d)", module.Name, len(module.Pages)))
		for i, page := range module.Pages {
			connector := "├─"
			if i == len(module.Pages)-1 {
				connector = "└─"
			}
			a.renderer.TreeLine(connector, fmt.Sprintf("%s (%s)", page.Name, page.ID))
		}
	}
	return nil
}
