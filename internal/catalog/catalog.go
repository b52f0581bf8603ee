package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const FileName = "catalog.yaml"

// Page is a selectable application view.
type Page struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Module is a logical grouping of pages in the catalog.
type Module struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Pages []Page `yaml:"pages"`
}

type file struct {
	Modules []Module `yaml:"modules"`
}

// Builtin returns the standard BijMantra page catalog. Display order
// follows this slice; selection never reorders it.
func Builtin() []Module {
	return []Module{
		{
			ID:   "field-ops",
			Name: "Field Operations",
			Pages: []Page{
				{ID: "irrigation", Name: "Irrigation"},
				{ID: "input-log", Name: "Input Log"},
				{ID: "field-map", Name: "Field Map"},
				{ID: "data-sync", Name: "Data Sync"},
			},
		},
		{
			ID:   "carbon",
			Name: "Carbon",
			Pages: []Page{
				{ID: "carbon-dashboard", Name: "Carbon Dashboard"},
				{ID: "carbon-credits", Name: "Carbon Credits"},
			},
		},
		{
			ID:   "breeding",
			Name: "Breeding",
			Pages: []Page{
				{ID: "breeding-history", Name: "Breeding History"},
				{ID: "planned-crosses", Name: "Planned Crosses"},
				{ID: "season-planning", Name: "Season Planning"},
				{ID: "performance-ranking", Name: "Performance Ranking"},
				{ID: "breeding-simulator", Name: "Breeding Simulator"},
			},
		},
		{
			ID:   "genetics",
			Name: "Genetics",
			Pages: []Page{
				{ID: "haplotype-analysis", Name: "Haplotype Analysis"},
				{ID: "marker-assisted-selection", Name: "Marker Assisted Selection"},
				{ID: "population-genetics", Name: "Population Genetics"},
				{ID: "genetic-gain-calculator", Name: "Genetic Gain Calculator"},
				{ID: "selection-index", Name: "Selection Index"},
			},
		},
		{
			ID:   "seed-ops",
			Name: "Seed Operations",
			Pages: []Page{
				{ID: "seed-inventory", Name: "Seed Inventory"},
				{ID: "seed-lots", Name: "Seed Lots"},
				{ID: "label-printing", Name: "Label Printing"},
			},
		},
		{
			ID:   "genebank",
			Name: "Gene Bank",
			Pages: []Page{
				{ID: "accessions", Name: "Accessions"},
				{ID: "conservation-status", Name: "Conservation Status"},
				{ID: "germplasm-requests", Name: "Germplasm Requests"},
			},
		},
		{
			ID:   "research",
			Name: "Research",
			Pages: []Page{
				{ID: "studies", Name: "Studies"},
				{ID: "yield-predictor", Name: "Yield Predictor"},
				{ID: "selection-decision", Name: "Selection Decision"},
				{ID: "mobile-app", Name: "Mobile App"},
			},
		},
	}
}

// Load reads a catalog override file. Modules without pages, blank ids
// and duplicate page ids are rejected.
func Load(path string) ([]Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file not found: %s", path)
		}
		return nil, err
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Modules) == 0 {
		return nil, fmt.Errorf("catalog has no modules")
	}
	seen := make(map[string]struct{})
	for _, module := range f.Modules {
		if strings.TrimSpace(module.ID) == "" {
			return nil, fmt.Errorf("module id is required")
		}
		if len(module.Pages) == 0 {
			return nil, fmt.Errorf("module %s has no pages", module.ID)
		}
		for _, page := range module.Pages {
			if strings.TrimSpace(page.ID) == "" {
				return nil, fmt.Errorf("page id is required in module %s", module.ID)
			}
			if _, exists := seen[page.ID]; exists {
				return nil, fmt.Errorf("duplicate page id: %s", page.ID)
			}
			seen[page.ID] = struct{}{}
		}
	}
	return f.Modules, nil
}

// Filter returns the modules whose name matches query case-insensitively,
// or that contain a page whose name matches. Matching modules keep every
// page; otherwise only matching pages survive. Modules left with zero
// pages drop out. An empty query returns the catalog unchanged.
func Filter(modules []Module, query string) []Module {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return modules
	}
	var out []Module
	for _, module := range modules {
		if strings.Contains(strings.ToLower(module.Name), q) {
			out = append(out, module)
			continue
		}
		var pages []Page
		for _, page := range module.Pages {
			if strings.Contains(strings.ToLower(page.Name), q) {
				pages = append(pages, page)
			}
		}
		if len(pages) == 0 {
			continue
		}
		out = append(out, Module{ID: module.ID, Name: module.Name, Pages: pages})
	}
	return out
}

// SelectionCounts returns, per module id, how many of its pages are in ids.
func SelectionCounts(modules []Module, ids []string) map[string]int {
	selected := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}
	counts := make(map[string]int, len(modules))
	for _, module := range modules {
		n := 0
		for _, page := range module.Pages {
			if _, exists := selected[page.ID]; exists {
				n++
			}
		}
		counts[module.ID] = n
	}
	return counts
}

// Selected returns the catalog reduced to the pages in ids, dropping
// modules with no selected pages. Used by the wizard review step.
func Selected(modules []Module, ids []string) []Module {
	selected := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}
	var out []Module
	for _, module := range modules {
		var pages []Page
		for _, page := range module.Pages {
			if _, exists := selected[page.ID]; exists {
				pages = append(pages, page)
			}
		}
		if len(pages) == 0 {
			continue
		}
		out = append(out, Module{ID: module.ID, Name: module.Name, Pages: pages})
	}
	return out
}

// PageIDSet returns the set of all page ids in the catalog.
func PageIDSet(modules []Module) map[string]struct{} {
	out := make(map[string]struct{})
	for _, module := range modules {
		for _, page := range module.Pages {
			out[page.ID] = struct{}{}
		}
	}
	return out
}

// PageIDs returns a module's page ids in display order.
func PageIDs(module Module) []string {
	ids := make([]string, 0, len(module.Pages))
	for _, page := range module.Pages {
		ids = append(ids, page.ID)
	}
	return ids
}

// FindPage looks a page up by id across the catalog.
func FindPage(modules []Module, id string) (Page, Module, bool) {
	for _, module := range modules {
		for _, page := range module.Pages {
			if page.ID == id {
				return page, module, true
			}
		}
	}
	return Page{}, Module{}, false
}

// TotalPages counts every page in the catalog.
func TotalPages(modules []Module) int {
	n := 0
	for _, module := range modules {
		n += len(module.Pages)
	}
	return n
}
