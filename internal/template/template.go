package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const FileName = "templates.yaml"

// Template is a predefined workspace configuration offered as a
// starting point in the creation wizard.
type Template struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Icon        string   `yaml:"icon"`
	Color       string   `yaml:"color"`
	PageIDs     []string `yaml:"pages"`
}

type file struct {
	Templates []Template `yaml:"templates"`
}

// Builtin returns the shipped workspace templates.
func Builtin() []Template {
	return []Template{
		{
			ID:          "field-scout",
			Name:        "Field Scout",
			Description: "Day-to-day field monitoring and logging",
			Icon:        "field",
			Color:       "green",
			PageIDs:     []string{"irrigation", "input-log", "field-map", "data-sync"},
		},
		{
			ID:          "breeding-core",
			Name:        "Breeding Core",
			Description: "Crossing plans and season work for breeders",
			Icon:        "sprout",
			Color:       "blue",
			PageIDs:     []string{"breeding-history", "planned-crosses", "season-planning", "performance-ranking"},
		},
		{
			ID:          "genetics-lab",
			Name:        "Genetics Lab",
			Description: "Marker and population analysis tooling",
			Icon:        "dna",
			Color:       "purple",
			PageIDs:     []string{"haplotype-analysis", "marker-assisted-selection", "population-genetics", "selection-index"},
		},
		{
			ID:          "genebank-curator",
			Name:        "Gene Bank Curator",
			Description: "Accession tracking and conservation",
			Icon:        "seed",
			Color:       "teal",
			PageIDs:     []string{"accessions", "conservation-status", "germplasm-requests", "seed-inventory"},
		},
	}
}

// Registry resolves templates by id.
type Registry struct {
	templates []Template
}

// NewRegistry builds a registry from the built-in templates followed by
// any extra user templates. Later entries with a duplicate id are
// skipped.
func NewRegistry(extra ...Template) Registry {
	var templates []Template
	seen := make(map[string]struct{})
	for _, tmpl := range append(Builtin(), extra...) {
		if _, exists := seen[tmpl.ID]; exists {
			continue
		}
		seen[tmpl.ID] = struct{}{}
		templates = append(templates, tmpl)
	}
	return Registry{templates: templates}
}

// Get looks a template up by id. A miss returns ok=false and is not an
// error; applying an unknown template is a no-op for callers.
func (r Registry) Get(id string) (Template, bool) {
	for _, tmpl := range r.templates {
		if tmpl.ID == id {
			return tmpl, true
		}
	}
	return Template{}, false
}

// All returns the templates in registration order.
func (r Registry) All() []Template {
	return append([]Template(nil), r.templates...)
}

// Restrict drops templates referencing pages absent from pageIDs. A
// catalog override may remove pages the built-ins assume; those
// templates must not be offered.
func (r Registry) Restrict(pageIDs map[string]struct{}) Registry {
	var kept []Template
	for _, tmpl := range r.templates {
		if Validate(tmpl, pageIDs) != nil {
			continue
		}
		kept = append(kept, tmpl)
	}
	return Registry{templates: kept}
}

// Load reads user templates from rootDir. A missing file is not an
// error; the registry then holds only the built-ins.
func Load(rootDir string) ([]Template, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("root directory is required")
	}
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	for _, tmpl := range f.Templates {
		if strings.TrimSpace(tmpl.ID) == "" {
			return nil, fmt.Errorf("template id is required")
		}
		if strings.TrimSpace(tmpl.Name) == "" {
			return nil, fmt.Errorf("template name is required: %s", tmpl.ID)
		}
	}
	return f.Templates, nil
}

// Validate checks that a template only references known page ids.
func Validate(tmpl Template, pageIDs map[string]struct{}) error {
	for _, id := range tmpl.PageIDs {
		if _, exists := pageIDs[id]; !exists {
			return fmt.Errorf("template %s references unknown page: %s", tmpl.ID, id)
		}
	}
	return nil
}
