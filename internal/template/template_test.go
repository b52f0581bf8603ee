package template

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()

	tmpl, ok := registry.Get("field-scout")
	if !ok {
		t.Fatalf("expected field-scout template")
	}
	if tmpl.Name != "Field Scout" || len(tmpl.PageIDs) == 0 {
		t.Fatalf("unexpected template: %+v", tmpl)
	}

	if _, ok := registry.Get("no-such-template"); ok {
		t.Fatalf("expected miss for unknown id")
	}
}

func TestRegistry_UserTemplateAndDuplicateSkip(t *testing.T) {
	registry := NewRegistry(
		Template{ID: "custom", Name: "Custom", PageIDs: []string{"irrigation"}},
		Template{ID: "field-scout", Name: "Shadowed", PageIDs: []string{"irrigation"}},
	)

	if _, ok := registry.Get("custom"); !ok {
		t.Fatalf("expected custom template")
	}
	tmpl, _ := registry.Get("field-scout")
	if tmpl.Name != "Field Scout" {
		t.Fatalf("built-in should win over duplicate id, got %q", tmpl.Name)
	}
	if len(registry.All()) != len(Builtin())+1 {
		t.Fatalf("expected %d templates, got %d", len(Builtin())+1, len(registry.All()))
	}
}

func TestRegistry_Restrict(t *testing.T) {
	registry := NewRegistry(Template{ID: "lab-only", Name: "Lab Only", PageIDs: []string{"haplotype-analysis"}})

	// A catalog holding only the genetics-lab pages keeps that built-in
	// and the user template, and drops every other built-in.
	known := make(map[string]struct{})
	labTmpl, _ := registry.Get("genetics-lab")
	for _, id := range labTmpl.PageIDs {
		known[id] = struct{}{}
	}

	restricted := registry.Restrict(known)
	if _, ok := restricted.Get("genetics-lab"); !ok {
		t.Fatalf("expected genetics-lab to survive")
	}
	if _, ok := restricted.Get("lab-only"); !ok {
		t.Fatalf("expected user template to survive")
	}
	if _, ok := restricted.Get("field-scout"); ok {
		t.Fatalf("expected field-scout dropped")
	}
	if got := len(restricted.All()); got != 2 {
		t.Fatalf("expected 2 templates, got %d", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := `templates:
  - id: trial-team
    name: Trial Team
    icon: chart
    color: blue
    pages:
      - studies
      - yield-predictor
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	templates, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(templates) != 1 || templates[0].ID != "trial-team" {
		t.Fatalf("unexpected templates: %v", templates)
	}
	if len(templates[0].PageIDs) != 2 {
		t.Fatalf("expected 2 pages, got %v", templates[0].PageIDs)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	templates, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if templates != nil {
		t.Fatalf("expected no templates, got %v", templates)
	}
}

func TestLoad_RejectsMissingID(t *testing.T) {
	dir := t.TempDir()
	content := `templates:
  - name: No ID
    pages: [studies]
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected id error")
	}
}

func TestValidate(t *testing.T) {
	known := map[string]struct{}{"studies": {}, "irrigation": {}}

	if err := Validate(Template{ID: "ok", PageIDs: []string{"studies"}}, known); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := Validate(Template{ID: "bad", PageIDs: []string{"mystery"}}, known); err == nil {
		t.Fatalf("expected unknown page error")
	}
}
