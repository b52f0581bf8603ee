package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/bijmantra/wsctl/internal/catalog"
	"github.com/bijmantra/wsctl/internal/workspace"
)

const fileName = "workspaces.yaml"

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrWorkspaceLimit    = errors.New("workspace limit reached")
	ErrDuplicateName     = errors.New("workspace name already in use")
)

// Store persists workspaces as a yaml file under the wsctl root dir.
type Store struct {
	rootDir string
	limits  workspace.Limits
	pageIDs map[string]struct{}
}

type file struct {
	SchemaVersion int                   `yaml:"schema_version"`
	Active        string                `yaml:"active,omitempty"`
	Workspaces    []workspace.Workspace `yaml:"workspaces"`
}

func New(rootDir string, limits workspace.Limits, modules []catalog.Module) *Store {
	return &Store{
		rootDir: rootDir,
		limits:  limits,
		pageIDs: catalog.PageIDSet(modules),
	}
}

// Create validates the input against the limits and the page catalog,
// then appends a new workspace record. It satisfies workspace.Creator.
func (s *Store) Create(ctx context.Context, input workspace.CreateInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.validate(input); err != nil {
		return "", err
	}

	f, err := s.load()
	if err != nil {
		return "", err
	}
	if len(f.Workspaces) >= s.limits.MaxWorkspaces {
		return "", ErrWorkspaceLimit
	}
	for _, ws := range f.Workspaces {
		if strings.EqualFold(ws.Name, input.Name) {
			return "", ErrDuplicateName
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	ws := workspace.Workspace{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		PageIDs:     append([]string(nil), input.PageIDs...),
		TemplateID:  input.TemplateID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.Workspaces = append(f.Workspaces, ws)
	if err := s.save(f); err != nil {
		return "", err
	}
	return ws.ID, nil
}

func (s *Store) validate(input workspace.CreateInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return fmt.Errorf("workspace name is required")
	}
	if utf8.RuneCountInString(name) > s.limits.MaxNameLength {
		return fmt.Errorf("workspace name exceeds %d characters", s.limits.MaxNameLength)
	}
	if utf8.RuneCountInString(input.Description) > s.limits.MaxDescriptionLength {
		return fmt.Errorf("description exceeds %d characters", s.limits.MaxDescriptionLength)
	}
	if len(input.PageIDs) < s.limits.MinPages {
		return fmt.Errorf("at least %d page is required", s.limits.MinPages)
	}
	if len(input.PageIDs) > s.limits.MaxPages {
		return fmt.Errorf("at most %d pages are allowed", s.limits.MaxPages)
	}
	seen := make(map[string]struct{}, len(input.PageIDs))
	for _, id := range input.PageIDs {
		if _, exists := seen[id]; exists {
			return fmt.Errorf("duplicate page id: %s", id)
		}
		seen[id] = struct{}{}
		if _, exists := s.pageIDs[id]; !exists {
			return fmt.Errorf("unknown page id: %s", id)
		}
	}
	if input.Color != "" && !workspace.ValidColor(input.Color) {
		return fmt.Errorf("unknown color: %s", input.Color)
	}
	return nil
}

// List returns all workspaces in creation order.
func (s *Store) List() ([]workspace.Workspace, error) {
	f, err := s.load()
	if err != nil {
		return nil, err
	}
	return f.Workspaces, nil
}

// Get returns a workspace by id.
func (s *Store) Get(id string) (workspace.Workspace, error) {
	f, err := s.load()
	if err != nil {
		return workspace.Workspace{}, err
	}
	for _, ws := range f.Workspaces {
		if ws.ID == id {
			return ws, nil
		}
	}
	return workspace.Workspace{}, ErrWorkspaceNotFound
}

// Delete removes a workspace. Deleting the active workspace clears the
// active marker.
func (s *Store) Delete(id string) error {
	f, err := s.load()
	if err != nil {
		return err
	}
	kept := make([]workspace.Workspace, 0, len(f.Workspaces))
	found := false
	for _, ws := range f.Workspaces {
		if ws.ID == id {
			found = true
			continue
		}
		kept = append(kept, ws)
	}
	if !found {
		return ErrWorkspaceNotFound
	}
	f.Workspaces = kept
	if f.Active == id {
		f.Active = ""
	}
	return s.save(f)
}

// SetActive marks a workspace as the active one.
func (s *Store) SetActive(id string) error {
	f, err := s.load()
	if err != nil {
		return err
	}
	found := false
	for i, ws := range f.Workspaces {
		if ws.ID == id {
			found = true
			f.Workspaces[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		}
	}
	if !found {
		return ErrWorkspaceNotFound
	}
	f.Active = id
	return s.save(f)
}

// Active returns the active workspace id, or "" when none is set.
func (s *Store) Active() (string, error) {
	f, err := s.load()
	if err != nil {
		return "", err
	}
	return f.Active, nil
}

func (s *Store) path() string {
	return filepath.Join(s.rootDir, fileName)
}

func (s *Store) load() (file, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return file{SchemaVersion: 1}, nil
		}
		return file{}, err
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return file{}, fmt.Errorf("parse workspaces: %w", err)
	}
	if f.SchemaVersion == 0 {
		f.SchemaVersion = 1
	}
	return f, nil
}

func (s *Store) save(f file) error {
	if s.rootDir == "" {
		return fmt.Errorf("root directory is required")
	}
	if err := os.MkdirAll(s.rootDir, 0o755); err != nil {
		return fmt.Errorf("create root dir: %w", err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal workspaces: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0o644); err != nil {
		return fmt.Errorf("write workspaces: %w", err)
	}
	return nil
}
