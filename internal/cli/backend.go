package cli

import (
	"context"

	"github.com/bijmantra/wsctl/internal/api"
	"github.com/bijmantra/wsctl/internal/store"
	"github.com/bijmantra/wsctl/internal/workspace"
)

// backend is the persistence boundary the commands talk to. The local
// yaml store and the platform API both satisfy it.
type backend interface {
	workspace.Creator
	List(ctx context.Context) ([]workspace.Workspace, error)
	Delete(ctx context.Context, id string) error
}

func (a *app) localStore() *store.Store {
	return store.New(a.cfg.RootDir, a.limits, a.modules)
}

func (a *app) backend() backend {
	if a.cfg.RemoteEnabled() {
		return api.NewClient(a.cfg.APIBaseURL, a.cfg.APIToken)
	}
	return localBackend{store: a.localStore()}
}

// localBackend adapts the store to the context-taking backend surface.
type localBackend struct {
	store *store.Store
}

func (b localBackend) Create(ctx context.Context, input workspace.CreateInput) (string, error) {
	return b.store.Create(ctx, input)
}

func (b localBackend) List(ctx context.Context) ([]workspace.Workspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b.store.List()
}

func (b localBackend) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.store.Delete(id)
}
