package interfaces

import (
	"context"

	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
)

// Repository is the document store for workspaces and pages. Identifiers
// supplied by callers are validated by the implementation; a malformed
// identifier fails with types.ErrInvalidID instead of reaching the store.
type Repository interface {
	// Workspace operations
	CreateWorkspace(ctx context.Context, ws *model.Workspace) (types.WorkspaceID, error)
	GetWorkspace(ctx context.Context, id types.WorkspaceID) (*model.Workspace, error)
	ListWorkspaces(ctx context.Context, limit int) ([]*model.Workspace, error)
	UpdateWorkspace(ctx context.Context, id types.WorkspaceID, update *model.WorkspaceUpdate) error

	// Page operations
	CreatePage(ctx context.Context, page *model.Page) (types.PageID, error)
	GetPage(ctx context.Context, id types.PageID) (*model.Page, error)
	ListPages(ctx context.Context, wsID types.WorkspaceID, folderPath string, limit int) ([]*model.Page, error)
	UpdatePage(ctx context.Context, id types.PageID, update *model.PageUpdate) error
	DeletePage(ctx context.Context, id types.PageID) error

	// SetPageLock overwrites the lock field wholesale; a nil lock removes
	// the field entirely.
	SetPageLock(ctx context.Context, id types.PageID, lock *model.PageLock) error

	// SearchPages matches the pattern case-insensitively against title,
	// content and tags within a workspace.
	SearchPages(ctx context.Context, wsID types.WorkspaceID, pattern string, limit int) ([]*model.Page, error)

	// Ping probes store connectivity for the health endpoint.
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
