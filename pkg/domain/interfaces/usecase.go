package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
)

type UseCase interface {
	// Workspaces
	CreateWorkspace(ctx context.Context, input *model.CreateWorkspaceInput) (*model.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]*model.Workspace, error)

	// Pages
	CreatePage(ctx context.Context, input *model.CreatePageInput) (*model.Page, error)
	GetPage(ctx context.Context, id types.PageID) (*model.Page, error)
	ListPages(ctx context.Context, wsID types.WorkspaceID, folderPath string) ([]*model.Page, error)
	UpdatePage(ctx context.Context, id types.PageID, update *model.PageUpdate) (*model.Page, error)
	DeletePage(ctx context.Context, id types.PageID) error
	LockPage(ctx context.Context, id types.PageID, input *model.LockInput) (*model.Page, error)
	UnlockPage(ctx context.Context, id types.PageID) (*model.Page, error)

	// Repository sync
	ConnectRepo(ctx context.Context, input *model.ConnectRepoInput) (*model.Workspace, error)
	SelectRepo(ctx context.Context, input *model.SelectRepoInput) (*model.Workspace, error)
	ListRepos(ctx context.Context, wsID types.WorkspaceID) ([]*model.RemoteRepository, error)
	SyncPage(ctx context.Context, input *model.SyncPageInput) (*model.Page, error)
	PullPage(ctx context.Context, input *model.PullPageInput) (*model.Page, error)
	ListHistory(ctx context.Context, wsID types.WorkspaceID, path string) ([]*model.RemoteCommit, error)

	// Search
	SearchPages(ctx context.Context, wsID types.WorkspaceID, query string) ([]*model.Page, error)

	// PingStore probes store connectivity for the /test endpoint.
	PingStore(ctx context.Context) error
}
