package usecase

import (
	"context"

	"github.com/docfold/docfold/pkg/domain/model"
)

func (x *UseCase) CreateWorkspace(ctx context.Context, input *model.CreateWorkspaceInput) (*model.Workspace, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	branch := input.DefaultBranch
	if branch == "" {
		branch = "main"
	}

	id, err := x.clients.Repository().CreateWorkspace(ctx, &model.Workspace{
		Name:          input.Name,
		Token:         input.Token,
		RepoFullName:  input.RepoFullName,
		DefaultBranch: branch,
	})
	if err != nil {
		return nil, err
	}

	return x.clients.Repository().GetWorkspace(ctx, id)
}

func (x *UseCase) ListWorkspaces(ctx context.Context) ([]*model.Workspace, error) {
	return x.clients.Repository().ListWorkspaces(ctx, workspaceListLimit)
}

func (x *UseCase) ConnectRepo(ctx context.Context, input *model.ConnectRepoInput) (*model.Workspace, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token := input.Token
	if err := x.clients.Repository().UpdateWorkspace(ctx, input.WorkspaceID, &model.WorkspaceUpdate{
		Token: &token,
	}); err != nil {
		return nil, err
	}

	return x.clients.Repository().GetWorkspace(ctx, input.WorkspaceID)
}

func (x *UseCase) SelectRepo(ctx context.Context, input *model.SelectRepoInput) (*model.Workspace, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fullName := input.Owner + "/" + input.Repo
	branch := input.DefaultBranch
	if branch == "" {
		branch = "main"
	}

	if err := x.clients.Repository().UpdateWorkspace(ctx, input.WorkspaceID, &model.WorkspaceUpdate{
		RepoFullName:  &fullName,
		DefaultBranch: &branch,
	}); err != nil {
		return nil, err
	}

	return x.clients.Repository().GetWorkspace(ctx, input.WorkspaceID)
}
