package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"

	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
	"github.com/docfold/docfold/pkg/infra"
	"github.com/docfold/docfold/pkg/usecase"
)

func newTestUseCase() *usecase.UseCase {
	return usecase.New(infra.New())
}

func absentWorkspaceID() types.WorkspaceID {
	return types.WorkspaceID(uuid.NewString())
}

func TestCreateWorkspace(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	t.Run("defaults", func(t *testing.T) {
		ws := gt.R1(uc.CreateWorkspace(ctx, &model.CreateWorkspaceInput{
			Name: "engineering",
		})).NoError(t)

		gt.V(t, ws.Name).Equal("engineering")
		gt.V(t, ws.DefaultBranch).Equal("main")
		gt.V(t, ws.SyncState()).Equal(types.SyncUnconnected)
		gt.True(t, ws.ID != "")
	})

	t.Run("with token and repo", func(t *testing.T) {
		ws := gt.R1(uc.CreateWorkspace(ctx, &model.CreateWorkspaceInput{
			Name:          "docs",
			Token:         "ghp_dummy",
			RepoFullName:  "docfold/handbook",
			DefaultBranch: "develop",
		})).NoError(t)

		gt.V(t, ws.SyncState()).Equal(types.SyncRepoSelected)
		gt.V(t, ws.DefaultBranch).Equal("develop")
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := uc.CreateWorkspace(ctx, &model.CreateWorkspaceInput{})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("view never carries the token", func(t *testing.T) {
		ws := gt.R1(uc.CreateWorkspace(ctx, &model.CreateWorkspaceInput{
			Name:  "secret-holder",
			Token: "ghp_supersecret",
		})).NoError(t)

		view := ws.View()
		gt.True(t, view.Connected)
		gt.V(t, view.Name).Equal("secret-holder")

		bare := gt.R1(uc.CreateWorkspace(ctx, &model.CreateWorkspaceInput{
			Name: "bare",
		})).NoError(t)
		gt.False(t, bare.View().Connected)
	})
}

func TestListWorkspaces(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	gt.A(t, gt.R1(uc.ListWorkspaces(ctx)).NoError(t)).Length(0)

	gt.R1(uc.CreateWorkspace(ctx, &model.CreateWorkspaceInput{Name: "a"})).NoError(t)
	gt.R1(uc.CreateWorkspace(ctx, &model.CreateWorkspaceInput{Name: "b"})).NoError(t)

	workspaces := gt.R1(uc.ListWorkspaces(ctx)).NoError(t)
	gt.A(t, workspaces).Length(2)
}

func TestConnectRepo(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	ws := gt.R1(uc.CreateWorkspace(ctx, &model.CreateWorkspaceInput{
		Name: "sync-target",
	})).NoError(t)
	gt.V(t, ws.SyncState()).Equal(types.SyncUnconnected)

	t.Run("stores the token", func(t *testing.T) {
		updated := gt.R1(uc.ConnectRepo(ctx, &model.ConnectRepoInput{
			WorkspaceID: ws.ID,
			Token:       "ghp_dummy",
		})).NoError(t)

		gt.V(t, updated.SyncState()).Equal(types.SyncConnected)
		gt.True(t, updated.View().Connected)
	})

	t.Run("token is required", func(t *testing.T) {
		_, err := uc.ConnectRepo(ctx, &model.ConnectRepoInput{
			WorkspaceID: ws.ID,
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("missing workspace", func(t *testing.T) {
		_, err := uc.ConnectRepo(ctx, &model.ConnectRepoInput{
			WorkspaceID: absentWorkspaceID(),
			Token:       "ghp_dummy",
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})
}

func TestSelectRepo(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	ws := gt.R1(uc.CreateWorkspace(ctx, &model.CreateWorkspaceInput{
		Name:  "sync-target",
		Token: "ghp_dummy",
	})).NoError(t)

	t.Run("stores owner/repo and branch", func(t *testing.T) {
		updated := gt.R1(uc.SelectRepo(ctx, &model.SelectRepoInput{
			WorkspaceID:   ws.ID,
			Owner:         "docfold",
			Repo:          "handbook",
			DefaultBranch: "develop",
		})).NoError(t)

		gt.V(t, updated.RepoFullName).Equal("docfold/handbook")
		gt.V(t, updated.DefaultBranch).Equal("develop")
		gt.V(t, updated.SyncState()).Equal(types.SyncRepoSelected)

		owner, repo, ok := updated.RepoOwnerName()
		gt.True(t, ok)
		gt.V(t, owner).Equal("docfold")
		gt.V(t, repo).Equal("handbook")
	})

	t.Run("branch falls back to main", func(t *testing.T) {
		updated := gt.R1(uc.SelectRepo(ctx, &model.SelectRepoInput{
			WorkspaceID: ws.ID,
			Owner:       "docfold",
			Repo:        "handbook",
		})).NoError(t)

		gt.V(t, updated.DefaultBranch).Equal("main")
	})

	t.Run("owner and repo are required", func(t *testing.T) {
		_, err := uc.SelectRepo(ctx, &model.SelectRepoInput{
			WorkspaceID: ws.ID,
			Owner:       "docfold",
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("missing workspace", func(t *testing.T) {
		_, err := uc.SelectRepo(ctx, &model.SelectRepoInput{
			WorkspaceID: absentWorkspaceID(),
			Owner:       "docfold",
			Repo:        "handbook",
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})
}
