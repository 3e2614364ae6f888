package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"

	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
	"github.com/docfold/docfold/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// requireSyncState loads a workspace and checks its repository linkage
// against the minimum state an operation needs.
func (x *UseCase) requireSyncState(ctx context.Context, wsID types.WorkspaceID, state types.SyncState) (*model.Workspace, error) {
	ws, err := x.clients.Repository().GetWorkspace(ctx, wsID)
	if err != nil {
		return nil, err
	}

	if ws.SyncState() < state {
		return nil, goerr.Wrap(types.ErrSyncNotConfigured, "GitHub not configured for workspace",
			goerr.V("workspace_id", wsID),
			goerr.V("state", ws.SyncState().String()),
			goerr.V("required", state.String()),
		)
	}

	return ws, nil
}

func (x *UseCase) ListRepos(ctx context.Context, wsID types.WorkspaceID) ([]*model.RemoteRepository, error) {
	ws, err := x.requireSyncState(ctx, wsID, types.SyncConnected)
	if err != nil {
		return nil, err
	}

	return x.clients.GitHub().ListRepos(ctx, ws.Token)
}

func (x *UseCase) SyncPage(ctx context.Context, input *model.SyncPageInput) (*model.Page, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page, err := x.clients.Repository().GetPage(ctx, input.PageID)
	if err != nil {
		return nil, err
	}

	ws, err := x.requireSyncState(ctx, page.WorkspaceID, types.SyncRepoSelected)
	if err != nil {
		return nil, err
	}

	owner, repo, ok := ws.RepoOwnerName()
	if !ok {
		return nil, goerr.Wrap(types.ErrSyncNotConfigured, "stored repository name is malformed",
			goerr.V("repo_full_name", ws.RepoFullName),
		)
	}
	branch := ws.Branch()

	// Fetch the current version token first; a missing file is fine, the
	// put below will create it.
	var sha string
	existing, err := x.clients.GitHub().GetContents(ctx, ws.Token, owner, repo, input.Path, branch)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		sha = existing.SHA
	}

	if err := x.clients.GitHub().PutContents(ctx, ws.Token, owner, repo, input.Path, &model.PutContentsInput{
		Message: input.Message(),
		Content: []byte(page.Content),
		Branch:  branch,
		SHA:     sha,
	}); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("synced page to repository",
		slog.Any("page_id", page.ID),
		slog.String("repo", ws.RepoFullName),
		slog.String("path", input.Path),
	)

	path := input.Path
	if err := x.clients.Repository().UpdatePage(ctx, page.ID, &model.PageUpdate{
		GitPath: &path,
	}); err != nil {
		return nil, err
	}

	return x.clients.Repository().GetPage(ctx, page.ID)
}

func (x *UseCase) PullPage(ctx context.Context, input *model.PullPageInput) (*model.Page, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// An absent page and a page without a git path are the same state to
	// the caller: there is nothing on the remote side to pull from.
	page, err := x.clients.Repository().GetPage(ctx, input.PageID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrSyncNotConfigured, "page not synced to a git path yet",
				goerr.V("page_id", input.PageID),
			)
		}
		return nil, err
	}
	if page.GitPath == "" {
		return nil, goerr.Wrap(types.ErrSyncNotConfigured, "page not synced to a git path yet",
			goerr.V("page_id", page.ID),
		)
	}

	ws, err := x.requireSyncState(ctx, page.WorkspaceID, types.SyncRepoSelected)
	if err != nil {
		return nil, err
	}

	owner, repo, ok := ws.RepoOwnerName()
	if !ok {
		return nil, goerr.Wrap(types.ErrSyncNotConfigured, "stored repository name is malformed",
			goerr.V("repo_full_name", ws.RepoFullName),
		)
	}

	remote, err := x.clients.GitHub().GetContents(ctx, ws.Token, owner, repo, page.GitPath, ws.Branch())
	if err != nil {
		return nil, err
	}

	// Only a base64 payload with actual content overwrites the page;
	// anything else means there is nothing to pull.
	if remote != nil && remote.Encoding == "base64" && remote.Content != "" {
		content, err := decodeContent(remote.Content)
		if err != nil {
			return nil, err
		}
		if err := x.clients.Repository().UpdatePage(ctx, page.ID, &model.PageUpdate{
			Content: &content,
		}); err != nil {
			return nil, err
		}
	}

	return x.clients.Repository().GetPage(ctx, page.ID)
}

// decodeContent decodes a contents-API base64 payload, which arrives with
// embedded newlines.
func decodeContent(encoded string) (string, error) {
	cleaned := strings.NewReplacer("\n", "", "\r", "").Replace(encoded)
	decoded, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", goerr.Wrap(err, "failed to decode remote file content")
	}
	return string(decoded), nil
}

func (x *UseCase) ListHistory(ctx context.Context, wsID types.WorkspaceID, path string) ([]*model.RemoteCommit, error) {
	ws, err := x.requireSyncState(ctx, wsID, types.SyncRepoSelected)
	if err != nil {
		return nil, err
	}

	owner, repo, ok := ws.RepoOwnerName()
	if !ok {
		return nil, goerr.Wrap(types.ErrSyncNotConfigured, "stored repository name is malformed",
			goerr.V("repo_full_name", ws.RepoFullName),
		)
	}

	return x.clients.GitHub().ListCommits(ctx, ws.Token, owner, repo, path, historyPerPage)
}
