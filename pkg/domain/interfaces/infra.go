package interfaces

//go:generate moq -out ../mock/github.go -pkg mock . GitHub

import (
	"context"

	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
)

// GitHub is the remote source-control collaborator. Every call is a single
// bounded-timeout round trip; a non-2xx response surfaces as
// *model.RemoteAPIError with the upstream status and body.
type GitHub interface {
	// ListRepos returns repositories accessible to the token.
	ListRepos(ctx context.Context, token types.GitHubToken) ([]*model.RemoteRepository, error)

	// GetContents fetches file metadata and content at path@ref. A missing
	// file returns (nil, nil); absence is not an error.
	GetContents(ctx context.Context, token types.GitHubToken, owner, repo, path, ref string) (*model.RepoContent, error)

	// PutContents creates or updates a file via the contents API.
	PutContents(ctx context.Context, token types.GitHubToken, owner, repo, path string, input *model.PutContentsInput) error

	// ListCommits returns the commit history for a path.
	ListCommits(ctx context.Context, token types.GitHubToken, owner, repo, path string, perPage int) ([]*model.RemoteCommit, error)
}
