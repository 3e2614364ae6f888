package model

import (
	"strings"

	"github.com/docfold/docfold/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Workspace is the stored form of a workspace. Token is the raw GitHub
// credential and must go through View() before leaving the process.
type Workspace struct {
	ID            types.WorkspaceID
	Name          string
	Token         types.GitHubToken `masq:"secret"`
	RepoFullName  string
	DefaultBranch string
}

// SyncState derives the repository linkage state from field presence.
// All preconditions of the sync operations are checked against this in
// one place instead of ad-hoc nil checks.
func (x *Workspace) SyncState() types.SyncState {
	if x.Token == "" {
		return types.SyncUnconnected
	}
	if x.RepoFullName == "" {
		return types.SyncConnected
	}
	return types.SyncRepoSelected
}

// RepoOwnerName splits "owner/repo" into its parts. ok is false when no
// repository has been selected or the stored value is malformed.
func (x *Workspace) RepoOwnerName() (owner, repo string, ok bool) {
	parts := strings.SplitN(x.RepoFullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Branch returns the configured branch, falling back to "main".
func (x *Workspace) Branch() string {
	if x.DefaultBranch == "" {
		return "main"
	}
	return x.DefaultBranch
}

// WorkspaceView is the external representation of a workspace. The raw
// credential is replaced by the Connected flag.
type WorkspaceView struct {
	ID            types.WorkspaceID `json:"id"`
	Name          string            `json:"name"`
	Connected     bool              `json:"gh_connected"`
	RepoFullName  string            `json:"gh_repo_full_name,omitempty"`
	DefaultBranch string            `json:"gh_default_branch"`
}

func (x *Workspace) View() *WorkspaceView {
	return &WorkspaceView{
		ID:            x.ID,
		Name:          x.Name,
		Connected:     x.Token != "",
		RepoFullName:  x.RepoFullName,
		DefaultBranch: x.Branch(),
	}
}

type CreateWorkspaceInput struct {
	Name          string            `json:"name"`
	Token         types.GitHubToken `json:"gh_access_token,omitempty" masq:"secret"`
	RepoFullName  string            `json:"gh_repo_full_name,omitempty"`
	DefaultBranch string            `json:"gh_default_branch,omitempty"`
}

func (x *CreateWorkspaceInput) Validate() error {
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "workspace name is required")
	}
	return nil
}

// WorkspaceUpdate is a partial update. Only non-nil fields are applied.
type WorkspaceUpdate struct {
	Token         *types.GitHubToken
	RepoFullName  *string
	DefaultBranch *string
}

func (x *WorkspaceUpdate) IsEmpty() bool {
	return x.Token == nil && x.RepoFullName == nil && x.DefaultBranch == nil
}

type ConnectRepoInput struct {
	WorkspaceID types.WorkspaceID `json:"workspace_id"`
	Token       types.GitHubToken `json:"access_token" masq:"secret"`
}

func (x *ConnectRepoInput) Validate() error {
	if x.WorkspaceID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "workspace_id is required")
	}
	if x.Token == "" {
		return goerr.Wrap(types.ErrValidationFailed, "access_token is required")
	}
	return nil
}

type SelectRepoInput struct {
	WorkspaceID   types.WorkspaceID `json:"workspace_id"`
	Owner         string            `json:"owner"`
	Repo          string            `json:"repo"`
	DefaultBranch string            `json:"default_branch"`
}

func (x *SelectRepoInput) Validate() error {
	if x.WorkspaceID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "workspace_id is required")
	}
	if x.Owner == "" || x.Repo == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner and repo are required")
	}
	return nil
}
