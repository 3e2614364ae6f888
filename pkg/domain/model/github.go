package model

import (
	"fmt"
	"time"

	"github.com/docfold/docfold/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// RemoteRepository is the projection of a repository accessible to the
// connected credential.
type RemoteRepository struct {
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
}

// RemoteCommit is a compact commit history entry. Author fields may be
// empty when the remote response lacks nested author info.
type RemoteCommit struct {
	SHA        string    `json:"sha"`
	AuthorName string    `json:"author,omitempty"`
	Date       time.Time `json:"date,omitzero"`
	Message    string    `json:"message,omitempty"`
	URL        string    `json:"url,omitempty"`
}

// RepoContent is the raw contents-API response for a single file. Content
// is still encoded as indicated by Encoding.
type RepoContent struct {
	Path     string
	SHA      string
	Content  string
	Encoding string
}

// PutContentsInput drives a create-or-update call against the contents
// API. SHA must carry the current file version when the file already
// exists; the remote rejects a blind overwrite otherwise.
type PutContentsInput struct {
	Message string
	Content []byte
	Branch  string
	SHA     string
}

type SyncPageInput struct {
	PageID        types.PageID `json:"page_id"`
	Path          string       `json:"path"`
	CommitMessage string       `json:"commit_message"`
}

// DefaultCommitMessage is used when the caller does not provide one.
const DefaultCommitMessage = "docs: update from workspace"

func (x *SyncPageInput) Validate() error {
	if x.PageID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "page_id is required")
	}
	if x.Path == "" {
		return goerr.Wrap(types.ErrValidationFailed, "path is required")
	}
	return nil
}

func (x *SyncPageInput) Message() string {
	if x.CommitMessage == "" {
		return DefaultCommitMessage
	}
	return x.CommitMessage
}

type PullPageInput struct {
	PageID types.PageID `json:"page_id"`
}

func (x *PullPageInput) Validate() error {
	if x.PageID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "page_id is required")
	}
	return nil
}

// RemoteAPIError carries a non-2xx remote response verbatim so the caller
// can diagnose against the remote system directly.
type RemoteAPIError struct {
	StatusCode int
	Body       string
}

func (x *RemoteAPIError) Error() string {
	return fmt.Sprintf("remote API error: status=%d body=%s", x.StatusCode, x.Body)
}
