package model

import (
	"github.com/docfold/docfold/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// PageLock is advisory only. No write path consults it.
type PageLock struct {
	LockedBy string `json:"locked_by,omitempty" bson:"locked_by,omitempty"`
	IsLocked bool   `json:"is_locked" bson:"is_locked"`
}

type Page struct {
	ID          types.PageID      `json:"id"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	FolderPath  string            `json:"folder_path"`
	Tags        []string          `json:"tags"`
	WorkspaceID types.WorkspaceID `json:"workspace_id"`
	GitPath     string            `json:"git_path,omitempty"`
	Lock        *PageLock         `json:"lock,omitempty"`
}

type CreatePageInput struct {
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	FolderPath  string            `json:"folder_path"`
	Tags        []string          `json:"tags"`
	WorkspaceID types.WorkspaceID `json:"workspace_id"`
	GitPath     string            `json:"git_path,omitempty"`
}

func (x *CreatePageInput) Validate() error {
	if x.Title == "" {
		return goerr.Wrap(types.ErrValidationFailed, "page title is required")
	}
	if x.WorkspaceID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "workspace_id is required")
	}
	return nil
}

// Page builds the stored form, filling defaults for omitted fields.
func (x *CreatePageInput) Page() *Page {
	page := &Page{
		Title:       x.Title,
		Content:     x.Content,
		FolderPath:  x.FolderPath,
		Tags:        x.Tags,
		WorkspaceID: x.WorkspaceID,
		GitPath:     x.GitPath,
	}
	if page.FolderPath == "" {
		page.FolderPath = "/"
	}
	if page.Tags == nil {
		page.Tags = []string{}
	}
	return page
}

// PageUpdate is a partial update. Only non-nil fields are applied; a nil
// field leaves the stored value untouched.
type PageUpdate struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	FolderPath *string   `json:"folder_path"`
	Tags       *[]string `json:"tags"`
	GitPath    *string   `json:"git_path"`
}

func (x *PageUpdate) IsEmpty() bool {
	return x.Title == nil && x.Content == nil && x.FolderPath == nil &&
		x.Tags == nil && x.GitPath == nil
}

// LockInput is the lock payload. IsLocked defaults to true when omitted.
type LockInput struct {
	LockedBy string `json:"locked_by"`
	IsLocked *bool  `json:"is_locked"`
}

func (x *LockInput) Lock() *PageLock {
	locked := true
	if x.IsLocked != nil {
		locked = *x.IsLocked
	}
	return &PageLock{
		LockedBy: x.LockedBy,
		IsLocked: locked,
	}
}
