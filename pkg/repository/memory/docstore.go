package memory

import (
	"context"
	"regexp"

	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return goerr.Wrap(types.ErrInvalidID, "malformed identifier", goerr.V("id", id))
	}
	return nil
}

func copyWorkspace(ws *model.Workspace) *model.Workspace {
	copied := *ws
	return &copied
}

func copyPage(page *model.Page) *model.Page {
	copied := *page
	if page.Tags != nil {
		copied.Tags = append([]string{}, page.Tags...)
	}
	if page.Lock != nil {
		lock := *page.Lock
		copied.Lock = &lock
	}
	return &copied
}

// Workspace operations

func (r *docRepository) CreateWorkspace(ctx context.Context, ws *model.Workspace) (types.WorkspaceID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	copied := copyWorkspace(ws)
	copied.ID = types.WorkspaceID(id)
	r.workspaces[id] = copied
	r.wsOrder = append(r.wsOrder, id)

	return copied.ID, nil
}

func (r *docRepository) GetWorkspace(ctx context.Context, id types.WorkspaceID) (*model.Workspace, error) {
	if err := validateID(string(id)); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, exists := r.workspaces[string(id)]
	if !exists {
		return nil, goerr.Wrap(types.ErrNotFound, "workspace not found", goerr.V("id", id))
	}

	return copyWorkspace(ws), nil
}

func (r *docRepository) ListWorkspaces(ctx context.Context, limit int) ([]*model.Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workspaces := make([]*model.Workspace, 0, len(r.wsOrder))
	for _, id := range r.wsOrder {
		if len(workspaces) >= limit {
			break
		}
		workspaces = append(workspaces, copyWorkspace(r.workspaces[id]))
	}

	return workspaces, nil
}

func (r *docRepository) UpdateWorkspace(ctx context.Context, id types.WorkspaceID, update *model.WorkspaceUpdate) error {
	if err := validateID(string(id)); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ws, exists := r.workspaces[string(id)]
	if !exists {
		return goerr.Wrap(types.ErrNotFound, "workspace not found", goerr.V("id", id))
	}

	if update.Token != nil {
		ws.Token = *update.Token
	}
	if update.RepoFullName != nil {
		ws.RepoFullName = *update.RepoFullName
	}
	if update.DefaultBranch != nil {
		ws.DefaultBranch = *update.DefaultBranch
	}

	return nil
}

// Page operations

func (r *docRepository) CreatePage(ctx context.Context, page *model.Page) (types.PageID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	copied := copyPage(page)
	copied.ID = types.PageID(id)
	r.pages[id] = copied
	r.pageOrder = append(r.pageOrder, id)

	return copied.ID, nil
}

func (r *docRepository) GetPage(ctx context.Context, id types.PageID) (*model.Page, error) {
	if err := validateID(string(id)); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	page, exists := r.pages[string(id)]
	if !exists {
		return nil, goerr.Wrap(types.ErrNotFound, "page not found", goerr.V("id", id))
	}

	return copyPage(page), nil
}

func (r *docRepository) ListPages(ctx context.Context, wsID types.WorkspaceID, folderPath string, limit int) ([]*model.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var pages []*model.Page
	for _, id := range r.pageOrder {
		page := r.pages[id]
		if page.WorkspaceID != wsID {
			continue
		}
		if folderPath != "" && page.FolderPath != folderPath {
			continue
		}
		if len(pages) >= limit {
			break
		}
		pages = append(pages, copyPage(page))
	}

	return pages, nil
}

func (r *docRepository) UpdatePage(ctx context.Context, id types.PageID, update *model.PageUpdate) error {
	if err := validateID(string(id)); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	page, exists := r.pages[string(id)]
	if !exists {
		return goerr.Wrap(types.ErrNotFound, "page not found", goerr.V("id", id))
	}

	if update.Title != nil {
		page.Title = *update.Title
	}
	if update.Content != nil {
		page.Content = *update.Content
	}
	if update.FolderPath != nil {
		page.FolderPath = *update.FolderPath
	}
	if update.Tags != nil {
		page.Tags = append([]string{}, (*update.Tags)...)
	}
	if update.GitPath != nil {
		page.GitPath = *update.GitPath
	}

	return nil
}

func (r *docRepository) DeletePage(ctx context.Context, id types.PageID) error {
	if err := validateID(string(id)); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pages[string(id)]; !exists {
		return goerr.Wrap(types.ErrNotFound, "page not found", goerr.V("id", id))
	}

	delete(r.pages, string(id))
	for i, pageID := range r.pageOrder {
		if pageID == string(id) {
			r.pageOrder = append(r.pageOrder[:i], r.pageOrder[i+1:]...)
			break
		}
	}

	return nil
}

func (r *docRepository) SetPageLock(ctx context.Context, id types.PageID, lock *model.PageLock) error {
	if err := validateID(string(id)); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	page, exists := r.pages[string(id)]
	if !exists {
		return goerr.Wrap(types.ErrNotFound, "page not found", goerr.V("id", id))
	}

	if lock == nil {
		page.Lock = nil
	} else {
		copied := *lock
		page.Lock = &copied
	}

	return nil
}

func (r *docRepository) SearchPages(ctx context.Context, wsID types.WorkspaceID, pattern string, limit int) ([]*model.Page, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidQuery, "cannot compile search pattern", goerr.V("pattern", pattern))
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var pages []*model.Page
	for _, id := range r.pageOrder {
		page := r.pages[id]
		if page.WorkspaceID != wsID {
			continue
		}
		if !matchPage(re, page) {
			continue
		}
		if len(pages) >= limit {
			break
		}
		pages = append(pages, copyPage(page))
	}

	return pages, nil
}

func matchPage(re *regexp.Regexp, page *model.Page) bool {
	if re.MatchString(page.Title) || re.MatchString(page.Content) {
		return true
	}
	for _, tag := range page.Tags {
		if re.MatchString(tag) {
			return true
		}
	}
	return false
}

func (r *docRepository) Ping(ctx context.Context) error {
	return nil
}

func (r *docRepository) Close(ctx context.Context) error {
	return nil
}
