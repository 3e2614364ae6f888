package usecase

import (
	"context"

	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// SearchPages runs a case-insensitive pattern match over title, content
// and tags within a workspace.
func (x *UseCase) SearchPages(ctx context.Context, wsID types.WorkspaceID, query string) ([]*model.Page, error) {
	if wsID == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "workspace_id is required")
	}
	if query == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "query is required")
	}

	return x.clients.Repository().SearchPages(ctx, wsID, query, searchLimit)
}
