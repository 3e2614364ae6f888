package usecase

import (
	"context"

	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
)

func (x *UseCase) CreatePage(ctx context.Context, input *model.CreatePageInput) (*model.Page, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The owning workspace must exist at creation time. Nothing is
	// inserted when it does not.
	if _, err := x.clients.Repository().GetWorkspace(ctx, input.WorkspaceID); err != nil {
		return nil, err
	}

	id, err := x.clients.Repository().CreatePage(ctx, input.Page())
	if err != nil {
		return nil, err
	}

	return x.clients.Repository().GetPage(ctx, id)
}

func (x *UseCase) GetPage(ctx context.Context, id types.PageID) (*model.Page, error) {
	return x.clients.Repository().GetPage(ctx, id)
}

func (x *UseCase) ListPages(ctx context.Context, wsID types.WorkspaceID, folderPath string) ([]*model.Page, error) {
	return x.clients.Repository().ListPages(ctx, wsID, folderPath, pageListLimit)
}

func (x *UseCase) UpdatePage(ctx context.Context, id types.PageID, update *model.PageUpdate) (*model.Page, error) {
	// An empty payload returns the current record without a store write.
	if update.IsEmpty() {
		return x.clients.Repository().GetPage(ctx, id)
	}

	if err := x.clients.Repository().UpdatePage(ctx, id, update); err != nil {
		return nil, err
	}

	return x.clients.Repository().GetPage(ctx, id)
}

func (x *UseCase) DeletePage(ctx context.Context, id types.PageID) error {
	return x.clients.Repository().DeletePage(ctx, id)
}

func (x *UseCase) LockPage(ctx context.Context, id types.PageID, input *model.LockInput) (*model.Page, error) {
	// The lock is overwritten wholesale and never checked against the
	// previous holder; it is advisory metadata for clients.
	if err := x.clients.Repository().SetPageLock(ctx, id, input.Lock()); err != nil {
		return nil, err
	}

	return x.clients.Repository().GetPage(ctx, id)
}

func (x *UseCase) UnlockPage(ctx context.Context, id types.PageID) (*model.Page, error) {
	if err := x.clients.Repository().SetPageLock(ctx, id, nil); err != nil {
		return nil, err
	}

	return x.clients.Repository().GetPage(ctx, id)
}
