package usecase

import (
	"context"

	"github.com/docfold/docfold/pkg/domain/interfaces"
	"github.com/docfold/docfold/pkg/infra"
)

// Result set caps, matching the API contract.
const (
	workspaceListLimit = 50
	pageListLimit      = 200
	searchLimit        = 50
	historyPerPage     = 50
)

type UseCase struct {
	clients *infra.Clients
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}

func (x *UseCase) PingStore(ctx context.Context) error {
	return x.clients.Repository().Ping(ctx)
}
