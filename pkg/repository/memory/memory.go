package memory

import (
	"sync"

	"github.com/docfold/docfold/pkg/domain/interfaces"
	"github.com/docfold/docfold/pkg/domain/model"
)

// New creates a new in-memory repository. It is used by tests and as the
// storeless development mode of the serve command.
func New() interfaces.Repository {
	return &docRepository{
		workspaces: make(map[string]*model.Workspace),
		pages:      make(map[string]*model.Page),
	}
}

type docRepository struct {
	mu         sync.RWMutex
	workspaces map[string]*model.Workspace
	pages      map[string]*model.Page

	// insertion order, to mirror a real store's natural ordering
	wsOrder   []string
	pageOrder []string
}
