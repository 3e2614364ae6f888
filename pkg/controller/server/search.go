package server

import (
	"net/http"

	"github.com/docfold/docfold/pkg/domain/interfaces"
	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
)

func handleSearch(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		wsID := types.WorkspaceID(r.URL.Query().Get("workspace_id"))
		query := r.URL.Query().Get("q")

		pages, err := uc.SearchPages(ctx, wsID, query)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		if pages == nil {
			pages = []*model.Page{}
		}

		respondJSON(ctx, w, http.StatusOK, pages)
	}
}
