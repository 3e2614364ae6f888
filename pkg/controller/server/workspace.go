package server

import (
	"net/http"

	"github.com/docfold/docfold/pkg/domain/interfaces"
	"github.com/docfold/docfold/pkg/domain/model"
)

func handleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(r.Context(), w, http.StatusOK, map[string]string{
			"message": "Docs+Git MVP API",
		})
	}
}

// handleStoreProbe reports process and store health. Store failures are
// reported in the body, never as an HTTP error.
func handleStoreProbe(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		resp := map[string]string{
			"backend":  "running",
			"database": "connected",
		}
		if err := uc.PingStore(ctx); err != nil {
			msg := err.Error()
			if len(msg) > 120 {
				msg = msg[:120]
			}
			resp["database"] = "unavailable: " + msg
		}

		respondJSON(ctx, w, http.StatusOK, resp)
	}
}

func handleCreateWorkspace(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input model.CreateWorkspaceInput
		if err := decodeBody(r, &input); err != nil {
			respondError(ctx, w, err)
			return
		}

		ws, err := uc.CreateWorkspace(ctx, &input)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, ws.View())
	}
}

func handleListWorkspaces(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		workspaces, err := uc.ListWorkspaces(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		views := make([]*model.WorkspaceView, 0, len(workspaces))
		for _, ws := range workspaces {
			views = append(views, ws.View())
		}

		respondJSON(ctx, w, http.StatusOK, views)
	}
}
