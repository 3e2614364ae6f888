package server

import (
	"net/http"

	"github.com/docfold/docfold/pkg/domain/interfaces"
	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
)

func handleConnectRepo(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input model.ConnectRepoInput
		if err := decodeBody(r, &input); err != nil {
			respondError(ctx, w, err)
			return
		}

		ws, err := uc.ConnectRepo(ctx, &input)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, ws.View())
	}
}

func handleListRepos(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		wsID := types.WorkspaceID(r.URL.Query().Get("workspace_id"))
		if wsID == "" {
			respondError(ctx, w, types.ErrValidationFailed)
			return
		}

		repos, err := uc.ListRepos(ctx, wsID)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		if repos == nil {
			repos = []*model.RemoteRepository{}
		}

		respondJSON(ctx, w, http.StatusOK, repos)
	}
}

func handleSelectRepo(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input model.SelectRepoInput
		if err := decodeBody(r, &input); err != nil {
			respondError(ctx, w, err)
			return
		}

		ws, err := uc.SelectRepo(ctx, &input)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, ws.View())
	}
}

func handleSyncPage(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input model.SyncPageInput
		if err := decodeBody(r, &input); err != nil {
			respondError(ctx, w, err)
			return
		}

		page, err := uc.SyncPage(ctx, &input)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, page)
	}
}

func handlePullPage(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input model.PullPageInput
		if err := decodeBody(r, &input); err != nil {
			respondError(ctx, w, err)
			return
		}

		page, err := uc.PullPage(ctx, &input)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, page)
	}
}

func handleListHistory(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		wsID := types.WorkspaceID(r.URL.Query().Get("workspace_id"))
		path := r.URL.Query().Get("path")
		if wsID == "" || path == "" {
			respondError(ctx, w, types.ErrValidationFailed)
			return
		}

		commits, err := uc.ListHistory(ctx, wsID, path)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		if commits == nil {
			commits = []*model.RemoteCommit{}
		}

		respondJSON(ctx, w, http.StatusOK, commits)
	}
}
