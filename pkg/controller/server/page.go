package server

import (
	"net/http"

	"github.com/docfold/docfold/pkg/domain/interfaces"
	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
	"github.com/go-chi/chi/v5"
)

func pageID(r *http.Request) types.PageID {
	return types.PageID(chi.URLParam(r, "pageID"))
}

func handleCreatePage(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input model.CreatePageInput
		if err := decodeBody(r, &input); err != nil {
			respondError(ctx, w, err)
			return
		}

		page, err := uc.CreatePage(ctx, &input)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, page)
	}
}

func handleListPages(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		wsID := types.WorkspaceID(r.URL.Query().Get("workspace_id"))
		if wsID == "" {
			respondError(ctx, w, types.ErrValidationFailed)
			return
		}
		folderPath := r.URL.Query().Get("folder_path")

		pages, err := uc.ListPages(ctx, wsID, folderPath)
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

func handleGetPage(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		page, err := uc.GetPage(ctx, pageID(r))
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, page)
	}
}

func handleUpdatePage(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var update model.PageUpdate
		if err := decodeBody(r, &update); err != nil {
			respondError(ctx, w, err)
			return
		}

		page, err := uc.UpdatePage(ctx, pageID(r), &update)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, page)
	}
}

func handleDeletePage(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := uc.DeletePage(ctx, pageID(r)); err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func handleLockPage(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input model.LockInput
		if err := decodeBody(r, &input); err != nil {
			respondError(ctx, w, err)
			return
		}

		page, err := uc.LockPage(ctx, pageID(r), &input)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, page)
	}
}

func handleUnlockPage(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		page, err := uc.UnlockPage(ctx, pageID(r))
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, page)
	}
}
