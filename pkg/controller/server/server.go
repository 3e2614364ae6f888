package server

import (
	"net/http"

	"github.com/docfold/docfold/pkg/domain/interfaces"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	mux *chi.Mux
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()

	// Development-mode CORS: every origin, method and header is allowed.
	// This is deliberately permissive and not a security boundary.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(preProcess)

	r.Get("/", handleRoot())
	r.Get("/test", handleStoreProbe(uc))

	r.Post("/workspaces", handleCreateWorkspace(uc))
	r.Get("/workspaces", handleListWorkspaces(uc))

	r.Post("/pages", handleCreatePage(uc))
	r.Get("/pages", handleListPages(uc))
	r.Route("/pages/{pageID}", func(r chi.Router) {
		r.Get("/", handleGetPage(uc))
		r.Patch("/", handleUpdatePage(uc))
		r.Delete("/", handleDeletePage(uc))
		r.Post("/lock", handleLockPage(uc))
		r.Post("/unlock", handleUnlockPage(uc))
	})

	r.Route("/github", func(r chi.Router) {
		r.Post("/connect", handleConnectRepo(uc))
		r.Get("/repos", handleListRepos(uc))
		r.Post("/select-repo", handleSelectRepo(uc))
		r.Post("/sync-page", handleSyncPage(uc))
		r.Post("/pull-page", handlePullPage(uc))
		r.Get("/history", handleListHistory(uc))
	})

	r.Get("/search", handleSearch(uc))

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
