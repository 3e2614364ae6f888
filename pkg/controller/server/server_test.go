package server_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/docfold/docfold/pkg/controller/server"
	"github.com/docfold/docfold/pkg/domain/mock"
	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
	"github.com/docfold/docfold/pkg/infra"
	"github.com/docfold/docfold/pkg/usecase"
)

func newTestServer(mockGH *mock.GitHubMock) *server.Server {
	options := []infra.Option{}
	if mockGH != nil {
		options = append(options, infra.WithGitHub(mockGH))
	}
	return server.New(usecase.New(infra.New(options...)))
}

func callJSON(t *testing.T, srv *server.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw := gt.R1(json.Marshal(body)).NoError(t)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func decodeInto[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestRootAndProbe(t *testing.T) {
	srv := newTestServer(nil)

	t.Run("GET / returns the banner", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodGet, "/", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		body := decodeInto[map[string]string](t, rec)
		gt.V(t, body["message"]).Equal("Docs+Git MVP API")
	})

	t.Run("GET /test reports a healthy store", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodGet, "/test", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		body := decodeInto[map[string]string](t, rec)
		gt.V(t, body["backend"]).Equal("running")
		gt.V(t, body["database"]).Equal("connected")
	})

	t.Run("GET /test reports a broken store in the body", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			PingStoreFunc: func(ctx context.Context) error {
				return errors.New("connection refused")
			},
		}
		brokenSrv := server.New(mockUC)

		rec := callJSON(t, brokenSrv, http.MethodGet, "/test", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		body := decodeInto[map[string]string](t, rec)
		gt.S(t, body["database"]).Contains("unavailable: connection refused")
	})
}

func TestWorkspaceEndpoints(t *testing.T) {
	srv := newTestServer(nil)

	t.Run("create hides the token", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodPost, "/workspaces", map[string]string{
			"name":            "engineering",
			"gh_access_token": "ghp_supersecret",
		})
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).NotContains("ghp_supersecret")

		view := decodeInto[model.WorkspaceView](t, rec)
		gt.V(t, view.Name).Equal("engineering")
		gt.True(t, view.Connected)
		gt.V(t, view.DefaultBranch).Equal("main")
		gt.True(t, view.ID != "")
	})

	t.Run("create without a name", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodPost, "/workspaces", map[string]string{})
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)

		body := decodeInto[map[string]string](t, rec)
		gt.S(t, body["detail"]).Contains("name is required")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/workspaces", bytes.NewReader([]byte("{broken")))
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("list returns views", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodGet, "/workspaces", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		views := decodeInto[[]*model.WorkspaceView](t, rec)
		gt.A(t, views).Length(1)
		gt.S(t, rec.Body.String()).NotContains("ghp_supersecret")
	})
}

func TestPageEndpoints(t *testing.T) {
	srv := newTestServer(nil)

	ws := decodeInto[model.WorkspaceView](t, callJSON(t, srv, http.MethodPost, "/workspaces", map[string]string{
		"name": "pages",
	}))

	var pageID types.PageID

	t.Run("create with defaults", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodPost, "/pages", map[string]any{
			"title":        "Getting Started",
			"content":      "welcome",
			"workspace_id": ws.ID,
		})
		gt.V(t, rec.Code).Equal(http.StatusOK)

		page := decodeInto[model.Page](t, rec)
		gt.V(t, page.FolderPath).Equal("/")
		gt.A(t, page.Tags).Length(0)
		pageID = page.ID
	})

	t.Run("create for a missing workspace", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodPost, "/pages", map[string]any{
			"title":        "orphan",
			"workspace_id": "11111111-2222-3333-4444-555555555555",
		})
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("list requires workspace_id", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodGet, "/pages", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)

		rec = callJSON(t, srv, http.MethodGet, "/pages?workspace_id="+string(ws.ID), nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.A(t, decodeInto[[]*model.Page](t, rec)).Length(1)
	})

	t.Run("folder filter", func(t *testing.T) {
		callJSON(t, srv, http.MethodPost, "/pages", map[string]any{
			"title":        "guide",
			"folder_path":  "/guides",
			"workspace_id": ws.ID,
		})

		rec := callJSON(t, srv, http.MethodGet, "/pages?workspace_id="+string(ws.ID)+"&folder_path=/guides", nil)
		pages := decodeInto[[]*model.Page](t, rec)
		gt.A(t, pages).Length(1)
		gt.V(t, pages[0].Title).Equal("guide")
	})

	t.Run("partial update", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodPatch, "/pages/"+string(pageID), map[string]string{
			"content": "updated",
		})
		gt.V(t, rec.Code).Equal(http.StatusOK)

		page := decodeInto[model.Page](t, rec)
		gt.V(t, page.Title).Equal("Getting Started")
		gt.V(t, page.Content).Equal("updated")
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodPatch, "/pages/"+string(pageID), map[string]string{})
		gt.V(t, rec.Code).Equal(http.StatusOK)

		page := decodeInto[model.Page](t, rec)
		gt.V(t, page.Content).Equal("updated")
	})

	t.Run("lock and unlock", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodPost, "/pages/"+string(pageID)+"/lock", map[string]string{
			"locked_by": "alice",
		})
		gt.V(t, rec.Code).Equal(http.StatusOK)

		page := decodeInto[model.Page](t, rec)
		gt.V(t, page.Lock).NotEqual(nil)
		gt.True(t, page.Lock.IsLocked)
		gt.V(t, page.Lock.LockedBy).Equal("alice")

		rec = callJSON(t, srv, http.MethodPost, "/pages/"+string(pageID)+"/unlock", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decodeInto[model.Page](t, rec).Lock).Equal(nil)
	})

	t.Run("invalid page id", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodGet, "/pages/not-an-id", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("delete is acknowledged once", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodDelete, "/pages/"+string(pageID), nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.True(t, decodeInto[map[string]bool](t, rec)["ok"])

		rec = callJSON(t, srv, http.MethodGet, "/pages/"+string(pageID), nil)
		gt.V(t, rec.Code).Equal(http.StatusNotFound)

		rec = callJSON(t, srv, http.MethodDelete, "/pages/"+string(pageID), nil)
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestGitHubEndpoints(t *testing.T) {
	mockGH := &mock.GitHubMock{}
	srv := newTestServer(mockGH)

	ws := decodeInto[model.WorkspaceView](t, callJSON(t, srv, http.MethodPost, "/workspaces", map[string]string{
		"name": "synced",
	}))

	t.Run("repos before connecting", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodGet, "/github/repos?workspace_id="+string(ws.ID), nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("connect", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodPost, "/github/connect", map[string]any{
			"workspace_id": ws.ID,
			"access_token": "ghp_dummy",
		})
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.True(t, decodeInto[model.WorkspaceView](t, rec).Connected)
		gt.S(t, rec.Body.String()).NotContains("ghp_dummy")
	})

	t.Run("list repos", func(t *testing.T) {
		mockGH.ListReposFunc = func(ctx context.Context, token types.GitHubToken) ([]*model.RemoteRepository, error) {
			return []*model.RemoteRepository{
				{FullName: "docfold/handbook", DefaultBranch: "main"},
			}, nil
		}

		rec := callJSON(t, srv, http.MethodGet, "/github/repos?workspace_id="+string(ws.ID), nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		repos := decodeInto[[]*model.RemoteRepository](t, rec)
		gt.A(t, repos).Length(1)
		gt.V(t, repos[0].FullName).Equal("docfold/handbook")
	})

	t.Run("select repo", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodPost, "/github/select-repo", map[string]any{
			"workspace_id":   ws.ID,
			"owner":          "docfold",
			"repo":           "handbook",
			"default_branch": "main",
		})
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decodeInto[model.WorkspaceView](t, rec).RepoFullName).Equal("docfold/handbook")
	})

	t.Run("sync and pull a page", func(t *testing.T) {
		page := decodeInto[model.Page](t, callJSON(t, srv, http.MethodPost, "/pages", map[string]any{
			"title":        "Runbook",
			"content":      "# Runbook",
			"workspace_id": ws.ID,
		}))

		var stored []byte
		mockGH.GetContentsFunc = func(ctx context.Context, token types.GitHubToken, owner, repo, path, ref string) (*model.RepoContent, error) {
			if stored == nil {
				return nil, nil
			}
			return &model.RepoContent{
				Path:     path,
				SHA:      "v1",
				Content:  base64encode(stored),
				Encoding: "base64",
			}, nil
		}
		mockGH.PutContentsFunc = func(ctx context.Context, token types.GitHubToken, owner, repo, path string, input *model.PutContentsInput) error {
			stored = input.Content
			return nil
		}

		rec := callJSON(t, srv, http.MethodPost, "/github/sync-page", map[string]any{
			"page_id": page.ID,
			"path":    "docs/runbook.md",
		})
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decodeInto[model.Page](t, rec).GitPath).Equal("docs/runbook.md")

		rec = callJSON(t, srv, http.MethodPost, "/github/pull-page", map[string]any{
			"page_id": page.ID,
		})
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decodeInto[model.Page](t, rec).Content).Equal("# Runbook")
	})

	t.Run("pull of an absent page is a client error", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodPost, "/github/pull-page", map[string]any{
			"page_id": "11111111-2222-3333-4444-555555555555",
		})
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)

		body := decodeInto[map[string]string](t, rec)
		gt.S(t, body["detail"]).Contains("not synced to a git path")
	})

	t.Run("history", func(t *testing.T) {
		mockGH.ListCommitsFunc = func(ctx context.Context, token types.GitHubToken, owner, repo, path string, perPage int) ([]*model.RemoteCommit, error) {
			return []*model.RemoteCommit{
				{SHA: "abc123", AuthorName: "alice", Message: "docs: update"},
			}, nil
		}

		rec := callJSON(t, srv, http.MethodGet, "/github/history?workspace_id="+string(ws.ID)+"&path=docs/runbook.md", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.A(t, decodeInto[[]*model.RemoteCommit](t, rec)).Length(1)
	})

	t.Run("history requires workspace_id and path", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodGet, "/github/history?workspace_id="+string(ws.ID), nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestSearchEndpoint(t *testing.T) {
	srv := newTestServer(nil)

	ws := decodeInto[model.WorkspaceView](t, callJSON(t, srv, http.MethodPost, "/workspaces", map[string]string{
		"name": "search",
	}))
	callJSON(t, srv, http.MethodPost, "/pages", map[string]any{
		"title":        "Deployment Guide",
		"content":      "how to ship",
		"workspace_id": ws.ID,
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodGet, "/search?workspace_id="+string(ws.ID)+"&q=DEPLOY", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.A(t, decodeInto[[]*model.Page](t, rec)).Length(1)
	})

	t.Run("no match is an empty list", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodGet, "/search?workspace_id="+string(ws.ID)+"&q=nothing", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("[]\n")
	})

	t.Run("missing parameters", func(t *testing.T) {
		rec := callJSON(t, srv, http.MethodGet, "/search?q=deploy", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)

		rec = callJSON(t, srv, http.MethodGet, "/search?workspace_id="+string(ws.ID), nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestErrorMapping(t *testing.T) {
	t.Run("remote status passes through", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListReposFunc: func(ctx context.Context, wsID types.WorkspaceID) ([]*model.RemoteRepository, error) {
				return nil, &model.RemoteAPIError{StatusCode: http.StatusUnauthorized, Body: "Bad credentials"}
			},
		}
		srv := server.New(mockUC)

		rec := callJSON(t, srv, http.MethodGet, "/github/repos?workspace_id=ws1", nil)
		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
		gt.V(t, decodeInto[map[string]string](t, rec)["detail"]).Equal("Bad credentials")
	})

	t.Run("unexpected errors are masked as 500", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListWorkspacesFunc: func(ctx context.Context) ([]*model.Workspace, error) {
				return nil, errors.New("store exploded: secret detail")
			},
		}
		srv := server.New(mockUC)

		rec := callJSON(t, srv, http.MethodGet, "/workspaces", nil)
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
		gt.V(t, decodeInto[map[string]string](t, rec)["detail"]).Equal("internal server error")
		gt.S(t, rec.Body.String()).NotContains("secret detail")
	})
}

func base64encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
