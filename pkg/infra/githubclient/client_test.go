package githubclient_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/infra/githubclient"
)

// newFakeAPI serves a minimal GitHub Enterprise style API for the client,
// which mounts everything under /api/v3/.
func newFakeAPI(t *testing.T, handler http.Handler) *githubclient.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return githubclient.New(githubclient.WithBaseURL(srv.URL))
}

func TestListRepos(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/user/repos", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Header.Get("Authorization")).Equal("Bearer ghp_dummy")
		gt.V(t, r.URL.Query().Get("per_page")).Equal("100")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"full_name": "docfold/handbook", "default_branch": "develop"},
			{"full_name": "docfold/empty"}
		]`))
	})

	client := newFakeAPI(t, mux)

	repos := gt.R1(client.ListRepos(ctx, "ghp_dummy")).NoError(t)
	gt.A(t, repos).Length(2)
	gt.V(t, repos[0].FullName).Equal("docfold/handbook")
	gt.V(t, repos[0].DefaultBranch).Equal("develop")

	// Missing default_branch falls back to main.
	gt.V(t, repos[1].DefaultBranch).Equal("main")
}

func TestGetContents(t *testing.T) {
	ctx := context.Background()

	t.Run("existing file", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v3/repos/docfold/handbook/contents/docs/runbook.md", func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodGet)
			gt.V(t, r.URL.Query().Get("ref")).Equal("main")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"type": "file",
				"path": "docs/runbook.md",
				"sha": "abc123",
				"content": "IyBSdW5ib29r",
				"encoding": "base64"
			}`))
		})

		client := newFakeAPI(t, mux)

		content := gt.R1(client.GetContents(ctx, "ghp_dummy", "docfold", "handbook", "docs/runbook.md", "main")).NoError(t)
		gt.V(t, content).NotEqual(nil)
		gt.V(t, content.Path).Equal("docs/runbook.md")
		gt.V(t, content.SHA).Equal("abc123")
		gt.V(t, content.Encoding).Equal("base64")
		gt.V(t, content.Content).Equal("IyBSdW5ib29r")
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v3/repos/docfold/handbook/contents/docs/absent.md", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "Not Found"}`))
		})

		client := newFakeAPI(t, mux)

		content := gt.R1(client.GetContents(ctx, "ghp_dummy", "docfold", "handbook", "docs/absent.md", "main")).NoError(t)
		gt.V(t, content).Equal(nil)
	})

	t.Run("directory yields nothing", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v3/repos/docfold/handbook/contents/docs", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"type": "file", "path": "docs/runbook.md"}]`))
		})

		client := newFakeAPI(t, mux)

		content := gt.R1(client.GetContents(ctx, "ghp_dummy", "docfold", "handbook", "docs", "main")).NoError(t)
		gt.V(t, content).Equal(nil)
	})
}

func TestPutContents(t *testing.T) {
	ctx := context.Background()

	type contentsRequest struct {
		Message string `json:"message"`
		Content string `json:"content"`
		Branch  string `json:"branch"`
		SHA     string `json:"sha"`
	}

	t.Run("create without sha", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v3/repos/docfold/handbook/contents/docs/new.md", func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPut)

			var req contentsRequest
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			gt.V(t, req.Message).Equal("docs: add runbook")
			gt.V(t, req.Branch).Equal("main")
			gt.V(t, req.SHA).Equal("")

			decoded := gt.R1(base64.StdEncoding.DecodeString(req.Content)).NoError(t)
			gt.V(t, string(decoded)).Equal("# Runbook")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"content": {"path": "docs/new.md"}}`))
		})

		client := newFakeAPI(t, mux)

		gt.NoError(t, client.PutContents(ctx, "ghp_dummy", "docfold", "handbook", "docs/new.md", &model.PutContentsInput{
			Message: "docs: add runbook",
			Content: []byte("# Runbook"),
			Branch:  "main",
		}))
	})

	t.Run("update carries the sha", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v3/repos/docfold/handbook/contents/docs/old.md", func(w http.ResponseWriter, r *http.Request) {
			var req contentsRequest
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			gt.V(t, req.SHA).Equal("abc123")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"content": {"path": "docs/old.md"}}`))
		})

		client := newFakeAPI(t, mux)

		gt.NoError(t, client.PutContents(ctx, "ghp_dummy", "docfold", "handbook", "docs/old.md", &model.PutContentsInput{
			Message: "docs: update runbook",
			Content: []byte("changed"),
			Branch:  "main",
			SHA:     "abc123",
		}))
	})

	t.Run("conflict passes through", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v3/repos/docfold/handbook/contents/docs/stale.md", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message": "docs/stale.md does not match"}`))
		})

		client := newFakeAPI(t, mux)

		err := client.PutContents(ctx, "ghp_dummy", "docfold", "handbook", "docs/stale.md", &model.PutContentsInput{
			Message: "docs: update",
			Content: []byte("stale"),
			Branch:  "main",
			SHA:     "outdated",
		})
		gt.Error(t, err)

		var remoteErr *model.RemoteAPIError
		gt.True(t, errors.As(err, &remoteErr))
		gt.V(t, remoteErr.StatusCode).Equal(http.StatusConflict)
		gt.S(t, remoteErr.Body).Contains("does not match")
	})
}

func TestListCommits(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/docfold/handbook/commits", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Query().Get("path")).Equal("docs/runbook.md")
		gt.V(t, r.URL.Query().Get("per_page")).Equal("50")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"sha": "abc123",
				"html_url": "https://github.example.com/docfold/handbook/commit/abc123",
				"commit": {
					"message": "docs: update runbook",
					"author": {"name": "alice", "date": "2024-05-01T12:34:56Z"}
				}
			},
			{
				"sha": "def456",
				"commit": {"message": "initial import"}
			}
		]`))
	})

	client := newFakeAPI(t, mux)

	commits := gt.R1(client.ListCommits(ctx, "ghp_dummy", "docfold", "handbook", "docs/runbook.md", 50)).NoError(t)
	gt.A(t, commits).Length(2)

	gt.V(t, commits[0].SHA).Equal("abc123")
	gt.V(t, commits[0].AuthorName).Equal("alice")
	gt.V(t, commits[0].Message).Equal("docs: update runbook")
	gt.V(t, commits[0].Date.IsZero()).Equal(false)
	gt.S(t, commits[0].URL).Contains("/commit/abc123")

	// Absent author info degrades to zero values.
	gt.V(t, commits[1].AuthorName).Equal("")
	gt.True(t, commits[1].Date.IsZero())
}

func TestRemoteErrorPassthrough(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/user/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{
			"message": "Bad credentials",
			"documentation_url": "https://docs.github.com/rest",
			"errors": [{"resource": "Repository", "code": "unauthorized"}]
		}`))
	})

	client := newFakeAPI(t, mux)

	_, err := client.ListRepos(ctx, "ghp_expired")
	gt.Error(t, err)

	var remoteErr *model.RemoteAPIError
	gt.True(t, errors.As(err, &remoteErr))
	gt.V(t, remoteErr.StatusCode).Equal(http.StatusUnauthorized)

	// The payload fields survive the round trip, not just the message.
	gt.S(t, remoteErr.Body).Contains("Bad credentials")
	gt.S(t, remoteErr.Body).Contains("documentation_url")
	gt.S(t, remoteErr.Body).Contains("unauthorized")
}
