package testhelper

import (
	"context"
	"errors"
	"testing"

	"github.com/docfold/docfold/pkg/domain/interfaces"
	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func ptr[T any](v T) *T { return &v }

// absentID returns an identifier that is well-formed for the store under
// test but no longer references anything.
func absentID(t *testing.T, repo interfaces.Repository) string {
	t.Helper()
	ctx := context.Background()

	wsID := gt.R1(repo.CreateWorkspace(ctx, &model.Workspace{Name: "scratch"})).NoError(t)
	pageID := gt.R1(repo.CreatePage(ctx, &model.Page{
		Title:       "scratch",
		FolderPath:  "/",
		Tags:        []string{},
		WorkspaceID: wsID,
	})).NoError(t)
	gt.NoError(t, repo.DeletePage(ctx, pageID))

	return string(pageID)
}

// TestAll runs the repository conformance suite against the given store.
func TestAll(t *testing.T, repo interfaces.Repository) {
	t.Run("workspace CRUD", func(t *testing.T) {
		testWorkspaces(t, repo)
	})
	t.Run("page CRUD", func(t *testing.T) {
		testPages(t, repo)
	})
	t.Run("page locks", func(t *testing.T) {
		testLocks(t, repo)
	})
	t.Run("search", func(t *testing.T) {
		testSearch(t, repo)
	})
	t.Run("malformed identifiers", func(t *testing.T) {
		testInvalidIDs(t, repo)
	})
	t.Run("ping", func(t *testing.T) {
		gt.NoError(t, repo.Ping(context.Background()))
	})
}

func testWorkspaces(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()

	id := gt.R1(repo.CreateWorkspace(ctx, &model.Workspace{Name: "Acme"})).NoError(t)
	gt.V(t, string(id)).NotEqual("")

	ws := gt.R1(repo.GetWorkspace(ctx, id)).NoError(t)
	gt.V(t, ws.Name).Equal("Acme")
	gt.V(t, ws.ID).Equal(id)
	gt.V(t, ws.Token).Equal(types.GitHubToken(""))

	t.Run("partial update applies only provided fields", func(t *testing.T) {
		token := types.GitHubToken("ghp_dummy")
		gt.NoError(t, repo.UpdateWorkspace(ctx, id, &model.WorkspaceUpdate{Token: &token}))

		ws := gt.R1(repo.GetWorkspace(ctx, id)).NoError(t)
		gt.V(t, ws.Token).Equal(token)
		gt.V(t, ws.Name).Equal("Acme")
		gt.V(t, ws.RepoFullName).Equal("")

		gt.NoError(t, repo.UpdateWorkspace(ctx, id, &model.WorkspaceUpdate{
			RepoFullName:  ptr("acme/docs"),
			DefaultBranch: ptr("main"),
		}))

		ws = gt.R1(repo.GetWorkspace(ctx, id)).NoError(t)
		gt.V(t, ws.Token).Equal(token)
		gt.V(t, ws.RepoFullName).Equal("acme/docs")
		gt.V(t, ws.DefaultBranch).Equal("main")
	})

	t.Run("update of absent workspace fails", func(t *testing.T) {
		missing := types.WorkspaceID(absentID(t, repo))
		err := repo.UpdateWorkspace(ctx, missing, &model.WorkspaceUpdate{
			Token: ptr(types.GitHubToken("ghp_dummy")),
		})
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})

	t.Run("list respects limit", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			gt.R1(repo.CreateWorkspace(ctx, &model.Workspace{Name: "limit-check"})).NoError(t)
		}
		workspaces := gt.R1(repo.ListWorkspaces(ctx, 2)).NoError(t)
		gt.V(t, len(workspaces)).Equal(2)
	})
}

func testPages(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()

	wsID := gt.R1(repo.CreateWorkspace(ctx, &model.Workspace{Name: "Pages"})).NoError(t)

	id := gt.R1(repo.CreatePage(ctx, &model.Page{
		Title:       "Intro",
		Content:     "hello",
		FolderPath:  "/",
		Tags:        []string{},
		WorkspaceID: wsID,
	})).NoError(t)

	page := gt.R1(repo.GetPage(ctx, id)).NoError(t)
	gt.V(t, page.Title).Equal("Intro")
	gt.V(t, page.Content).Equal("hello")
	gt.V(t, page.FolderPath).Equal("/")
	gt.V(t, len(page.Tags)).Equal(0)
	gt.V(t, page.WorkspaceID).Equal(wsID)
	gt.V(t, page.Lock).Equal(nil)

	t.Run("partial update leaves omitted fields untouched", func(t *testing.T) {
		gt.NoError(t, repo.UpdatePage(ctx, id, &model.PageUpdate{
			Tags: ptr([]string{"draft"}),
		}))

		page := gt.R1(repo.GetPage(ctx, id)).NoError(t)
		gt.V(t, page.Title).Equal("Intro")
		gt.V(t, page.Content).Equal("hello")
		gt.V(t, page.Tags).Equal([]string{"draft"})

		gt.NoError(t, repo.UpdatePage(ctx, id, &model.PageUpdate{
			Content: ptr("updated"),
			GitPath: ptr("docs/intro.md"),
		}))

		page = gt.R1(repo.GetPage(ctx, id)).NoError(t)
		gt.V(t, page.Content).Equal("updated")
		gt.V(t, page.GitPath).Equal("docs/intro.md")
		gt.V(t, page.Tags).Equal([]string{"draft"})
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		before := gt.R1(repo.GetPage(ctx, id)).NoError(t)
		gt.NoError(t, repo.UpdatePage(ctx, id, &model.PageUpdate{}))
		after := gt.R1(repo.GetPage(ctx, id)).NoError(t)
		gt.V(t, after).Equal(before)
	})

	t.Run("list filters by folder path", func(t *testing.T) {
		gt.R1(repo.CreatePage(ctx, &model.Page{
			Title: "Spec", FolderPath: "/specs", Tags: []string{}, WorkspaceID: wsID,
		})).NoError(t)

		all := gt.R1(repo.ListPages(ctx, wsID, "", 200)).NoError(t)
		gt.V(t, len(all)).Equal(2)

		specs := gt.R1(repo.ListPages(ctx, wsID, "/specs", 200)).NoError(t)
		gt.V(t, len(specs)).Equal(1)
		gt.V(t, specs[0].Title).Equal("Spec")

		other := gt.R1(repo.ListPages(ctx, wsID, "/nowhere", 200)).NoError(t)
		gt.V(t, len(other)).Equal(0)
	})

	t.Run("list respects limit", func(t *testing.T) {
		limited := gt.R1(repo.ListPages(ctx, wsID, "", 1)).NoError(t)
		gt.V(t, len(limited)).Equal(1)
	})

	t.Run("delete is idempotent in effect", func(t *testing.T) {
		victim := gt.R1(repo.CreatePage(ctx, &model.Page{
			Title: "Victim", FolderPath: "/", Tags: []string{}, WorkspaceID: wsID,
		})).NoError(t)

		gt.NoError(t, repo.DeletePage(ctx, victim))

		err := repo.DeletePage(ctx, victim)
		gt.True(t, errors.Is(err, types.ErrNotFound))

		_, err = repo.GetPage(ctx, victim)
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})
}

func testLocks(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()

	wsID := gt.R1(repo.CreateWorkspace(ctx, &model.Workspace{Name: "Locks"})).NoError(t)
	id := gt.R1(repo.CreatePage(ctx, &model.Page{
		Title: "Guarded", FolderPath: "/", Tags: []string{}, WorkspaceID: wsID,
	})).NoError(t)

	gt.NoError(t, repo.SetPageLock(ctx, id, &model.PageLock{LockedBy: "alice", IsLocked: true}))

	page := gt.R1(repo.GetPage(ctx, id)).NoError(t)
	gt.V(t, page.Lock).NotEqual(nil)
	gt.V(t, page.Lock.LockedBy).Equal("alice")
	gt.True(t, page.Lock.IsLocked)

	// Second caller silently overwrites; the lock is advisory.
	gt.NoError(t, repo.SetPageLock(ctx, id, &model.PageLock{LockedBy: "bob", IsLocked: true}))
	page = gt.R1(repo.GetPage(ctx, id)).NoError(t)
	gt.V(t, page.Lock.LockedBy).Equal("bob")

	gt.NoError(t, repo.SetPageLock(ctx, id, nil))
	page = gt.R1(repo.GetPage(ctx, id)).NoError(t)
	gt.V(t, page.Lock).Equal(nil)
}

func testSearch(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()

	wsID := gt.R1(repo.CreateWorkspace(ctx, &model.Workspace{Name: "Search"})).NoError(t)
	otherWS := gt.R1(repo.CreateWorkspace(ctx, &model.Workspace{Name: "Other"})).NoError(t)

	gt.R1(repo.CreatePage(ctx, &model.Page{
		Title: "Deployment Guide", Content: "how to ship", FolderPath: "/", Tags: []string{"ops"}, WorkspaceID: wsID,
	})).NoError(t)
	gt.R1(repo.CreatePage(ctx, &model.Page{
		Title: "Roadmap", Content: "we plan to DEPLOY weekly", FolderPath: "/", Tags: []string{}, WorkspaceID: wsID,
	})).NoError(t)
	gt.R1(repo.CreatePage(ctx, &model.Page{
		Title: "Misc", Content: "nothing here", FolderPath: "/", Tags: []string{"deploy"}, WorkspaceID: wsID,
	})).NoError(t)
	gt.R1(repo.CreatePage(ctx, &model.Page{
		Title: "Deployment Guide", Content: "other workspace", FolderPath: "/", Tags: []string{}, WorkspaceID: otherWS,
	})).NoError(t)

	t.Run("case-insensitive match over title, content and tags", func(t *testing.T) {
		pages := gt.R1(repo.SearchPages(ctx, wsID, "deploy", 50)).NoError(t)
		gt.V(t, len(pages)).Equal(3)
	})

	t.Run("scoped to workspace", func(t *testing.T) {
		pages := gt.R1(repo.SearchPages(ctx, otherWS, "deploy", 50)).NoError(t)
		gt.V(t, len(pages)).Equal(1)
	})

	t.Run("respects limit", func(t *testing.T) {
		pages := gt.R1(repo.SearchPages(ctx, wsID, "deploy", 2)).NoError(t)
		gt.V(t, len(pages)).Equal(2)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		pages := gt.R1(repo.SearchPages(ctx, wsID, "zebra", 50)).NoError(t)
		gt.V(t, len(pages)).Equal(0)
	})

	t.Run("malformed pattern fails", func(t *testing.T) {
		_, err := repo.SearchPages(ctx, wsID, "([", 50)
		gt.True(t, errors.Is(err, types.ErrInvalidQuery))
	})
}

func testInvalidIDs(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()

	_, err := repo.GetWorkspace(ctx, "not-an-id")
	gt.True(t, errors.Is(err, types.ErrInvalidID))

	_, err = repo.GetPage(ctx, "not-an-id")
	gt.True(t, errors.Is(err, types.ErrInvalidID))

	err = repo.DeletePage(ctx, "not-an-id")
	gt.True(t, errors.Is(err, types.ErrInvalidID))

	err = repo.UpdatePage(ctx, "not-an-id", &model.PageUpdate{Title: ptr("x")})
	gt.True(t, errors.Is(err, types.ErrInvalidID))
}
