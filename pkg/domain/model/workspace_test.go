package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
)

func TestWorkspaceSyncState(t *testing.T) {
	cases := []struct {
		name  string
		ws    model.Workspace
		state types.SyncState
	}{
		{
			name:  "no token",
			ws:    model.Workspace{Name: "bare"},
			state: types.SyncUnconnected,
		},
		{
			name:  "token only",
			ws:    model.Workspace{Name: "connected", Token: "ghp_dummy"},
			state: types.SyncConnected,
		},
		{
			name:  "token and repo",
			ws:    model.Workspace{Name: "ready", Token: "ghp_dummy", RepoFullName: "docfold/handbook"},
			state: types.SyncRepoSelected,
		},
		{
			name:  "repo without token",
			ws:    model.Workspace{Name: "odd", RepoFullName: "docfold/handbook"},
			state: types.SyncUnconnected,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, tc.ws.SyncState()).Equal(tc.state)
		})
	}
}

func TestWorkspaceRepoOwnerName(t *testing.T) {
	ws := model.Workspace{RepoFullName: "docfold/handbook"}
	owner, repo, ok := ws.RepoOwnerName()
	gt.True(t, ok)
	gt.V(t, owner).Equal("docfold")
	gt.V(t, repo).Equal("handbook")

	for _, fullName := range []string{"", "noslash", "/repo", "owner/"} {
		ws := model.Workspace{RepoFullName: fullName}
		_, _, ok := ws.RepoOwnerName()
		gt.False(t, ok)
	}
}

func TestWorkspaceView(t *testing.T) {
	ws := model.Workspace{
		ID:           "ws1",
		Name:         "engineering",
		Token:        "ghp_supersecret",
		RepoFullName: "docfold/handbook",
	}

	raw := gt.R1(json.Marshal(ws.View())).NoError(t)
	gt.S(t, string(raw)).NotContains("ghp_supersecret")
	gt.S(t, string(raw)).Contains(`"gh_connected":true`)
	gt.S(t, string(raw)).Contains(`"gh_default_branch":"main"`)
}
