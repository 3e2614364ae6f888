package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	WorkspaceID string
	PageID      string
	GitHubToken string
	RequestID   string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x WorkspaceID) String() string { return string(x) }
func (x PageID) String() string      { return string(x) }

// GitHubToken is a per-workspace personal access token. It must never
// appear in logs or API responses.
func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

// SyncState is the workspace's repository linkage state, derived from
// which optional fields are set.
type SyncState int

const (
	SyncUnconnected SyncState = iota
	SyncConnected
	SyncRepoSelected
)

func (x SyncState) String() string {
	switch x {
	case SyncConnected:
		return "connected"
	case SyncRepoSelected:
		return "repo_selected"
	default:
		return "unconnected"
	}
}
