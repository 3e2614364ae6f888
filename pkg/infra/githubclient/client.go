package githubclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/docfold/docfold/pkg/domain/interfaces"
	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

// Client talks to the GitHub REST API with a per-workspace bearer token.
// Every call is a single round trip with a bounded timeout; there are no
// retries.
type Client struct {
	baseURL string
	timeout time.Duration
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithBaseURL points the client at a GitHub Enterprise or test endpoint.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(x *Client) {
		x.timeout = timeout
	}
}

func New(options ...Option) *Client {
	client := &Client{
		timeout: 20 * time.Second,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Client) apiClient(ctx context.Context, token types.GitHubToken) (*github.Client, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	httpClient := oauth2.NewClient(ctx, src)
	httpClient.Timeout = x.timeout

	if x.baseURL != "" {
		client, err := github.NewEnterpriseClient(x.baseURL, x.baseURL, httpClient)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub client", goerr.V("baseURL", x.baseURL))
		}
		return client, nil
	}

	return github.NewClient(httpClient), nil
}

// remoteError converts a go-github error into *model.RemoteAPIError so the
// upstream status and body reach the caller.
func remoteError(err error) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return &model.RemoteAPIError{
			StatusCode: ghErr.Response.StatusCode,
			Body:       remoteErrorBody(ghErr),
		}
	}
	return goerr.Wrap(err, "github API request failed")
}

// remoteErrorBody rebuilds the upstream JSON error payload. go-github
// consumes the response body while parsing it, so the original bytes are
// gone; this restores the fields it keeps.
func remoteErrorBody(ghErr *github.ErrorResponse) string {
	payload := map[string]any{
		"message": ghErr.Message,
	}
	if ghErr.DocumentationURL != "" {
		payload["documentation_url"] = ghErr.DocumentationURL
	}
	if len(ghErr.Errors) > 0 {
		payload["errors"] = ghErr.Errors
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return ghErr.Message
	}
	return string(raw)
}

func (x *Client) ListRepos(ctx context.Context, token types.GitHubToken) ([]*model.RemoteRepository, error) {
	client, err := x.apiClient(ctx, token)
	if err != nil {
		return nil, err
	}

	result, _, err := client.Repositories.List(ctx, "", &github.RepositoryListOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, remoteError(err)
	}

	repos := make([]*model.RemoteRepository, 0, len(result))
	for _, repo := range result {
		branch := repo.GetDefaultBranch()
		if branch == "" {
			branch = "main"
		}
		repos = append(repos, &model.RemoteRepository{
			FullName:      repo.GetFullName(),
			DefaultBranch: branch,
		})
	}

	return repos, nil
}

func (x *Client) GetContents(ctx context.Context, token types.GitHubToken, owner, repo, path, ref string) (*model.RepoContent, error) {
	client, err := x.apiClient(ctx, token)
	if err != nil {
		return nil, err
	}

	file, _, resp, err := client.Repositories.GetContents(ctx, owner, repo, path, &github.RepositoryContentGetOptions{
		Ref: ref,
	})
	if err != nil {
		// A missing file is a normal state, not a failure.
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, remoteError(err)
	}
	if file == nil {
		// Path points at a directory; nothing to sync against.
		return nil, nil
	}

	content := &model.RepoContent{
		Path:     file.GetPath(),
		SHA:      file.GetSHA(),
		Encoding: file.GetEncoding(),
	}
	if file.Content != nil {
		content.Content = *file.Content
	}

	return content, nil
}

func (x *Client) PutContents(ctx context.Context, token types.GitHubToken, owner, repo, path string, input *model.PutContentsInput) error {
	client, err := x.apiClient(ctx, token)
	if err != nil {
		return err
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(input.Message),
		Content: input.Content,
		Branch:  github.String(input.Branch),
	}
	if input.SHA != "" {
		opts.SHA = github.String(input.SHA)
	}

	// The contents API treats PUT as create-or-update; the SHA is the
	// remote's own optimistic-concurrency token.
	if _, _, err := client.Repositories.CreateFile(ctx, owner, repo, path, opts); err != nil {
		return remoteError(err)
	}

	return nil
}

func (x *Client) ListCommits(ctx context.Context, token types.GitHubToken, owner, repo, path string, perPage int) ([]*model.RemoteCommit, error) {
	client, err := x.apiClient(ctx, token)
	if err != nil {
		return nil, err
	}

	result, _, err := client.Repositories.ListCommits(ctx, owner, repo, &github.CommitsListOptions{
		Path:        path,
		ListOptions: github.ListOptions{PerPage: perPage},
	})
	if err != nil {
		return nil, remoteError(err)
	}

	commits := make([]*model.RemoteCommit, 0, len(result))
	for _, commit := range result {
		// Nested author info may be absent; the nil-safe getters yield
		// zero values instead of failing.
		author := commit.GetCommit().GetAuthor()
		commits = append(commits, &model.RemoteCommit{
			SHA:        commit.GetSHA(),
			AuthorName: author.GetName(),
			Date:       author.GetDate().Time,
			Message:    commit.GetCommit().GetMessage(),
			URL:        commit.GetHTMLURL(),
		})
	}

	return commits, nil
}
