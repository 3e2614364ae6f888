package config

import (
	"log/slog"
	"time"

	"github.com/docfold/docfold/pkg/infra/githubclient"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	baseURL string
	timeout time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("DOCFOLD_GITHUB_BASE_URL"),
			Destination: &x.baseURL,
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Per-call timeout for GitHub API requests",
			Category:    "GitHub",
			Sources:     cli.EnvVars("DOCFOLD_GITHUB_TIMEOUT"),
			Value:       20 * time.Second,
			Destination: &x.timeout,
		},
	}
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("baseURL", x.baseURL),
		slog.Any("timeout", x.timeout),
	)
}

func (x *GitHub) New() *githubclient.Client {
	options := []githubclient.Option{
		githubclient.WithTimeout(x.timeout),
	}
	if x.baseURL != "" {
		options = append(options, githubclient.WithBaseURL(x.baseURL))
	}
	return githubclient.New(options...)
}
