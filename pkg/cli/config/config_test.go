package config_test

import (
	"testing"

	"github.com/docfold/docfold/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestMongoFlags(t *testing.T) {
	mongoConfig := &config.Mongo{}
	flags := mongoConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	gt.True(t, names["mongo-uri"])
	gt.True(t, names["mongo-database"])

	gt.False(t, mongoConfig.Enabled())
}

func TestGitHubFlags(t *testing.T) {
	githubConfig := &config.GitHub{}
	flags := githubConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	gt.True(t, names["github-base-url"])
	gt.True(t, names["github-timeout"])
}

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	gt.True(t, names["sentry-dsn"])
	gt.True(t, names["sentry-env"])
}
