package infra

import (
	"github.com/docfold/docfold/pkg/domain/interfaces"
	"github.com/docfold/docfold/pkg/infra/githubclient"
	"github.com/docfold/docfold/pkg/repository/memory"
)

type Clients struct {
	repository interfaces.Repository
	github     interfaces.GitHub
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		repository: memory.New(),
		github:     githubclient.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Repository() interfaces.Repository {
	return x.repository
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}

func WithRepository(repo interfaces.Repository) Option {
	return func(x *Clients) {
		x.repository = repo
	}
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}
