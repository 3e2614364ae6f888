package mongo

import (
	"context"

	"github.com/docfold/docfold/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	collWorkspace = "workspace"
	collPage      = "page"
)

// New creates a MongoDB-backed repository. The client is a shared,
// connection-pooled handle held for the process lifetime.
func New(ctx context.Context, uri, database string) (interfaces.Repository, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create MongoDB client",
			goerr.V("database", database),
		)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, goerr.Wrap(err, "failed to ping MongoDB",
			goerr.V("database", database),
		)
	}

	return &docRepository{
		client: client,
		db:     client.Database(database),
	}, nil
}

type docRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

func (r *docRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx, nil); err != nil {
		return goerr.Wrap(err, "failed to ping MongoDB")
	}
	return nil
}

func (r *docRepository) Close(ctx context.Context) error {
	if err := r.client.Disconnect(ctx); err != nil {
		return goerr.Wrap(err, "failed to disconnect MongoDB client")
	}
	return nil
}
