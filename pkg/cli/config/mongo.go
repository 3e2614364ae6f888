package config

import (
	"context"
	"log/slog"

	"github.com/docfold/docfold/pkg/domain/interfaces"
	"github.com/docfold/docfold/pkg/repository/mongo"
	"github.com/urfave/cli/v3"
)

type Mongo struct {
	uri      string
	database string
}

func (x *Mongo) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "mongo-uri",
			Usage:       "MongoDB connection URI (optional; in-memory store when empty)",
			Category:    "MongoDB",
			Sources:     cli.EnvVars("DOCFOLD_MONGO_URI"),
			Destination: &x.uri,
		},
		&cli.StringFlag{
			Name:        "mongo-database",
			Usage:       "MongoDB database name",
			Category:    "MongoDB",
			Sources:     cli.EnvVars("DOCFOLD_MONGO_DATABASE"),
			Value:       "docfold",
			Destination: &x.database,
		},
	}
}

func (x *Mongo) Enabled() bool {
	return x.uri != ""
}

func (x *Mongo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("URI.len", len(x.uri)),
		slog.Any("database", x.database),
	)
}

func (x *Mongo) NewRepository(ctx context.Context) (interfaces.Repository, error) {
	return mongo.New(ctx, x.uri, x.database)
}
