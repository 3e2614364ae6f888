package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docfold/docfold/pkg/cli/config"
	"github.com/docfold/docfold/pkg/controller/server"
	"github.com/docfold/docfold/pkg/infra"
	"github.com/docfold/docfold/pkg/usecase"
	"github.com/docfold/docfold/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		mongoDB   config.Mongo
		githubCfg config.GitHub
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("DOCFOLD_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			mongoDB.Flags(),
			githubCfg.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Mongo", mongoDB),
				slog.Any("GitHub", githubCfg),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGitHub(githubCfg.New()),
			}

			if mongoDB.Enabled() {
				repo, err := mongoDB.NewRepository(ctx)
				if err != nil {
					return err
				}
				defer func() {
					if err := repo.Close(context.Background()); err != nil {
						logging.Default().Error("failed to close store client", slog.Any("error", err))
					}
				}()
				infraOptions = append(infraOptions, infra.WithRepository(repo))
			} else {
				logging.Default().Warn("MongoDB is not configured, using in-memory store")
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients)
			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
