package cli

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gameops-lab/rconhub/pkg/cli/config"
	httpctrl "github.com/gameops-lab/rconhub/pkg/controller/http"
	"github.com/gameops-lab/rconhub/pkg/service/catalog"
	"github.com/gameops-lab/rconhub/pkg/usecase"
	"github.com/gameops-lab/rconhub/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdServe() *cli.Command {
	var addr string
	var autoCloseDelay time.Duration
	var repoCfg config.Repository
	var rconCfg config.Rcon
	var authCfg config.Auth
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("RCONHUB_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "auto-close-delay",
			Usage:       "How long a fully successful dialog stays visible before closing",
			Value:       usecase.DefaultAutoCloseDelay,
			Sources:     cli.EnvVars("RCONHUB_AUTO_CLOSE_DELAY"),
			Destination: &autoCloseDelay,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, rconCfg.Flags()...)
	flags = append(flags, authCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			// Remote-control transport
			invoker, err := rconCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure rcon transport")
			}

			// Operator authentication
			authUC, err := authCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure authentication")
			}
			if authCfg.IsNoAuthMode() {
				logging.Default().Warn("Running in no-auth mode (development only)")
			}

			ucOpts := []usecase.Option{
				usecase.WithAuditRepository(repo),
				usecase.WithAutoCloseDelay(autoCloseDelay),
			}

			// Optional Slack settle notifications
			notifier, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure Slack notifications")
			}
			if notifier != nil {
				ucOpts = append(ucOpts, usecase.WithNotifier(notifier))
				logging.Default().Info("Slack settle notifications enabled")
			}

			uc := usecase.New(catalog.New(), invoker, ucOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpctrl.WithAuth(authUC)),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Shut down on SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				logging.Default().Info("Shutting down HTTP server")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				return nil
			})

			if err := eg.Wait(); err != nil {
				return err
			}
			logging.Default().Info("Server shutdown completed")
			return nil
		},
	}
}
