package config_test

import (
	"context"
	"testing"

	"github.com/gameops-lab/rconhub/pkg/cli/config"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

func runWithFlags(t *testing.T, flags []cli.Flag, args []string, action func(context.Context, *cli.Command) error) error {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  flags,
		Action: action,
	}
	return cmd.Run(context.Background(), append([]string{"test"}, args...))
}

func TestRepositoryConfig(t *testing.T) {
	t.Run("memory backend by default", func(t *testing.T) {
		var cfg config.Repository
		err := runWithFlags(t, cfg.Flags(), nil, func(ctx context.Context, c *cli.Command) error {
			repo, err := cfg.Configure(ctx)
			gt.NoError(t, err).Required()
			gt.Value(t, repo).NotNil()
			return repo.Close()
		})
		gt.NoError(t, err)
	})

	t.Run("firestore backend requires a project id", func(t *testing.T) {
		var cfg config.Repository
		err := runWithFlags(t, cfg.Flags(), []string{"--repository-backend", "firestore"}, func(ctx context.Context, c *cli.Command) error {
			_, err := cfg.Configure(ctx)
			gt.Value(t, err).NotNil()
			return nil
		})
		gt.NoError(t, err)
	})

	t.Run("unknown backend is rejected", func(t *testing.T) {
		var cfg config.Repository
		err := runWithFlags(t, cfg.Flags(), []string{"--repository-backend", "sqlite"}, func(ctx context.Context, c *cli.Command) error {
			_, err := cfg.Configure(ctx)
			gt.Value(t, err).NotNil()
			return nil
		})
		gt.NoError(t, err)
	})
}

func TestAuthConfig(t *testing.T) {
	t.Run("requires a secret unless no-auth", func(t *testing.T) {
		var cfg config.Auth
		err := runWithFlags(t, cfg.Flags(), nil, func(ctx context.Context, c *cli.Command) error {
			_, err := cfg.Configure()
			gt.Value(t, err).NotNil()
			return nil
		})
		gt.NoError(t, err)
	})

	t.Run("no-auth mode", func(t *testing.T) {
		var cfg config.Auth
		err := runWithFlags(t, cfg.Flags(), []string{"--no-auth"}, func(ctx context.Context, c *cli.Command) error {
			authUC, err := cfg.Configure()
			gt.NoError(t, err).Required()
			gt.Bool(t, authUC.IsNoAuthn()).True()
			return nil
		})
		gt.NoError(t, err)
	})

	t.Run("secret mode validates tokens", func(t *testing.T) {
		var cfg config.Auth
		err := runWithFlags(t, cfg.Flags(), []string{"--session-secret", "s3cret"}, func(ctx context.Context, c *cli.Command) error {
			authUC, err := cfg.Configure()
			gt.NoError(t, err).Required()
			gt.Bool(t, authUC.IsNoAuthn()).False()
			return nil
		})
		gt.NoError(t, err)
	})
}

func TestSlackConfig(t *testing.T) {
	t.Run("unconfigured is not an error", func(t *testing.T) {
		var cfg config.Slack
		err := runWithFlags(t, cfg.Flags(), nil, func(ctx context.Context, c *cli.Command) error {
			notifier, err := cfg.Configure()
			gt.NoError(t, err).Required()
			gt.Value(t, notifier).Nil()
			return nil
		})
		gt.NoError(t, err)
	})

	t.Run("token without channel is rejected", func(t *testing.T) {
		var cfg config.Slack
		err := runWithFlags(t, cfg.Flags(), []string{"--slack-bot-token", "xoxb-test"}, func(ctx context.Context, c *cli.Command) error {
			_, err := cfg.Configure()
			gt.Value(t, err).NotNil()
			return nil
		})
		gt.NoError(t, err)
	})

	t.Run("full configuration", func(t *testing.T) {
		var cfg config.Slack
		args := []string{"--slack-bot-token", "xoxb-test", "--slack-channel", "#gameops"}
		err := runWithFlags(t, cfg.Flags(), args, func(ctx context.Context, c *cli.Command) error {
			notifier, err := cfg.Configure()
			gt.NoError(t, err).Required()
			gt.Value(t, notifier).NotNil()
			gt.Bool(t, cfg.IsConfigured()).True()
			return nil
		})
		gt.NoError(t, err)
	})
}

func TestRconConfig(t *testing.T) {
	t.Run("requires an endpoint", func(t *testing.T) {
		var cfg config.Rcon
		err := runWithFlags(t, cfg.Flags(), nil, func(ctx context.Context, c *cli.Command) error {
			_, err := cfg.Configure()
			gt.Value(t, err).NotNil()
			return nil
		})
		gt.NoError(t, err)
	})

	t.Run("direct url and key", func(t *testing.T) {
		var cfg config.Rcon
		args := []string{"--rcon-url", "https://rcon.example.com", "--rcon-api-key", "key"}
		err := runWithFlags(t, cfg.Flags(), args, func(ctx context.Context, c *cli.Command) error {
			invoker, err := cfg.Configure()
			gt.NoError(t, err).Required()
			gt.Value(t, invoker).NotNil()
			return nil
		})
		gt.NoError(t, err)
	})

	t.Run("profile file", func(t *testing.T) {
		t.Setenv("TEST_RCON_CONFIG_KEY", "profile-key")
		path := writeProfiles(t, `
[[server]]
id = "eu-1"
name = "Main EU server"
url = "https://rcon-eu.example.com"
api_key_env = "TEST_RCON_CONFIG_KEY"
`)
		var cfg config.Rcon
		err := runWithFlags(t, cfg.Flags(), []string{"--rcon-config", path}, func(ctx context.Context, c *cli.Command) error {
			invoker, err := cfg.Configure()
			gt.NoError(t, err).Required()
			gt.Value(t, invoker).NotNil()
			return nil
		})
		gt.NoError(t, err)
	})
}
