package config

import (
	"log/slog"

	"github.com/gameops-lab/rconhub/pkg/usecase"
	"github.com/gameops-lab/rconhub/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Auth holds CLI flags for operator session authentication
type Auth struct {
	secret string
	noAuth bool
}

// Flags returns CLI flags for authentication configuration
func (a *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "session-secret",
			Usage:       "Signing secret for operator session tokens",
			Category:    "Authentication",
			Sources:     cli.EnvVars("RCONHUB_SESSION_SECRET"),
			Destination: &a.secret,
		},
		&cli.BoolFlag{
			Name:        "no-auth",
			Usage:       "Skip authentication and run every request as a superuser (development only)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("RCONHUB_NO_AUTH"),
			Destination: &a.noAuth,
		},
	}
}

func (a Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("session-secret.len", len(a.secret)),
		slog.Bool("no-auth", a.noAuth),
	)
}

// IsNoAuthMode returns true if no-auth mode is enabled
func (a *Auth) IsNoAuthMode() bool {
	return a.noAuth
}

// Configure creates the session-token validator, or the no-auth validator
// in development mode
func (a *Auth) Configure() (*usecase.AuthUseCase, error) {
	if a.noAuth {
		if a.secret != "" {
			logging.Default().Warn("--no-auth is set, ignoring --session-secret")
		}
		return usecase.NewNoAuthn(), nil
	}

	if a.secret == "" {
		return nil, goerr.New("session authentication is required: set --session-secret, or use --no-auth for development")
	}

	authUC, err := usecase.NewAuthUseCase([]byte(a.secret))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure session authentication")
	}
	return authUC, nil
}
