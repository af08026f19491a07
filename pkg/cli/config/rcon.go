package config

import (
	"log/slog"

	"github.com/gameops-lab/rconhub/pkg/domain/interfaces"
	"github.com/gameops-lab/rconhub/pkg/service/rcon"
	"github.com/gameops-lab/rconhub/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Rcon holds CLI flags for the remote-control transport. The endpoint comes
// either from a TOML profile file (--rcon-config + --rcon-server) or from
// the direct --rcon-url / --rcon-api-key pair.
type Rcon struct {
	configPath string
	serverID   string
	baseURL    string
	apiKey     string
}

// Flags returns CLI flags for rcon transport configuration
func (r *Rcon) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "rcon-config",
			Usage:       "Path to the TOML server profiles file",
			Category:    "RCON",
			Sources:     cli.EnvVars("RCONHUB_RCON_CONFIG"),
			Destination: &r.configPath,
		},
		&cli.StringFlag{
			Name:        "rcon-server",
			Usage:       "Server profile id to dispatch to (optional when the file has one profile)",
			Category:    "RCON",
			Sources:     cli.EnvVars("RCONHUB_RCON_SERVER"),
			Destination: &r.serverID,
		},
		&cli.StringFlag{
			Name:        "rcon-url",
			Usage:       "Remote-control API base URL (alternative to --rcon-config)",
			Category:    "RCON",
			Sources:     cli.EnvVars("RCONHUB_RCON_URL"),
			Destination: &r.baseURL,
		},
		&cli.StringFlag{
			Name:        "rcon-api-key",
			Usage:       "Remote-control API key (alternative to --rcon-config)",
			Category:    "RCON",
			Sources:     cli.EnvVars("RCONHUB_RCON_API_KEY"),
			Destination: &r.apiKey,
		},
	}
}

func (r Rcon) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", r.configPath),
		slog.String("server", r.serverID),
		slog.String("url", r.baseURL),
		slog.Int("api-key.len", len(r.apiKey)),
	)
}

// Configure builds the command invoker from the configured endpoint
func (r *Rcon) Configure() (interfaces.CommandInvoker, error) {
	if r.configPath != "" {
		profiles, err := LoadServerProfiles(r.configPath)
		if err != nil {
			return nil, err
		}
		profile, err := profiles.Find(r.serverID)
		if err != nil {
			return nil, err
		}
		apiKey, err := profile.APIKey()
		if err != nil {
			return nil, err
		}

		invoker, err := rcon.New(profile.URL, apiKey)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create rcon client", goerr.V("server", profile.ID))
		}
		logging.Default().Info("Using rcon endpoint from profile",
			"server", profile.ID, "name", profile.Name, "url", profile.URL)
		return invoker, nil
	}

	if r.baseURL == "" || r.apiKey == "" {
		return nil, goerr.New("rcon endpoint is required: set --rcon-config, or --rcon-url and --rcon-api-key")
	}

	invoker, err := rcon.New(r.baseURL, r.apiKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create rcon client")
	}
	logging.Default().Info("Using rcon endpoint", "url", r.baseURL)
	return invoker, nil
}
