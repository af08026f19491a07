package config

import (
	"log/slog"

	"github.com/gameops-lab/rconhub/pkg/service/slack"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Slack holds CLI flags for the batch settle notifier
type Slack struct {
	botToken string
	channel  string
}

// Flags returns CLI flags for Slack notification configuration
func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (notifications disabled when empty)",
			Category:    "Slack",
			Sources:     cli.EnvVars("RCONHUB_SLACK_BOT_TOKEN"),
			Destination: &x.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Channel for batch settle notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("RCONHUB_SLACK_CHANNEL"),
			Destination: &x.channel,
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.String("channel", x.channel),
	)
}

// IsConfigured checks if Slack notification configuration is complete
func (x *Slack) IsConfigured() bool {
	return x.botToken != "" && x.channel != ""
}

// Configure creates the settle notifier when Slack is configured
func (x *Slack) Configure() (slack.Notifier, error) {
	if x.botToken == "" && x.channel == "" {
		return nil, nil
	}
	if x.botToken == "" || x.channel == "" {
		return nil, goerr.New("Slack notifications require both --slack-bot-token and --slack-channel")
	}
	return slack.New(x.botToken, x.channel)
}
