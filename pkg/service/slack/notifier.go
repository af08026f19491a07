package slack

import (
	"context"

	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// DefaultUsername is the display name used for settle notifications
const DefaultUsername = "rconhub"

// client posts batch settle summaries to a Slack channel
type client struct {
	api      *slack.Client
	channel  string
	username string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithUsername overrides the display name of the posting bot
func WithUsername(name string) Option {
	return func(c *client) {
		c.username = name
	}
}

// New creates a Slack notifier posting to the given channel
func New(token, channel string, opts ...Option) (Notifier, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channel == "" {
		return nil, goerr.New("Slack channel is required")
	}

	c := &client{
		api:      slack.New(token),
		channel:  channel,
		username: DefaultUsername,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// NotifyBatchSettled posts a summary message for a settled batch
func (c *client) NotifyBatchSettled(ctx context.Context, entry *model.AuditEntry) error {
	blocks := buildSettleBlocks(entry)

	_, _, err := c.api.PostMessageContext(ctx, c.channel,
		slack.MsgOptionUsername(c.username),
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionAttachments(slack.Attachment{
			Color: settleColor(entry),
		}),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post settle notification",
			goerr.V("channel", c.channel),
			goerr.V("action", entry.ActionName),
			goerr.V("dialogID", entry.DialogID),
		)
	}

	return nil
}
