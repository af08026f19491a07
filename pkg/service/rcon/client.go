// Package rcon is the HTTP client for the game server's remote-control API.
// It is the transport collaborator behind the dispatch engine: one call per
// recipient, with transport failures reported as errors and logical failures
// reported through the decoded response body.
package rcon

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gameops-lab/rconhub/pkg/domain/interfaces"
	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/gameops-lab/rconhub/pkg/utils/logging"
	"github.com/gameops-lab/rconhub/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultTimeout bounds one remote invocation. The dispatcher itself never
// imposes a timeout; it inherits this one.
const DefaultTimeout = 30 * time.Second

type client struct {
	baseURL    *url.URL
	apiKey     logging.Secret
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-invocation timeout
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.httpClient.Timeout = d
	}
}

// New creates a command invoker for the remote-control API at baseURL
func New(baseURL string, apiKey string, opts ...Option) (interfaces.CommandInvoker, error) {
	if baseURL == "" {
		return nil, goerr.New("rcon base URL is required")
	}
	if apiKey == "" {
		return nil, goerr.New("rcon API key is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid rcon base URL", goerr.V("base_url", baseURL))
	}

	c := &client{
		baseURL: parsed,
		apiKey:  logging.Secret(apiKey),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// wireResponse is the command API's response envelope
type wireResponse struct {
	Command   string `json:"command"`
	Failed    bool   `json:"failed"`
	Error     string `json:"error"`
	Arguments struct {
		PlayerID string `json:"player_id"`
	} `json:"arguments"`
}

// Invoke performs one remote call. A returned error always means the
// transport failed and nothing is known about the command's effect; a
// logical failure comes back as a response with Failed set.
func (c *client) Invoke(ctx context.Context, command string, payload model.Payload) (*interfaces.CommandResponse, error) {
	if command == "" {
		return nil, goerr.New("command is required")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode payload", goerr.V("command", command))
	}

	endpoint := c.baseURL.JoinPath("api", command)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("command", command))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey.UnmaskedString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "rcon request failed", goerr.V("command", command))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, goerr.New("rcon returned non-2xx status",
			goerr.V("command", command),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(snippet)))
	}

	var wire wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, goerr.Wrap(err, "failed to decode rcon response", goerr.V("command", command))
	}

	return &interfaces.CommandResponse{
		Failed:   wire.Failed,
		Error:    wire.Error,
		PlayerID: wire.Arguments.PlayerID,
	}, nil
}
