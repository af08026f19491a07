package interfaces

import (
	"context"

	"github.com/gameops-lab/rconhub/pkg/domain/model"
)

// CommandResponse is the decoded body of a transport-successful invocation.
// Failed distinguishes a logical failure (the command reached the server but
// did not apply to the target) from success; PlayerID echoes the target.
type CommandResponse struct {
	Failed   bool   `json:"failed"`
	Error    string `json:"error,omitempty"`
	PlayerID string `json:"player_id,omitempty"`
}

// CommandInvoker performs one remote call for one recipient. A non-nil
// error means the transport itself failed (network, timeout, unreachable)
// and no CommandResponse is available; a logical failure is reported via
// the response body, never as an error.
type CommandInvoker interface {
	Invoke(ctx context.Context, command string, payload model.Payload) (*CommandResponse, error)
}
