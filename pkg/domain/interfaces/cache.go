package interfaces

import (
	"context"

	"github.com/gameops-lab/rconhub/pkg/domain/types"
)

// ProfileCacheInvalidator is notified whenever an action succeeded against
// a recipient, so any cached view of that player can be refreshed. The
// dispatcher only guarantees the call happens, not what the sink does.
type ProfileCacheInvalidator interface {
	Invalidate(ctx context.Context, id types.RecipientID) error
}

// ProfileCacheInvalidatorFunc adapts a function to the interface
type ProfileCacheInvalidatorFunc func(ctx context.Context, id types.RecipientID) error

// Invalidate calls the wrapped function
func (f ProfileCacheInvalidatorFunc) Invalidate(ctx context.Context, id types.RecipientID) error {
	return f(ctx, id)
}
