package auth

import (
	"context"

	"github.com/gameops-lab/rconhub/pkg/domain/model"
)

type ctxActorKey struct{}

// ContextWithActor returns a context carrying the authenticated actor
func ContextWithActor(ctx context.Context, actor model.Actor) context.Context {
	return context.WithValue(ctx, ctxActorKey{}, actor)
}

// ActorFromContext extracts the authenticated actor from the context
func ActorFromContext(ctx context.Context) (model.Actor, bool) {
	actor, ok := ctx.Value(ctxActorKey{}).(model.Actor)
	return actor, ok
}

// NewAnonymousActor returns the superuser actor injected in no-auth mode
func NewAnonymousActor() model.Actor {
	return model.NewActor("anonymous", true, nil)
}
