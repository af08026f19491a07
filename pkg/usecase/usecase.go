package usecase

import (
	"time"

	"github.com/gameops-lab/rconhub/pkg/domain/interfaces"
	"github.com/gameops-lab/rconhub/pkg/service/catalog"
)

// UseCases bundles the engine's use case layer
type UseCases struct {
	Actions *ActionUseCase
	Dialogs *DialogUseCase
}

// Option configures the use case layer
type Option func(*DialogUseCase)

// WithAuditRepository enables persistent audit records for settled batches
func WithAuditRepository(repo interfaces.Repository) Option {
	return func(uc *DialogUseCase) {
		uc.repo = repo
	}
}

// WithCacheInvalidator wires the profile cache invalidation sink
func WithCacheInvalidator(cache interfaces.ProfileCacheInvalidator) Option {
	return func(uc *DialogUseCase) {
		uc.cache = cache
	}
}

// WithNotifier wires the batch settle notifier
func WithNotifier(n BatchNotifier) Option {
	return func(uc *DialogUseCase) {
		uc.notifier = n
	}
}

// WithAutoCloseDelay overrides the confirmation delay before a fully
// successful dialog closes itself
func WithAutoCloseDelay(d time.Duration) Option {
	return func(uc *DialogUseCase) {
		uc.autoCloseDelay = d
	}
}

// WithClock overrides the time source, for tests
func WithClock(now func() time.Time) Option {
	return func(uc *DialogUseCase) {
		uc.now = now
	}
}

// New assembles the use case layer on top of the action catalog and the
// command transport.
func New(c *catalog.Catalog, invoker interfaces.CommandInvoker, opts ...Option) *UseCases {
	actions := NewActionUseCase(c)
	dialogs := NewDialogUseCase(actions, NewDispatcher(invoker))

	for _, opt := range opts {
		opt(dialogs)
	}

	return &UseCases{
		Actions: actions,
		Dialogs: dialogs,
	}
}
