package slack

import (
	"context"

	"github.com/gameops-lab/rconhub/pkg/domain/model"
)

// Notifier posts batch settle notifications
type Notifier interface {
	NotifyBatchSettled(ctx context.Context, entry *model.AuditEntry) error
}
