package interfaces

import (
	"context"

	"github.com/gameops-lab/rconhub/pkg/domain/model"
)

// AuditRepository defines the interface for audit log data access
type AuditRepository interface {
	// Put stores a settled batch record
	Put(ctx context.Context, entry *model.AuditEntry) error

	// Get retrieves an audit entry by ID
	Get(ctx context.Context, id string) (*model.AuditEntry, error)

	// List retrieves the most recent audit entries, newest first
	List(ctx context.Context, limit int) ([]*model.AuditEntry, error)
}

// Repository provides access to all data stores
type Repository interface {
	Audit() AuditRepository
	Close() error
}
