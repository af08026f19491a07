package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type auditRepository struct {
	mu      sync.RWMutex
	entries map[string]*model.AuditEntry
}

func newAuditRepository() *auditRepository {
	return &auditRepository{
		entries: make(map[string]*model.AuditEntry),
	}
}

// copyEntry creates a deep copy of an audit entry
func copyEntry(e *model.AuditEntry) *model.AuditEntry {
	outcomes := make([]model.AuditOutcome, len(e.Outcomes))
	copy(outcomes, e.Outcomes)

	out := *e
	out.Outcomes = outcomes
	return &out
}

func (r *auditRepository) Put(ctx context.Context, entry *model.AuditEntry) error {
	if entry.ID == "" {
		return goerr.New("audit entry requires an ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID] = copyEntry(entry)
	return nil
}

func (r *auditRepository) Get(ctx context.Context, id string) (*model.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, goerr.New("audit entry not found", goerr.V("id", id))
	}
	return copyEntry(entry), nil
}

func (r *auditRepository) List(ctx context.Context, limit int) ([]*model.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.AuditEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, copyEntry(e))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SettledAt.After(out[j].SettledAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
