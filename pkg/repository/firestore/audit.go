package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type auditRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAuditRepository(client *firestore.Client) *auditRepository {
	return &auditRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *auditRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_audit_entries"
	}
	return "audit_entries"
}

func (r *auditRepository) Put(ctx context.Context, entry *model.AuditEntry) error {
	if entry.ID == "" {
		return goerr.New("audit entry requires an ID")
	}

	_, err := r.client.Collection(r.collection()).Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return goerr.Wrap(err, "failed to store audit entry", goerr.V("id", entry.ID))
	}
	return nil
}

func (r *auditRepository) Get(ctx context.Context, id string) (*model.AuditEntry, error) {
	doc, err := r.client.Collection(r.collection()).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.New("audit entry not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get audit entry", goerr.V("id", id))
	}

	var entry model.AuditEntry
	if err := doc.DataTo(&entry); err != nil {
		return nil, goerr.Wrap(err, "failed to decode audit entry", goerr.V("id", id))
	}
	return &entry, nil
}

func (r *auditRepository) List(ctx context.Context, limit int) ([]*model.AuditEntry, error) {
	query := r.client.Collection(r.collection()).OrderBy("settled_at", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []*model.AuditEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate audit entries")
		}

		var entry model.AuditEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, goerr.Wrap(err, "failed to decode audit entry", goerr.V("doc", doc.Ref.ID))
		}
		out = append(out, &entry)
	}
	return out, nil
}
