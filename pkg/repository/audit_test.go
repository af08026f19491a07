package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gameops-lab/rconhub/pkg/domain/interfaces"
	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/gameops-lab/rconhub/pkg/repository/firestore"
	"github.com/gameops-lab/rconhub/pkg/repository/memory"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
)

func testEntry(settledAt time.Time) *model.AuditEntry {
	return &model.AuditEntry{
		ID:         uuid.NewString(),
		DialogID:   types.NewDialogID(),
		ActionName: "kick",
		Command:    "kick_player",
		ActorName:  "mod",
		State:      types.BatchStatePartiallyFailed,
		Outcomes: []model.AuditOutcome{
			{RecipientID: "a", DisplayLabel: "Alice", State: types.RecipientStateSuccess},
			{RecipientID: "b", DisplayLabel: "Bob", State: types.RecipientStateError, ErrorDetail: "already kicked"},
		},
		StartedAt: settledAt.Add(-2 * time.Second),
		SettledAt: settledAt,
	}
}

func runAuditRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put then Get round-trips the entry", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		entry := testEntry(time.Now().UTC().Truncate(time.Millisecond))
		gt.NoError(t, repo.Audit().Put(ctx, entry)).Required()

		got, err := repo.Audit().Get(ctx, entry.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, got.ActionName).Equal("kick")
		gt.Value(t, got.State).Equal(types.BatchStatePartiallyFailed)
		gt.Array(t, got.Outcomes).Length(2)
		gt.Value(t, got.Outcomes[1].ErrorDetail).Equal("already kicked")
	})

	t.Run("Put without ID fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		entry := testEntry(time.Now().UTC())
		entry.ID = ""
		gt.Value(t, repo.Audit().Put(ctx, entry)).NotNil()
	})

	t.Run("Get unknown entry fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Audit().Get(ctx, uuid.NewString())
		gt.Value(t, err).NotNil()
	})

	t.Run("List returns newest first and honors limit", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		base := time.Now().UTC().Truncate(time.Millisecond)
		oldest := testEntry(base.Add(-2 * time.Minute))
		middle := testEntry(base.Add(-1 * time.Minute))
		newest := testEntry(base)
		for _, e := range []*model.AuditEntry{oldest, middle, newest} {
			gt.NoError(t, repo.Audit().Put(ctx, e)).Required()
		}

		entries, err := repo.Audit().List(ctx, 2)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(2)
		gt.Value(t, entries[0].ID).Equal(newest.ID)
		gt.Value(t, entries[1].ID).Equal(middle.ID)
	})

	t.Run("stored entry is isolated from caller mutation", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		entry := testEntry(time.Now().UTC())
		gt.NoError(t, repo.Audit().Put(ctx, entry)).Required()

		entry.Outcomes[0].State = types.RecipientStateError

		got, err := repo.Audit().Get(ctx, entry.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Outcomes[0].State).Equal(types.RecipientStateSuccess)
	})
}

func TestAuditRepository_Memory(t *testing.T) {
	runAuditRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestAuditRepository_Firestore(t *testing.T) {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID not set")
	}

	runAuditRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := firestore.New(context.Background(), projectID, os.Getenv("FIRESTORE_DATABASE_ID"))
		gt.NoError(t, err).Required()
		return repo
	})
}
