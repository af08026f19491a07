package model_test

import (
	"testing"

	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func testAction() *model.ActionDefinition {
	return &model.ActionDefinition{
		Name:        "kick",
		Description: "Remove the player from the server",
		Command:     "kick",
		RequiredPermissions: []types.Permission{
			"can_kick_players",
		},
	}
}

func testRecipients(ids ...string) []model.Recipient {
	out := make([]model.Recipient, len(ids))
	for i, id := range ids {
		r, _ := model.NormalizeTarget(model.Target{ID: id, Name: "Player_" + id})
		out[i] = r
	}
	return out
}

func TestNewBatchRequest(t *testing.T) {
	t.Run("fresh batch starts editing with idle recipients", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a", "b"), model.Payload{"reason": "afk"})
		gt.NoError(t, err).Required()

		gt.Value(t, batch.State).Equal(types.BatchStateEditing)
		gt.Array(t, batch.Recipients).Length(2)
		for _, rs := range batch.Recipients {
			gt.Value(t, rs.State).Equal(types.RecipientStateIdle)
		}
	})

	t.Run("batch without recipients fails", func(t *testing.T) {
		_, err := model.NewBatchRequest(testAction(), nil, nil)
		gt.Value(t, err).NotNil()
	})

	t.Run("batch without action fails", func(t *testing.T) {
		_, err := model.NewBatchRequest(nil, testRecipients("a"), nil)
		gt.Value(t, err).NotNil()
	})
}

func TestBatchRequest_RemoveRecipient(t *testing.T) {
	t.Run("remove while editing deletes status entry", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a", "b"), nil)
		gt.NoError(t, err).Required()

		gt.NoError(t, batch.RemoveRecipient("a"))
		gt.Array(t, batch.Recipients).Length(1)

		_, ok := batch.Status("a")
		gt.Bool(t, ok).False()
	})

	t.Run("remove while submitting is rejected", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a", "b"), nil)
		gt.NoError(t, err).Required()
		gt.NoError(t, batch.BeginSubmission())

		err = batch.RemoveRecipient("a")
		gt.Value(t, err).NotNil()
		gt.Error(t, err).Is(model.ErrBatchNotEditable)
		gt.Array(t, batch.Recipients).Length(2)
	})

	t.Run("remove after partial failure is allowed", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a", "b"), nil)
		gt.NoError(t, err).Required()
		gt.NoError(t, batch.BeginSubmission())
		gt.NoError(t, batch.Resolve("a", types.RecipientStateSuccess, ""))
		gt.NoError(t, batch.Resolve("b", types.RecipientStateError, "already banned"))

		state, err := batch.Settle()
		gt.NoError(t, err).Required()
		gt.Value(t, state).Equal(types.BatchStatePartiallyFailed)

		gt.NoError(t, batch.RemoveRecipient("b"))
		gt.Array(t, batch.Recipients).Length(1)
	})

	t.Run("unknown recipient", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a"), nil)
		gt.NoError(t, err).Required()

		err = batch.RemoveRecipient("nope")
		gt.Error(t, err).Is(model.ErrRecipientNotFound)
	})
}

func TestBatchRequest_BeginSubmission(t *testing.T) {
	t.Run("moves every recipient to pending synchronously", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a", "b", "c"), nil)
		gt.NoError(t, err).Required()

		gt.NoError(t, batch.BeginSubmission())
		gt.Value(t, batch.State).Equal(types.BatchStateSubmitting)
		for _, rs := range batch.Recipients {
			gt.Value(t, rs.State).Equal(types.RecipientStatePending)
		}
	})

	t.Run("double submission is rejected", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a"), nil)
		gt.NoError(t, err).Required()
		gt.NoError(t, batch.BeginSubmission())

		err = batch.BeginSubmission()
		gt.Error(t, err).Is(model.ErrBatchAlreadySubmitting)
	})

	t.Run("resubmission resets to pending and clears error details", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a", "b"), nil)
		gt.NoError(t, err).Required()
		gt.NoError(t, batch.BeginSubmission())
		gt.NoError(t, batch.Resolve("a", types.RecipientStateSuccess, ""))
		gt.NoError(t, batch.Resolve("b", types.RecipientStateError, "logical failure"))
		_, err = batch.Settle()
		gt.NoError(t, err).Required()

		gt.NoError(t, batch.BeginSubmission())
		gt.Array(t, batch.Recipients).Length(2) // no duplicate status entries
		for _, rs := range batch.Recipients {
			gt.Value(t, rs.State).Equal(types.RecipientStatePending)
			gt.Value(t, rs.ErrorDetail).Equal("")
		}
	})

	t.Run("completed batch cannot be resubmitted", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a"), nil)
		gt.NoError(t, err).Required()
		gt.NoError(t, batch.BeginSubmission())
		gt.NoError(t, batch.Resolve("a", types.RecipientStateSuccess, ""))
		_, err = batch.Settle()
		gt.NoError(t, err).Required()

		gt.Value(t, batch.BeginSubmission()).NotNil()
	})
}

func TestBatchRequest_Resolve(t *testing.T) {
	t.Run("idle recipient cannot settle directly", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a"), nil)
		gt.NoError(t, err).Required()

		err = batch.Resolve("a", types.RecipientStateSuccess, "")
		gt.Value(t, err).NotNil()
	})

	t.Run("settled recipient never regresses", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a"), nil)
		gt.NoError(t, err).Required()
		gt.NoError(t, batch.BeginSubmission())
		gt.NoError(t, batch.Resolve("a", types.RecipientStateSuccess, ""))

		err = batch.Resolve("a", types.RecipientStateError, "late transport failure")
		gt.Value(t, err).NotNil()

		rs, ok := batch.Status("a")
		gt.Bool(t, ok).True()
		gt.Value(t, rs.State).Equal(types.RecipientStateSuccess)
	})
}

func TestBatchRequest_Settle(t *testing.T) {
	t.Run("all success completes", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a", "b"), nil)
		gt.NoError(t, err).Required()
		gt.NoError(t, batch.BeginSubmission())
		gt.NoError(t, batch.Resolve("a", types.RecipientStateSuccess, ""))
		gt.NoError(t, batch.Resolve("b", types.RecipientStateSuccess, ""))

		state, err := batch.Settle()
		gt.NoError(t, err).Required()
		gt.Value(t, state).Equal(types.BatchStateCompleted)
	})

	t.Run("any error is partial failure", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a", "b"), nil)
		gt.NoError(t, err).Required()
		gt.NoError(t, batch.BeginSubmission())
		gt.NoError(t, batch.Resolve("a", types.RecipientStateSuccess, ""))
		gt.NoError(t, batch.Resolve("b", types.RecipientStateError, "invalid state"))

		state, err := batch.Settle()
		gt.NoError(t, err).Required()
		gt.Value(t, state).Equal(types.BatchStatePartiallyFailed)
	})

	t.Run("unsettled recipient blocks aggregation", func(t *testing.T) {
		batch, err := model.NewBatchRequest(testAction(), testRecipients("a", "b"), nil)
		gt.NoError(t, err).Required()
		gt.NoError(t, batch.BeginSubmission())
		gt.NoError(t, batch.Resolve("a", types.RecipientStateSuccess, ""))

		_, err = batch.Settle()
		gt.Value(t, err).NotNil()
	})
}

func TestActionDefinition_BuildPayload(t *testing.T) {
	action := testAction()
	recipients := testRecipients("a")
	common := model.Payload{"reason": "team killing", "duration_hours": 24}

	payload := action.BuildPayload(common, recipients[0])

	gt.Value(t, payload["player_id"]).Equal("a")
	gt.Value(t, payload["player_name"]).Equal("Player_a")
	gt.Value(t, payload["reason"]).Equal("team killing")

	// common payload is not mutated
	_, leaked := common["player_id"]
	gt.Bool(t, leaked).False()
}

func TestActor_CanInvoke(t *testing.T) {
	action := testAction()

	tests := []struct {
		name  string
		actor model.Actor
		want  bool
	}{
		{
			name:  "no permissions denied",
			actor: model.NewActor("mod", false, nil),
			want:  false,
		},
		{
			name:  "superuser without grants allowed",
			actor: model.NewActor("admin", true, nil),
			want:  true,
		},
		{
			name: "exact grant allowed",
			actor: model.NewActor("mod", false, []model.PermissionGrant{
				{Permission: "can_kick_players"},
			}),
			want: true,
		},
		{
			name: "unrelated grant denied",
			actor: model.NewActor("mod", false, []model.PermissionGrant{
				{Permission: "can_message_players"},
			}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.actor.CanInvoke(action)).Equal(tt.want)
		})
	}
}
