package types_test

import (
	"testing"

	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestRecipientState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state types.RecipientState
		want  bool
	}{
		{
			name:  "valid idle",
			state: types.RecipientStateIdle,
			want:  true,
		},
		{
			name:  "valid pending",
			state: types.RecipientStatePending,
			want:  true,
		},
		{
			name:  "valid success",
			state: types.RecipientStateSuccess,
			want:  true,
		},
		{
			name:  "valid error",
			state: types.RecipientStateError,
			want:  true,
		},
		{
			name:  "invalid state",
			state: types.RecipientState("invalid"),
			want:  false,
		},
		{
			name:  "empty state",
			state: types.RecipientState(""),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.state.IsValid()).Equal(tt.want)
		})
	}
}

func TestRecipientState_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		name string
		from types.RecipientState
		to   types.RecipientState
		want bool
	}{
		{"idle to pending", types.RecipientStateIdle, types.RecipientStatePending, true},
		{"idle to success skips pending", types.RecipientStateIdle, types.RecipientStateSuccess, false},
		{"pending to success", types.RecipientStatePending, types.RecipientStateSuccess, true},
		{"pending to error", types.RecipientStatePending, types.RecipientStateError, true},
		{"pending to idle regresses", types.RecipientStatePending, types.RecipientStateIdle, false},
		{"success is terminal", types.RecipientStateSuccess, types.RecipientStatePending, false},
		{"error is terminal", types.RecipientStateError, types.RecipientStateSuccess, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.from.CanAdvanceTo(tt.to)).Equal(tt.want)
		})
	}
}

func TestRecipientState_IsSettled(t *testing.T) {
	gt.Bool(t, types.RecipientStateIdle.IsSettled()).False()
	gt.Bool(t, types.RecipientStatePending.IsSettled()).False()
	gt.Bool(t, types.RecipientStateSuccess.IsSettled()).True()
	gt.Bool(t, types.RecipientStateError.IsSettled()).True()
}

func TestParseRecipientState(t *testing.T) {
	state, err := types.ParseRecipientState("PENDING")
	gt.NoError(t, err)
	gt.Value(t, state).Equal(types.RecipientStatePending)

	_, err = types.ParseRecipientState("pending")
	gt.Value(t, err).NotNil()
}
