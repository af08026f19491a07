package types_test

import (
	"testing"

	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestPermissionSet_HasAll(t *testing.T) {
	tests := []struct {
		name     string
		held     []types.Permission
		required []types.Permission
		want     bool
	}{
		{
			name:     "empty requirement is always satisfied",
			held:     nil,
			required: nil,
			want:     true,
		},
		{
			name:     "exact match",
			held:     []types.Permission{"can_ban"},
			required: []types.Permission{"can_ban"},
			want:     true,
		},
		{
			name:     "superset of requirement",
			held:     []types.Permission{"can_ban", "can_kick", "can_message"},
			required: []types.Permission{"can_kick"},
			want:     true,
		},
		{
			name:     "missing one of several",
			held:     []types.Permission{"can_kick"},
			required: []types.Permission{"can_kick", "can_ban"},
			want:     false,
		},
		{
			name:     "no permissions held",
			held:     nil,
			required: []types.Permission{"can_ban"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := types.NewPermissionSet(tt.held...)
			gt.Value(t, set.HasAll(tt.required)).Equal(tt.want)
		})
	}
}

func TestPermissionSet_Add(t *testing.T) {
	set := types.NewPermissionSet()
	gt.Bool(t, set.Has("can_flag")).False()

	set.Add("can_flag")
	gt.Bool(t, set.Has("can_flag")).True()

	// adding twice keeps a single entry
	set.Add("can_flag")
	gt.Array(t, set.List()).Length(1)
}
