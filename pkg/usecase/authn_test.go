package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/gameops-lab/rconhub/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestAuthUseCase(t *testing.T) {
	ctx := context.Background()
	secret := []byte("test-signing-secret")

	t.Run("requires a signing secret", func(t *testing.T) {
		_, err := usecase.NewAuthUseCase(nil)
		gt.Value(t, err).NotNil()
	})

	t.Run("issue and validate roundtrip", func(t *testing.T) {
		auth, err := usecase.NewAuthUseCase(secret)
		gt.NoError(t, err).Required()

		actor := model.NewActor("moderator", false, []model.PermissionGrant{
			{Permission: "can_kick_players"},
			{Permission: "can_message_players"},
		})

		raw, err := auth.IssueToken(actor, time.Minute)
		gt.NoError(t, err).Required()

		got, err := auth.ValidateToken(ctx, raw)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Name).Equal("moderator")
		gt.Bool(t, got.IsSuperuser).False()
		gt.Bool(t, got.Permissions.Has(types.Permission("can_kick_players"))).True()
		gt.Bool(t, got.Permissions.Has(types.Permission("can_message_players"))).True()
		gt.Bool(t, got.Permissions.Has(types.Permission("can_perma_ban_players"))).False()
	})

	t.Run("superuser flag survives the roundtrip", func(t *testing.T) {
		auth, err := usecase.NewAuthUseCase(secret)
		gt.NoError(t, err).Required()

		raw, err := auth.IssueToken(model.NewActor("admin", true, nil), time.Minute)
		gt.NoError(t, err).Required()

		got, err := auth.ValidateToken(ctx, raw)
		gt.NoError(t, err).Required()
		gt.Bool(t, got.IsSuperuser).True()
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		issuer, err := usecase.NewAuthUseCase([]byte("other-secret"))
		gt.NoError(t, err).Required()
		raw, err := issuer.IssueToken(model.NewActor("admin", true, nil), time.Minute)
		gt.NoError(t, err).Required()

		auth, err := usecase.NewAuthUseCase(secret)
		gt.NoError(t, err).Required()
		_, err = auth.ValidateToken(ctx, raw)
		gt.Value(t, err).NotNil()
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		auth, err := usecase.NewAuthUseCase(secret)
		gt.NoError(t, err).Required()

		raw, err := auth.IssueToken(model.NewActor("admin", true, nil), -time.Hour)
		gt.NoError(t, err).Required()

		_, err = auth.ValidateToken(ctx, raw)
		gt.Value(t, err).NotNil()
	})

	t.Run("no-auth mode neither issues nor validates", func(t *testing.T) {
		auth := usecase.NewNoAuthn()
		gt.Bool(t, auth.IsNoAuthn()).True()

		_, err := auth.IssueToken(model.NewActor("admin", true, nil), time.Minute)
		gt.Value(t, err).NotNil()

		_, err = auth.ValidateToken(ctx, "anything")
		gt.Value(t, err).NotNil()
	})
}
