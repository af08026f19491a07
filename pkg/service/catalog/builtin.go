package catalog

import (
	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/gameops-lab/rconhub/pkg/domain/types"
)

// Builtin action names
const (
	ActionMessage       = "message"
	ActionWatch         = "watch"
	ActionUnwatch       = "unwatch"
	ActionFlag          = "flag"
	ActionUnflag        = "unflag"
	ActionPunish        = "punish"
	ActionSwitchNow     = "switch now"
	ActionSwitchOnDeath = "switch on death"
	ActionKick          = "kick"
	ActionTempBan       = "temp ban"
	ActionPermaBan      = "perma ban"
	ActionRemoveTempBan = "remove temp ban"
	ActionUnban         = "unban"
	ActionAddVIP        = "add vip"
)

func builtinActions() map[string]*model.ActionDefinition {
	defs := []*model.ActionDefinition{
		{
			Name:                ActionMessage,
			Description:         "Send a private message to the player",
			Command:             "message_player",
			RequiredPermissions: []types.Permission{"can_message_players"},
			FormFieldsRef:       "MessageFields",
		},
		{
			Name:                ActionWatch,
			Description:         "Add the player to the watchlist",
			Command:             "watch_player",
			RequiredPermissions: []types.Permission{"can_add_player_watch"},
			FormFieldsRef:       "WatchFields",
		},
		{
			Name:                ActionUnwatch,
			Description:         "Remove the player from the watchlist",
			Command:             "unwatch_player",
			RequiredPermissions: []types.Permission{"can_remove_player_watch"},
			FormFieldsRef:       "ConfirmFields",
		},
		{
			Name:                ActionFlag,
			Description:         "Attach a flag to the player profile",
			Command:             "flag_player",
			RequiredPermissions: []types.Permission{"can_flag_player"},
			FormFieldsRef:       "FlagFields",
		},
		{
			Name:                ActionUnflag,
			Description:         "Remove a flag from the player profile",
			Command:             "unflag_player",
			RequiredPermissions: []types.Permission{"can_unflag_player"},
			FormFieldsRef:       "UnflagFields",
		},
		{
			Name:                ActionPunish,
			Description:         "Kill the player in game with a reason",
			Command:             "punish_player",
			RequiredPermissions: []types.Permission{"can_punish_players"},
			FormFieldsRef:       "ReasonFields",
		},
		{
			Name:                ActionSwitchNow,
			Description:         "Move the player to the other team immediately",
			Command:             "switch_player_now",
			RequiredPermissions: []types.Permission{"can_switch_players_immediately"},
			FormFieldsRef:       "ConfirmFields",
		},
		{
			Name:                ActionSwitchOnDeath,
			Description:         "Move the player to the other team on next death",
			Command:             "switch_player_on_death",
			RequiredPermissions: []types.Permission{"can_switch_players_on_death"},
			FormFieldsRef:       "ConfirmFields",
		},
		{
			Name:                ActionKick,
			Description:         "Remove the player from the server",
			Command:             "kick_player",
			RequiredPermissions: []types.Permission{"can_kick_players"},
			FormFieldsRef:       "ReasonFields",
		},
		{
			Name:                ActionTempBan,
			Description:         "Ban the player for a limited duration",
			Command:             "temp_ban_player",
			RequiredPermissions: []types.Permission{"can_temp_ban_players"},
			Deprecated:          true,
			DeprecationNote:     "Use blacklists with an expiry instead",
			FormFieldsRef:       "TempBanFields",
		},
		{
			Name:                ActionPermaBan,
			Description:         "Ban the player permanently",
			Command:             "perma_ban_player",
			RequiredPermissions: []types.Permission{"can_perma_ban_players"},
			Deprecated:          true,
			DeprecationNote:     "Use blacklists instead",
			FormFieldsRef:       "PermaBanFields",
		},
		{
			Name:                ActionRemoveTempBan,
			Description:         "Lift an active temporary ban",
			Command:             "remove_temp_ban",
			RequiredPermissions: []types.Permission{"can_remove_temp_bans"},
			FormFieldsRef:       "ConfirmFields",
		},
		{
			Name:                ActionUnban,
			Description:         "Lift any active ban on the player",
			Command:             "unban_player",
			RequiredPermissions: []types.Permission{"can_remove_temp_bans", "can_remove_perma_bans"},
			FormFieldsRef:       "ConfirmFields",
		},
		{
			Name:                ActionAddVIP,
			Description:         "Grant the player a VIP slot",
			Command:             "add_vip",
			RequiredPermissions: []types.Permission{"can_add_vip"},
			FormFieldsRef:       "VIPFields",
		},
	}

	byName := make(map[string]*model.ActionDefinition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}
	return byName
}

// builtinSurfaces wires the builtin actions into per-surface menus.
// The two surfaces deliberately order their menus differently: the roster
// view leads with the high-frequency in-game actions, the profile view
// with record-keeping ones.
func builtinSurfaces() map[types.Surface][]*model.ActionDefinition {
	a := builtinActions()

	return map[types.Surface][]*model.ActionDefinition{
		types.SurfaceRoster: {
			a[ActionMessage],
			a[ActionPunish],
			a[ActionSwitchNow],
			a[ActionSwitchOnDeath],
			a[ActionKick],
			a[ActionFlag],
			a[ActionWatch],
			a[ActionTempBan],
			a[ActionPermaBan],
		},
		types.SurfaceProfile: {
			a[ActionMessage],
			a[ActionFlag],
			a[ActionUnflag],
			a[ActionWatch],
			a[ActionUnwatch],
			a[ActionAddVIP],
			a[ActionKick],
			a[ActionTempBan],
			a[ActionRemoveTempBan],
			a[ActionPermaBan],
			a[ActionUnban],
		},
	}
}
