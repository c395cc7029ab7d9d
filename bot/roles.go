package bot

import (
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/starshine-sys/bcr"
)

// stateRoles looks up and changes roles through the shard that handles each guild.
type stateRoles struct {
	r *bcr.Router
}

func (sr stateRoles) state(guildID discord.GuildID) *state.State {
	s, _ := sr.r.StateFromGuildID(guildID)
	return s
}

// Roles returns the guild's roles, from the state cache if possible.
func (sr stateRoles) Roles(guildID discord.GuildID) ([]discord.Role, error) {
	return sr.state(guildID).Roles(guildID)
}

func (sr stateRoles) AddRole(guildID discord.GuildID, userID discord.UserID, roleID discord.RoleID) error {
	return sr.state(guildID).AddRole(guildID, userID, roleID, api.AddRoleData{
		AuditLogReason: "Subscribed to group",
	})
}

func (sr stateRoles) RemoveRole(guildID discord.GuildID, userID discord.UserID, roleID discord.RoleID) error {
	return sr.state(guildID).RemoveRole(guildID, userID, roleID, "Unsubscribed from group")
}
