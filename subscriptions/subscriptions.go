// Package subscriptions implements the subscribe and unsubscribe commands:
// listing the configured groups and toggling a member's group roles.
package subscriptions

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/crusader/config"
	"go.uber.org/zap"
)

// Fixed replies.
const (
	BlacklistedReply      = "This command cannot be used from this channel"
	NoSubscriptionsReply  = "```No other groups to subscribe to```"
	NoUnsubscriptionReply = "```No other groups to unsubscribe from```"
)

// RoleManager is the part of the Discord API the handlers need.
type RoleManager interface {
	// Roles returns all roles on the server.
	Roles(guildID discord.GuildID) ([]discord.Role, error)
	AddRole(guildID discord.GuildID, userID discord.UserID, roleID discord.RoleID) error
	RemoveRole(guildID discord.GuildID, userID discord.UserID, roleID discord.RoleID) error
}

// Member is the user invoking a command, with the roles they held when they sent it.
type Member struct {
	ID      discord.UserID
	RoleIDs []discord.RoleID
}

// Has returns true if the member holds the given role.
func (m Member) Has(id discord.RoleID) bool {
	for _, r := range m.RoleIDs {
		if r == id {
			return true
		}
	}
	return false
}

// Request is a single subscribe or unsubscribe invocation.
type Request struct {
	GuildID   discord.GuildID
	ChannelID discord.ChannelID
	Member    Member
	// Args is everything after the command name.
	Args string
}

// Handler runs subscribe and unsubscribe requests against a set of groups.
type Handler struct {
	groups *config.Groups
	roles  RoleManager
	log    *zap.SugaredLogger
}

// New creates a Handler.
func New(groups *config.Groups, roles RoleManager, log *zap.SugaredLogger) *Handler {
	return &Handler{
		groups: groups,
		roles:  roles,
		log:    log,
	}
}

// list returns a table of the groups whose role exists and is (or isn't) held by the member,
// or empty if there are none.
func (h *Handler) list(roles []discord.Role, m Member, held bool, empty string) string {
	t := NewTable("Name", "Description", "Type")
	for _, g := range h.groups.Roles {
		role, ok := roleByName(roles, g.Role)
		if ok && m.Has(role.ID) == held {
			t.AddRow(g.Name, g.Description, g.Type)
		}
	}

	if t.Len() == 0 {
		return empty
	}

	t.SortBy(0)
	return "```" + t.String() + "```"
}

func roleByName(roles []discord.Role, name string) (discord.Role, bool) {
	for _, r := range roles {
		if r.Name == name {
			return r, true
		}
	}
	return discord.Role{}, false
}

func cantFind(m Member, args string) string {
	return m.ID.Mention() + ", I can't find " + args
}
