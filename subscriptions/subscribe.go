package subscriptions

import (
	"emperror.dev/errors"
	"github.com/starshine-sys/crusader/config"
)

// Subscribe lists the groups the member can join, or adds them to the named group.
//
// An empty reply with a nil error means nothing should be sent.
// This happens when the named group's role doesn't exist on the server.
func (h *Handler) Subscribe(req Request) (string, error) {
	if h.groups.Blacklisted(req.ChannelID) {
		return BlacklistedReply, nil
	}

	roles, err := h.roles.Roles(req.GuildID)
	if err != nil {
		return "", errors.Wrap(err, "fetching roles")
	}

	args := config.Normalize(req.Args)
	if args == "" {
		return h.list(roles, req.Member, false, NoSubscriptionsReply), nil
	}

	g, ok := h.groups.Find(args)
	if !ok {
		return cantFind(req.Member, args), nil
	}

	role, ok := roleByName(roles, g.Role)
	if !ok {
		h.log.Warnf("Group %q maps to role %q, which doesn't exist in %v", g.Name, g.Role, req.GuildID)
		return "", nil
	}

	if req.Member.Has(role.ID) {
		return req.Member.ID.Mention() + ", you're already subscribed to " + g.Name, nil
	}

	err = h.roles.AddRole(req.GuildID, req.Member.ID, role.ID)
	if err != nil {
		return "", errors.Wrapf(err, "adding role %v to %v", role.ID, req.Member.ID)
	}

	return req.Member.ID.Mention() + ", you're now subscribed to " + g.Name, nil
}
