package subscriptions

import (
	"emperror.dev/errors"
	"github.com/starshine-sys/crusader/config"
)

// Unsubscribe lists the groups the member is in, or removes them from the named group.
// Unlike Subscribe, it works in blacklisted channels.
func (h *Handler) Unsubscribe(req Request) (string, error) {
	roles, err := h.roles.Roles(req.GuildID)
	if err != nil {
		return "", errors.Wrap(err, "fetching roles")
	}

	args := config.Normalize(req.Args)
	if args == "" {
		return h.list(roles, req.Member, true, NoUnsubscriptionReply), nil
	}

	g, ok := h.groups.Find(args)
	if !ok {
		return cantFind(req.Member, args), nil
	}

	role, ok := roleByName(roles, g.Role)
	if !ok {
		return cantFind(req.Member, args), nil
	}

	if !req.Member.Has(role.ID) {
		return req.Member.ID.Mention() + ", you're not subscribed to " + g.Name, nil
	}

	err = h.roles.RemoveRole(req.GuildID, req.Member.ID, role.ID)
	if err != nil {
		return "", errors.Wrapf(err, "removing role %v from %v", role.ID, req.Member.ID)
	}

	return req.Member.ID.Mention() + ", you're now unsubscribed from " + g.Name, nil
}
