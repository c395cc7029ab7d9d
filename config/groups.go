package config

import (
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
)

// Group is a named category that maps to a single role on the server.
type Group struct {
	Name        string `toml:"Name" json:"Name"`
	Description string `toml:"Description" json:"Description"`
	Type        string `toml:"Type" json:"Type"`
	// Role is the name of the role on the server.
	Role string `toml:"Role" json:"Role"`
}

// Key returns the name used to match the group against command arguments.
func (g Group) Key() string {
	return Normalize(g.Name)
}

// Normalize trims and lowercases a group name or command argument.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type BlacklistedChannel struct {
	ID discord.ChannelID `toml:"ID" json:"ID"`
}

// Groups is the channel/role document.
type Groups struct {
	BlacklistedChannels []BlacklistedChannel `toml:"BlacklistedChannels" json:"BlacklistedChannels"`
	Roles               []Group              `toml:"Roles" json:"Roles"`

	blacklist map[discord.ChannelID]struct{}
}

// ReadGroups reads and validates the channel/role document at path.
func ReadGroups(path string) (*Groups, error) {
	var g Groups
	err := decodeFile(path, &g)
	if err != nil {
		return nil, err
	}

	err = g.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid channels file %v", path)
	}

	g.index()
	return &g, nil
}

// NewGroups creates a Groups from already loaded values.
func NewGroups(roles []Group, blacklisted ...discord.ChannelID) *Groups {
	g := &Groups{Roles: roles}
	for _, id := range blacklisted {
		g.BlacklistedChannels = append(g.BlacklistedChannels, BlacklistedChannel{ID: id})
	}
	g.index()
	return g
}

func (g *Groups) index() {
	g.blacklist = make(map[discord.ChannelID]struct{}, len(g.BlacklistedChannels))
	for _, ch := range g.BlacklistedChannels {
		g.blacklist[ch.ID] = struct{}{}
	}
}

// Validate checks that every group has a name and a role, and that every blacklisted channel has an ID.
// Duplicate names are allowed.
func (g *Groups) Validate() (err error) {
	for i, ch := range g.BlacklistedChannels {
		if !ch.ID.IsValid() {
			err = errors.Append(err, errors.Errorf("BlacklistedChannels[%d]: ID is not set", i))
		}
	}

	for i, r := range g.Roles {
		if r.Key() == "" {
			err = errors.Append(err, errors.Errorf("Roles[%d]: Name is not set", i))
		}
		if r.Role == "" {
			err = errors.Append(err, errors.Errorf("Roles[%d] (%v): Role is not set", i, r.Name))
		}
	}
	return err
}

// Blacklisted returns true if commands are rejected in the given channel.
func (g *Groups) Blacklisted(id discord.ChannelID) bool {
	_, ok := g.blacklist[id]
	return ok
}

// Find returns the first group whose normalized name equals key.
// key must already be normalized.
func (g *Groups) Find(key string) (Group, bool) {
	for _, r := range g.Roles {
		if r.Key() == key {
			return r, true
		}
	}
	return Group{}, false
}
