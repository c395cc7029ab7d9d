package subscriptions

import (
	"testing"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/crusader/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	guildID   discord.GuildID   = 1
	channelID discord.ChannelID = 10
	blacklist discord.ChannelID = 11
	userID    discord.UserID    = 42
)

// fakeRoles is an in-memory server with a single member.
type fakeRoles struct {
	roles  []discord.Role
	member []discord.RoleID

	rolesCalls int
	added      []discord.RoleID
	removed    []discord.RoleID

	err error
}

func (f *fakeRoles) Roles(discord.GuildID) ([]discord.Role, error) {
	f.rolesCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.roles, nil
}

func (f *fakeRoles) AddRole(_ discord.GuildID, _ discord.UserID, roleID discord.RoleID) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, roleID)
	f.member = append(f.member, roleID)
	return nil
}

func (f *fakeRoles) RemoveRole(_ discord.GuildID, _ discord.UserID, roleID discord.RoleID) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, roleID)
	for i, id := range f.member {
		if id == roleID {
			f.member = append(f.member[:i], f.member[i+1:]...)
			break
		}
	}
	return nil
}

// request builds a request from the member's current roles.
func (f *fakeRoles) request(ch discord.ChannelID, args string) Request {
	return Request{
		GuildID:   guildID,
		ChannelID: ch,
		Member: Member{
			ID:      userID,
			RoleIDs: append([]discord.RoleID(nil), f.member...),
		},
		Args: args,
	}
}

func newTestHandler(groups []config.Group, roles ...discord.Role) (*Handler, *fakeRoles) {
	f := &fakeRoles{roles: roles}
	return New(config.NewGroups(groups, blacklist), f, zap.NewNop().Sugar()), f
}

var mention = userID.Mention()

// groups from the example scenario: Alpha -> R1, Beta -> R2
func scenario() (*Handler, *fakeRoles) {
	h, f := newTestHandler([]config.Group{
		{Name: "Beta", Description: "Second", Type: "Team", Role: "R2"},
		{Name: "Alpha", Description: "First", Type: "Team", Role: "R1"},
	},
		discord.Role{ID: 101, Name: "R1"},
		discord.Role{ID: 102, Name: "R2"},
	)
	f.member = []discord.RoleID{102}
	return h, f
}

func TestScenario(t *testing.T) {
	h, f := scenario()

	reply, err := h.Subscribe(f.request(channelID, ""))
	require.NoError(t, err)
	assert.Contains(t, reply, "Alpha")
	assert.NotContains(t, reply, "Beta")

	reply, err = h.Subscribe(f.request(channelID, "alpha"))
	require.NoError(t, err)
	assert.Equal(t, mention+", you're now subscribed to Alpha", reply)
	assert.Equal(t, []discord.RoleID{101}, f.added)

	reply, err = h.Unsubscribe(f.request(channelID, "beta"))
	require.NoError(t, err)
	assert.Equal(t, mention+", you're now unsubscribed from Beta", reply)
	assert.Equal(t, []discord.RoleID{102}, f.removed)
	assert.Equal(t, []discord.RoleID{101}, f.member)
}

func TestSubscribeList(t *testing.T) {
	h, f := newTestHandler([]config.Group{
		{Name: "Delta", Description: "d", Type: "x", Role: "R4"},
		{Name: "Bravo", Description: "b", Type: "x", Role: "R2"},
		{Name: "Missing", Description: "m", Type: "x", Role: "nope"},
		{Name: "Alpha", Description: "a", Type: "x", Role: "R1"},
		{Name: "Charlie", Description: "c", Type: "x", Role: "R3"},
	},
		discord.Role{ID: 1, Name: "R1"},
		discord.Role{ID: 2, Name: "R2"},
		discord.Role{ID: 3, Name: "R3"},
		discord.Role{ID: 4, Name: "R4"},
	)
	f.member = []discord.RoleID{3}

	want := NewTable("Name", "Description", "Type")
	want.AddRow("Alpha", "a", "x")
	want.AddRow("Bravo", "b", "x")
	want.AddRow("Delta", "d", "x")

	reply, err := h.Subscribe(f.request(channelID, "   "))
	require.NoError(t, err)
	assert.Equal(t, "```"+want.String()+"```", reply)

	want = NewTable("Name", "Description", "Type")
	want.AddRow("Charlie", "c", "x")

	reply, err = h.Unsubscribe(f.request(channelID, ""))
	require.NoError(t, err)
	assert.Equal(t, "```"+want.String()+"```", reply)

	assert.Empty(t, f.added)
	assert.Empty(t, f.removed)
}

func TestListNothing(t *testing.T) {
	h, f := newTestHandler([]config.Group{
		{Name: "Alpha", Role: "R1"},
		{Name: "Ghost", Role: "gone"},
	}, discord.Role{ID: 1, Name: "R1"})

	reply, err := h.Unsubscribe(f.request(channelID, ""))
	require.NoError(t, err)
	assert.Equal(t, NoUnsubscriptionReply, reply)

	f.member = []discord.RoleID{1}
	reply, err = h.Subscribe(f.request(channelID, ""))
	require.NoError(t, err)
	assert.Equal(t, NoSubscriptionsReply, reply)
}

func TestSubscribeNormalizesArgs(t *testing.T) {
	for _, args := range []string{"  TeamAlpha ", "teamalpha", "TEAMALPHA"} {
		h, f := newTestHandler([]config.Group{{Name: "TeamAlpha", Role: "R1"}}, discord.Role{ID: 1, Name: "R1"})

		reply, err := h.Subscribe(f.request(channelID, args))
		require.NoError(t, err)
		assert.Equal(t, mention+", you're now subscribed to TeamAlpha", reply, args)
	}
}

func TestSubscribeTwice(t *testing.T) {
	h, f := scenario()

	_, err := h.Subscribe(f.request(channelID, "Alpha"))
	require.NoError(t, err)

	reply, err := h.Subscribe(f.request(channelID, "Alpha"))
	require.NoError(t, err)
	assert.Equal(t, mention+", you're already subscribed to Alpha", reply)
	assert.Equal(t, []discord.RoleID{101}, f.added)
}

func TestUnknownGroup(t *testing.T) {
	h, f := scenario()

	for _, args := range []string{"Gamma", "gamma", "  GAMMA"} {
		reply, err := h.Subscribe(f.request(channelID, args))
		require.NoError(t, err)
		assert.Equal(t, mention+", I can't find gamma", reply)

		reply, err = h.Unsubscribe(f.request(channelID, args))
		require.NoError(t, err)
		assert.Equal(t, mention+", I can't find gamma", reply)
	}

	assert.Empty(t, f.added)
	assert.Empty(t, f.removed)
}

func TestSubscribeBlacklisted(t *testing.T) {
	h, f := scenario()

	for _, args := range []string{"", "alpha", "gamma"} {
		reply, err := h.Subscribe(f.request(blacklist, args))
		require.NoError(t, err)
		assert.Equal(t, BlacklistedReply, reply)
	}

	assert.Zero(t, f.rolesCalls)
	assert.Empty(t, f.added)
}

func TestUnsubscribeIgnoresBlacklist(t *testing.T) {
	h, f := scenario()

	reply, err := h.Unsubscribe(f.request(blacklist, "beta"))
	require.NoError(t, err)
	assert.Equal(t, mention+", you're now unsubscribed from Beta", reply)
}

func TestMissingRole(t *testing.T) {
	h, f := newTestHandler([]config.Group{{Name: "Ghost", Role: "gone"}})

	reply, err := h.Subscribe(f.request(channelID, "ghost"))
	require.NoError(t, err)
	assert.Empty(t, reply)

	reply, err = h.Unsubscribe(f.request(channelID, "ghost"))
	require.NoError(t, err)
	assert.Equal(t, mention+", I can't find ghost", reply)

	assert.Empty(t, f.added)
	assert.Empty(t, f.removed)
}

func TestUnsubscribeNotSubscribed(t *testing.T) {
	h, f := scenario()

	reply, err := h.Unsubscribe(f.request(channelID, "ALPHA"))
	require.NoError(t, err)
	assert.Equal(t, mention+", you're not subscribed to Alpha", reply)
	assert.Empty(t, f.removed)
}

func TestRoleErrors(t *testing.T) {
	h, f := scenario()
	f.err = errors.New("discord is down")

	reply, err := h.Subscribe(f.request(channelID, "alpha"))
	assert.Empty(t, reply)
	assert.ErrorIs(t, err, f.err)

	reply, err = h.Unsubscribe(f.request(channelID, ""))
	assert.Empty(t, reply)
	assert.ErrorIs(t, err, f.err)
}

func TestMutationErrors(t *testing.T) {
	h, f := scenario()
	mutateErr := errors.New("missing permissions")

	// only fail the mutation, not the role lookup
	h.roles = &failingMutations{fakeRoles: f, err: mutateErr}

	_, err := h.Subscribe(f.request(channelID, "alpha"))
	assert.ErrorIs(t, err, mutateErr)
	assert.ErrorContains(t, err, "adding role")

	_, err = h.Unsubscribe(f.request(channelID, "beta"))
	assert.ErrorIs(t, err, mutateErr)
	assert.ErrorContains(t, err, "removing role")
}

type failingMutations struct {
	*fakeRoles
	err error
}

func (f *failingMutations) AddRole(discord.GuildID, discord.UserID, discord.RoleID) error {
	return f.err
}

func (f *failingMutations) RemoveRole(discord.GuildID, discord.UserID, discord.RoleID) error {
	return f.err
}
