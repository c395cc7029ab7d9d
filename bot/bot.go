package bot

import (
	"context"
	"sync/atomic"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/ws"
	"github.com/getsentry/sentry-go"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/crusader/config"
	"github.com/starshine-sys/crusader/subscriptions"
	"go.uber.org/zap"
)

const Intents = gateway.IntentGuilds |
	gateway.IntentGuildMessages |
	gateway.IntentDirectMessages

type Bot struct {
	Router *bcr.Router

	Config        config.Config
	Groups        *config.Groups
	Subscriptions *subscriptions.Handler

	Log *zap.SugaredLogger
	// nil if Sentry is disabled
	hub *sentry.Hub

	commands []*bcr.Command
	self     atomic.Uint64

	// dispatch hands a message to the command router
	dispatch func(*gateway.MessageCreateEvent)
	// channelName returns a channel's name for logging
	channelName func(discord.GuildID, discord.ChannelID) string
	// send replies to a command
	send func(*bcr.Context, string) error
	// setStatus updates the presence of a single shard
	setStatus func(shardID int, status string) error
}

// New creates a new Bot. hub may be nil.
func New(c config.Config, groups *config.Groups, log *zap.SugaredLogger, hub *sentry.Hub) (*Bot, error) {
	ws.WSDebug = log.Named("ws").Debug
	ws.WSError = func(err error) {
		log.Named("ws").Error(err)
	}

	r, err := bcr.NewWithIntents(c.Token, nil, []string{c.CommandPrefix}, Intents)
	if err != nil {
		return nil, errors.Wrap(err, "creating router")
	}
	r.Logger = bcr.NewZapLogger(log.Named("bcr"))

	bot := &Bot{
		Router: r,
		Config: c,
		Groups: groups,
		Log:    log,
		hub:    hub,
	}
	bot.Subscriptions = subscriptions.New(groups, stateRoles{r}, log.Named("subscriptions"))
	bot.dispatch = r.MessageCreate
	bot.channelName = bot.cachedChannelName
	bot.send = func(ctx *bcr.Context, content string) error {
		return ctx.SendX(content)
	}
	bot.setStatus = bot.shardStatus

	bot.commands = bot.commandList()
	for _, cmd := range bot.commands {
		r.AddCommand(cmd)
	}

	r.AddHandler(bot.messageCreate)
	r.AddHandler(bot.ready)

	return bot, nil
}

// Open connects to the gateway.
func (bot *Bot) Open(ctx context.Context) error {
	bot.Log.Debug("opening gateway connection")

	return bot.Router.ShardManager.Open(ctx)
}

// Close disconnects from the gateway.
func (bot *Bot) Close() error {
	return bot.Router.ShardManager.Close()
}

// Me fetches the bot's own user and stores it on the router.
func (bot *Bot) Me() (*discord.User, error) {
	s, _ := bot.Router.StateFromGuildID(0)
	u, err := s.Me()
	if err != nil {
		return nil, err
	}

	bot.Router.Bot = u
	bot.self.Store(uint64(u.ID))
	return u, nil
}

func (bot *Bot) selfID() discord.UserID {
	return discord.UserID(bot.self.Load())
}

func (bot *Bot) cachedChannelName(guildID discord.GuildID, id discord.ChannelID) string {
	s, _ := bot.Router.StateFromGuildID(guildID)
	ch, err := s.Cabinet.Channel(id)
	if err != nil {
		return id.String()
	}
	return ch.Name
}

func (bot *Bot) shardStatus(shardID int, status string) error {
	s := bot.Router.ShardManager.Shard(shardID).(*state.State)

	return s.Gateway().Send(context.Background(), &gateway.UpdatePresenceCommand{
		Status: discord.OnlineStatus,
		Activities: []discord.Activity{{
			Name: status,
			Type: discord.GameActivity,
		}},
	})
}
