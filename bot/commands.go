package bot

import (
	"strings"

	"emperror.dev/errors"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/crusader/config"
	"github.com/starshine-sys/crusader/subscriptions"
)

const guildOnlyReply = "This command can only be used in a server."

func (bot *Bot) commandList() []*bcr.Command {
	return []*bcr.Command{
		{
			Name:        "subscribe",
			Summary:     "Subscribes to certain channels",
			Description: "Subscribe to groups on the server. Use `" + bot.Config.CommandPrefix + "subscribe` to see what's available and use `" + bot.Config.CommandPrefix + "subscribe [GROUPNAME]` to subscribe! See unsubscribing for unsubscribing.",
			Usage:       "[group]",
			Command:     bot.subscribe,
		},
		{
			Name:        "unsubscribe",
			Summary:     "Unsubscribes from channels",
			Description: "Unsubscribe from groups on the server. Use `" + bot.Config.CommandPrefix + "unsubscribe` to see what you're subscribed to and use `" + bot.Config.CommandPrefix + "unsubscribe [GROUPNAME]` to unsubscribe! See subscribing for subscribing.",
			Usage:       "[group]",
			Command:     bot.unsubscribe,
		},
		{
			Name:    "help",
			Summary: "Shows this message",
			Usage:   "[command]",
			Command: bot.help,
		},
	}
}

func (bot *Bot) subscribe(ctx *bcr.Context) error {
	return bot.runSubscription(ctx, "!subscribe", bot.Subscriptions.Subscribe)
}

func (bot *Bot) unsubscribe(ctx *bcr.Context) error {
	return bot.runSubscription(ctx, "!unsubscribe", bot.Subscriptions.Unsubscribe)
}

// runSubscription is the error boundary for a subscription command.
// Errors and panics are reported, never returned to the router, and the user gets no reply.
func (bot *Bot) runSubscription(ctx *bcr.Context, site string, fn func(subscriptions.Request) (string, error)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			bot.reportError(site, ctx.Author.ID, errors.Errorf("panic: %v", r))
			err = nil
		}
	}()

	if !ctx.Message.GuildID.IsValid() || ctx.Member == nil {
		return bot.reply(ctx, site, guildOnlyReply)
	}

	reply, err := fn(subscriptions.Request{
		GuildID:   ctx.Message.GuildID,
		ChannelID: ctx.Message.ChannelID,
		Member: subscriptions.Member{
			ID:      ctx.Author.ID,
			RoleIDs: ctx.Member.RoleIDs,
		},
		Args: ctx.RawArgs,
	})
	if err != nil {
		bot.reportError(site, ctx.Author.ID, err)
		return nil
	}

	if reply == "" {
		return nil
	}
	return bot.reply(ctx, site, reply)
}

func (bot *Bot) reply(ctx *bcr.Context, site, content string) error {
	err := bot.send(ctx, content)
	if err != nil {
		bot.reportError(site, ctx.Author.ID, errors.Wrap(err, "sending reply"))
	}
	return nil
}

func (bot *Bot) help(ctx *bcr.Context) error {
	return bot.reply(ctx, "!help", bot.helpText(ctx.RawArgs))
}

// helpText lists all commands, or shows the full description of one.
func (bot *Bot) helpText(args string) string {
	prefix := bot.Config.CommandPrefix

	if name := config.Normalize(args); name != "" {
		for _, cmd := range bot.commands {
			if cmd.Name != name {
				continue
			}

			s := "```" + prefix + cmd.Name + " " + cmd.Usage + "```\n" + cmd.Summary
			if cmd.Description != "" {
				s += "\n\n" + cmd.Description
			}
			return s
		}
		return "No command called `" + name + "` found."
	}

	t := subscriptions.NewTable("Command", "Description")
	for _, cmd := range bot.commands {
		t.AddRow(strings.TrimSpace(prefix+cmd.Name+" "+cmd.Usage), cmd.Summary)
	}

	var s string
	if bot.Config.Description != "" {
		s = bot.Config.Description + "\n"
	}
	return s + "```" + t.String() + "```"
}
