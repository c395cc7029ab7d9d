package bot

import (
	"strings"

	"github.com/diamondburned/arikawa/v3/gateway"
)

// messageCreate logs attempts to use the bot, then passes the message on to the command router.
func (bot *Bot) messageCreate(m *gateway.MessageCreateEvent) {
	defer func() {
		if r := recover(); r != nil {
			bot.Log.Errorf("Exception in messageCreate: %v", r)
		}
	}()

	if m.Author.ID == bot.selfID() {
		return
	}

	isCommand := strings.HasPrefix(m.Content, bot.Config.CommandPrefix)
	mentionsBot := strings.Contains(strings.ToLower(m.Content), "bot")

	if isCommand || mentionsBot {
		channel := bot.channelName(m.GuildID, m.ChannelID)

		if isCommand {
			bot.Log.Infof("Command %q from %q in %q", m.Content, m.Author.Username, channel)
		}
		if mentionsBot {
			bot.Log.Infof("Bot in message: %q by %q in %q", m.Content, m.Author.Username, channel)
		}
	}

	bot.dispatch(m)
}
