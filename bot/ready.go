package bot

import (
	"github.com/diamondburned/arikawa/v3/gateway"
)

// ready stores the bot user and sets the status on the shard that became ready.
func (bot *Bot) ready(ev *gateway.ReadyEvent) {
	bot.self.Store(uint64(ev.User.ID))

	shardID := 0
	if ev.Shard != nil {
		shardID = ev.Shard.ShardID()
	}
	bot.Log.Infof("Logged in as %v (%v) on shard %d", ev.User.Tag(), ev.User.ID, shardID)

	err := bot.setStatus(shardID, bot.Config.Status)
	if err != nil {
		bot.Log.Errorf("Error setting status on shard %d: %v", shardID, err)
	}
}
