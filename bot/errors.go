package bot

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

// reportError logs an error from the given call site, and sends it to Sentry if that's enabled.
// It returns the error code: the Sentry event ID, or a random UUID if the error wasn't sent.
func (bot *Bot) reportError(site string, userID discord.UserID, err error) string {
	var code string

	if bot.hub != nil {
		hub := bot.hub.Clone()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			if userID.IsValid() {
				scope.SetUser(sentry.User{ID: userID.String()})
			}
			scope.SetTag("command", site)
		})

		if id := hub.CaptureException(err); id != nil {
			code = string(*id)
		}
	}

	if code == "" {
		code = uuid.New().String()
	}

	bot.Log.Errorf("Exception in %v: %v (code %v)", site, err, code)
	return code
}
