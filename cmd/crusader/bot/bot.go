package bot

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"emperror.dev/errors"
	"github.com/getsentry/sentry-go"
	"github.com/starshine-sys/crusader/bot"
	"github.com/starshine-sys/crusader/common"
	"github.com/starshine-sys/crusader/logsetup"
	"github.com/urfave/cli/v2"
)

var Command = &cli.Command{
	Name:   "bot",
	Usage:  "Run the bot",
	Flags:  common.Flags,
	Action: run,
}

func run(c *cli.Context) error {
	conf, groups, err := common.ReadConfig(c)
	if err != nil {
		return err
	}

	zl, closeLog, err := logsetup.Setup(conf.Logging)
	if err != nil {
		return errors.Wrap(err, "setting up logging")
	}
	defer closeLog()

	// set up logger for this section
	log := zl.Sugar().Named("init")

	// sentry, if enabled
	var hub *sentry.Hub
	if conf.SentryDSN != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:     conf.SentryDSN,
			Release: common.Version,
		})
		if err != nil {
			return errors.Wrap(err, "initing Sentry")
		}
		hub = sentry.CurrentHub()
		defer sentry.Flush(2 * time.Second)
	}

	log.Info("Creating bot object ...")
	b, err := bot.New(conf, groups, zl.Sugar(), hub)
	if err != nil {
		return errors.Wrap(err, "creating bot")
	}
	log.Infof("Setup complete, %d groups and %d blacklisted channels", len(groups.Roles), len(groups.BlacklistedChannels))

	// get current user
	u, err := b.Me()
	if err != nil {
		return errors.Wrap(err, "fetching bot user")
	}

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info("Starting run loop ...")
	err = b.Open(ctx)
	if err != nil {
		return errors.Wrap(err, "opening gateway connection")
	}

	// always runs, even if something above panics from here on
	defer func() {
		log.Warn("Logging out ...")
		if err := b.Close(); err != nil {
			log.Errorf("Error closing gateway connection: %v", err)
		} else {
			log.Warn("Logged out")
		}

		log.Warn("Closing ...")
		log.Info("Done")
	}()

	log.Infof("Connected to Discord as %v. Press Ctrl-C or send an interrupt signal to stop.", u.Tag())

	<-ctx.Done()

	log.Infof("Interrupt signal received. Shutting down...")
	return nil
}
