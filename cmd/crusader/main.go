package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/starshine-sys/crusader/cmd/crusader/bot"
	"github.com/starshine-sys/crusader/cmd/crusader/check"
	"github.com/starshine-sys/crusader/common"
	"github.com/starshine-sys/crusader/logsetup"
	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:    "crusader",
	Usage:   "Discord bot for subscribing to groups",
	Version: common.Version,

	Commands: []*cli.Command{
		bot.Command,
		check.Command,
	},
}

func main() {
	err := app.Run(os.Args)
	if err != nil {
		logsetup.Bootstrap().Sugar().Fatal(err)
	}
}
