package common

import (
	"emperror.dev/errors"
	"github.com/starshine-sys/crusader/config"
	"github.com/urfave/cli/v2"
)

// Flags are the flags shared by every command that reads the config documents.
var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   "config.toml",
		Usage:   "bot settings (.toml or .json)",
		EnvVars: []string{"CONFIG"},
	},
	&cli.StringFlag{
		Name:    "channels",
		Value:   "channels.toml",
		Usage:   "blacklisted channels and groups (.toml or .json)",
		EnvVars: []string{"CHANNELS"},
	},
}

// ReadConfig reads both config documents named by the flags.
func ReadConfig(c *cli.Context) (config.Config, *config.Groups, error) {
	conf, err := config.ReadConfig(c.String("config"))
	if err != nil {
		return conf, nil, errors.Wrap(err, "reading config")
	}

	groups, err := config.ReadGroups(c.String("channels"))
	if err != nil {
		return conf, nil, errors.Wrap(err, "reading channels")
	}
	return conf, groups, nil
}
