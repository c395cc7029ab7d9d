package check

import (
	"fmt"

	"github.com/starshine-sys/crusader/common"
	"github.com/starshine-sys/crusader/subscriptions"
	"github.com/urfave/cli/v2"
)

var Command = &cli.Command{
	Name:   "check",
	Usage:  "Validate the config files and show all groups",
	Flags:  common.Flags,
	Action: run,
}

func run(c *cli.Context) error {
	conf, groups, err := common.ReadConfig(c)
	if err != nil {
		return err
	}

	t := subscriptions.NewTable("Name", "Description", "Type", "Role")
	for _, g := range groups.Roles {
		t.AddRow(g.Name, g.Description, g.Type, g.Role)
	}
	t.SortBy(0)

	w := c.App.Writer
	fmt.Fprintf(w, "Prefix: %q\n", conf.CommandPrefix)
	fmt.Fprintf(w, "Logging to %v (all: %v, console: %v, file: %v)\n",
		conf.Logging.File, conf.Logging.Level.All, conf.Logging.Level.Console, conf.Logging.Level.File)

	fmt.Fprintf(w, "%d blacklisted channels:", len(groups.BlacklistedChannels))
	for _, ch := range groups.BlacklistedChannels {
		fmt.Fprintf(w, " %v", ch.ID)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, t.String())
	return nil
}
