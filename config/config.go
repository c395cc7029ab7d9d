// Package config loads the bot's two static documents: the bot settings and
// the channel/role mapping.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"emperror.dev/errors"
	"github.com/BurntSushi/toml"
)

// DefaultStatus is the game shown in the bot's presence if STATUS is not set.
const DefaultStatus = "Crusading"

type Config struct {
	Logging       LoggingConfig `toml:"LOGGING" json:"LOGGING"`
	CommandPrefix string        `toml:"COMMAND_PREFIX" json:"COMMAND_PREFIX"`
	Description   string        `toml:"DESCRIPTION" json:"DESCRIPTION"`
	Token         string        `toml:"TOKEN" json:"TOKEN"`

	// Status is the name of the game shown in the bot's presence.
	Status string `toml:"STATUS" json:"STATUS"`
	// SentryDSN enables error reporting to Sentry if set.
	SentryDSN string `toml:"SENTRY_DSN" json:"SENTRY_DSN"`
}

type LoggingConfig struct {
	Level LevelConfig `toml:"LEVEL" json:"LEVEL"`
	File  string      `toml:"FILE" json:"FILE"`
}

// LevelConfig holds the minimum levels for the logger as a whole and for each output.
// A message is written to an output only if it passes both All and that output's level.
type LevelConfig struct {
	All     Level `toml:"ALL" json:"ALL"`
	Console Level `toml:"CONSOLE" json:"CONSOLE"`
	File    Level `toml:"FILE" json:"FILE"`
}

// ReadConfig reads and validates the bot settings at path.
// The TOKEN environment variable, if set, takes precedence over the file's token.
func ReadConfig(path string) (c Config, err error) {
	err = decodeFile(path, &c)
	if err != nil {
		return c, err
	}

	if tok := os.Getenv("TOKEN"); tok != "" {
		c.Token = tok
	}
	if c.Status == "" {
		c.Status = DefaultStatus
	}

	err = c.Validate()
	if err != nil {
		return c, errors.Wrapf(err, "invalid config %v", path)
	}
	return c, nil
}

// Validate returns an error naming every missing key.
func (c Config) Validate() (err error) {
	if c.Token == "" {
		err = errors.Append(err, errors.New("TOKEN is not set"))
	}
	if strings.TrimSpace(c.CommandPrefix) == "" {
		err = errors.Append(err, errors.New("COMMAND_PREFIX is not set"))
	}
	if c.Logging.File == "" {
		err = errors.Append(err, errors.New("LOGGING.FILE is not set"))
	}

	levels := []struct {
		key string
		lvl Level
	}{
		{"LOGGING.LEVEL.ALL", c.Logging.Level.All},
		{"LOGGING.LEVEL.CONSOLE", c.Logging.Level.Console},
		{"LOGGING.LEVEL.FILE", c.Logging.Level.File},
	}
	for _, l := range levels {
		if !l.lvl.IsSet() {
			err = errors.Append(err, errors.Errorf("%v is not set", l.key))
		}
	}
	return err
}

// decodeFile decodes a JSON or TOML document into v, depending on the file extension.
// Anything that isn't .json is treated as TOML.
func decodeFile(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(b, v)
	} else {
		err = toml.Unmarshal(b, v)
	}
	if err != nil {
		return errors.Wrapf(err, "unmarshal %v", path)
	}
	return nil
}
