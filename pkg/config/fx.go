package config

import (
	"os"

	"github.com/pseudomuto/javafmt/pkg/consts"
	"github.com/pseudomuto/javafmt/pkg/format"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads javafmt.yaml, or javafmt.toml, from the working directory. Returns nil when
	// neither exists so the commands fall back to the defaults.
	func() (*Config, error) {
		for _, name := range []string{consts.DefaultConfigFile, consts.DefaultTOMLConfigFile} {
			if _, err := os.Stat(name); os.IsNotExist(err) {
				continue
			}

			return LoadConfigFile(name)
		}

		return nil, nil
	},
	func(c *Config) *format.Settings {
		return c.Settings()
	},
))
