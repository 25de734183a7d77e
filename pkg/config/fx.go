package config

import (
	"os"

	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads the configuration file if it exists. Returns nil otherwise so
	// commands can run purely from flags and environment variables.
	func() (*Config, error) {
		path := Path()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(path)
	},
))
