// Package config reads store settings from an optional JSON configuration
// file and LITESTORE_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/litestore-project/litestore/cmd/litestore/util"
)

type Config struct {
	// Database is the default database file path.
	Database string
	// TextNative stores strings in TEXT columns instead of through the
	// codec.
	TextNative bool
	// BusyTimeoutMS is the SQLite busy timeout applied to every
	// connection, in milliseconds.
	BusyTimeoutMS int
	// Color is the terminal color mode: always, auto, or never.
	Color string
}

// Read loads the configuration file, if present, with environment variables
// taking precedence.  A missing file is not an error; defaults apply.
func Read(filename string) (*Config, error) {
	v := viper.New()
	v.SetDefault("database", "")
	v.SetDefault("text_native", false)
	v.SetDefault("busy_timeout_ms", 10000)
	v.SetDefault("color", "auto")
	v.SetEnvPrefix("litestore")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if filename != "" {
		exists, err := util.FileExists(filename)
		if err != nil {
			return nil, fmt.Errorf("reading configuration file: %s: %v", filename, err)
		}
		if exists {
			v.SetConfigFile(filename)
			v.SetConfigType("json")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading configuration file: %s: %v", filename, err)
			}
		}
	}
	return &Config{
		Database:      v.GetString("database"),
		TextNative:    v.GetBool("text_native"),
		BusyTimeoutMS: v.GetInt("busy_timeout_ms"),
		Color:         v.GetString("color"),
	}, nil
}
