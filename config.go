// config.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file loads the EngineConfig that cmd/skraflserver builds its games
// around: which word list to load, the log level and format, the random
// seed, and the HTTP listen address. It uses viper for layered config
// (defaults/file/env) and godotenv so a developer's local
// ".env" is picked up the same way the rest of the retrieval pack's
// server commands do it.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package scrabblecore

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EngineConfig holds every knob a Game host (skraflsim, skraflserver, or
// a test harness) needs at startup.
type EngineConfig struct {
	WordListPath string `mapstructure:"wordlist_path"`
	LogLevel     string `mapstructure:"log_level"`
	LogPretty    bool   `mapstructure:"log_pretty"`
	Seed         int64  `mapstructure:"seed"`
	ListenAddr   string `mapstructure:"listen_addr"`
}

// defaultConfig returns an EngineConfig with the values used when neither
// a config file nor an environment variable overrides them.
func defaultConfig() EngineConfig {
	return EngineConfig{
		WordListPath: "testdata/wordlist_small.txt",
		LogLevel:     "info",
		LogPretty:    true,
		Seed:         0,
		ListenAddr:   ":8080",
	}
}

// LoadConfig reads an EngineConfig from (in ascending priority) built-in
// defaults, a config file named configPath if non-empty, and environment
// variables prefixed SCRABBLECORE_. A ".env" file, if present, only
// supplies environment variables that are not already set.
func LoadConfig(configPath string) (EngineConfig, error) {
	// A missing .env file is not an error: it is normal outside of local
	// development.
	_ = godotenv.Load()

	v := viper.New()
	defaults := defaultConfig()
	v.SetDefault("wordlist_path", defaults.WordListPath)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_pretty", defaults.LogPretty)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("listen_addr", defaults.ListenAddr)

	v.SetEnvPrefix("SCRABBLECORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return EngineConfig{}, err
		}
	}

	var cfg EngineConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}
