/*
 * Copyright (C) 2026 The "MysteriumNetwork/ipnotify" Authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package config

import (
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/urfave/cli/v2"
)

// Config stores app configuration: default values + user configuration + CLI flags
type Config struct {
	userConfigLocation string
	defaults           map[string]interface{}
	user               map[string]interface{}
	cli                map[string]interface{}
}

// Current global configuration instance
var Current *Config

func init() {
	Current = NewConfig()
}

// NewConfig creates a new configuration instance
func NewConfig() *Config {
	return &Config{
		userConfigLocation: "",
		defaults:           make(map[string]interface{}),
		user:               make(map[string]interface{}),
		cli:                make(map[string]interface{}),
	}
}

// LoadUserConfig loads and remembers user config location
func (cfg *Config) LoadUserConfig(location string) error {
	log.Debug().Msg("Loading user configuration: " + location)
	cfg.userConfigLocation = location
	_, err := toml.DecodeFile(cfg.userConfigLocation, &cfg.user)
	if err != nil {
		return errors.Wrap(err, "failed to decode configuration file")
	}
	log.Info().Msgf("User configuration loaded from %s: %v", location, cfg.user)
	return nil
}

// SetDefault sets default value for key
func (cfg *Config) SetDefault(key string, value interface{}) {
	cfg.set(cfg.defaults, key, value)
}

// SetUser sets user configuration value for key
func (cfg *Config) SetUser(key string, value interface{}) {
	cfg.set(cfg.user, key, value)
}

// SetCLI sets value passed via CLI flag for key
func (cfg *Config) SetCLI(key string, value interface{}) {
	cfg.set(cfg.cli, key, value)
}

// RemoveCLI removes configured CLI flag value by key
func (cfg *Config) RemoveCLI(key string) {
	cfg.remove(cfg.cli, key)
}

func (cfg *Config) set(configMap map[string]interface{}, key string, value interface{}) {
	segments := strings.Split(strings.ToLower(key), ".")
	lastKey := segments[len(segments)-1]
	deepestMap := deepSearch(configMap, segments[:len(segments)-1])
	deepestMap[lastKey] = value
}

func (cfg *Config) remove(configMap map[string]interface{}, key string) {
	segments := strings.Split(strings.ToLower(key), ".")
	lastKey := segments[len(segments)-1]
	deepestMap := deepSearch(configMap, segments[:len(segments)-1])
	delete(deepestMap, lastKey)
}

// deepSearch returns the nested map at path, creating missing levels.
func deepSearch(m map[string]interface{}, path []string) map[string]interface{} {
	for _, k := range path {
		next, ok := m[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			m[k] = next
		}
		m = next
	}
	return m
}

func (cfg *Config) searchMap(source map[string]interface{}, path []string) interface{} {
	if len(path) == 0 {
		return source
	}
	next, ok := source[path[0]]
	if !ok {
		return nil
	}
	if len(path) == 1 {
		return next
	}
	if nested, ok := next.(map[string]interface{}); ok {
		return cfg.searchMap(nested, path[1:])
	}
	return nil
}

// Get gets stored config value as-is
func (cfg *Config) Get(key string) interface{} {
	segments := strings.Split(strings.ToLower(key), ".")
	cliValue := cfg.searchMap(cfg.cli, segments)
	if cliValue != nil {
		log.Debug().Msgf("Returning CLI value %v:%v", key, cliValue)
		return cliValue
	}
	userValue := cfg.searchMap(cfg.user, segments)
	if userValue != nil {
		log.Debug().Msgf("Returning user config value %v:%v", key, userValue)
		return userValue
	}
	defaultValue := cfg.searchMap(cfg.defaults, segments)
	log.Debug().Msgf("Returning default value %v:%v", key, defaultValue)
	return defaultValue
}

// GetString gets config value as string
func (cfg *Config) GetString(key string) string {
	return cast.ToString(cfg.Get(key))
}

// GetBool gets config value as bool
func (cfg *Config) GetBool(key string) bool {
	return cast.ToBool(cfg.Get(key))
}

// GetDuration gets config value as duration, strings such as "5s" are accepted
func (cfg *Config) GetDuration(key string) time.Duration {
	return cast.ToDuration(cfg.Get(key))
}

// GetStringSlice gets config value as []string
func (cfg *Config) GetStringSlice(key string) []string {
	return cast.ToStringSlice(cfg.Get(key))
}

// ParseStringFlag parses a cli.StringFlag from command's context and
// sets default and CLI values to the application configuration.
func (cfg *Config) ParseStringFlag(ctx *cli.Context, flag cli.StringFlag) {
	cfg.SetDefault(flag.Name, flag.Value)
	if ctx.IsSet(flag.Name) {
		cfg.SetCLI(flag.Name, ctx.String(flag.Name))
	} else {
		cfg.RemoveCLI(flag.Name)
	}
}

// ParseBoolFlag parses a cli.BoolFlag from command's context and
// sets default and CLI values to the application configuration.
func (cfg *Config) ParseBoolFlag(ctx *cli.Context, flag cli.BoolFlag) {
	cfg.SetDefault(flag.Name, flag.Value)
	if ctx.IsSet(flag.Name) {
		cfg.SetCLI(flag.Name, ctx.Bool(flag.Name))
	} else {
		cfg.RemoveCLI(flag.Name)
	}
}

// ParseDurationFlag parses a cli.DurationFlag from command's context and
// sets default and CLI values to the application configuration.
func (cfg *Config) ParseDurationFlag(ctx *cli.Context, flag cli.DurationFlag) {
	cfg.SetDefault(flag.Name, flag.Value)
	if ctx.IsSet(flag.Name) {
		cfg.SetCLI(flag.Name, ctx.Duration(flag.Name))
	} else {
		cfg.RemoveCLI(flag.Name)
	}
}

// ParseStringSliceFlag parses a cli.StringSliceFlag from command's context and
// sets default and CLI values to the application configuration.
func (cfg *Config) ParseStringSliceFlag(ctx *cli.Context, flag cli.StringSliceFlag) {
	if flag.Value != nil {
		cfg.SetDefault(flag.Name, flag.Value.Value())
	}
	if ctx.IsSet(flag.Name) {
		cfg.SetCLI(flag.Name, ctx.StringSlice(flag.Name))
	} else {
		cfg.RemoveCLI(flag.Name)
	}
}
