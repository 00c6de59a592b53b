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
	"github.com/urfave/cli/v2"
)

var (
	// FlagConfig optional TOML file with the same keys as the flags.
	FlagConfig = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file, CLI flags take precedence over it",
	}
	// FlagLogDir is a directory for storing log files.
	FlagLogDir = cli.StringFlag{
		Name:  "log-dir",
		Usage: "Log directory for storing log files, logs go to stderr only when empty",
	}
)

// RegisterFlagsDirectory function register file location flags to flag list
func RegisterFlagsDirectory(flags *[]cli.Flag) {
	*flags = append(*flags, &FlagConfig, &FlagLogDir)
}

// ParseFlagsDirectory function fills in file location options from CLI context
// and loads the user configuration file when one is given.
func ParseFlagsDirectory(ctx *cli.Context) error {
	Current.ParseStringFlag(ctx, FlagLogDir)
	Current.ParseStringFlag(ctx, FlagConfig)

	if location := Current.GetString(FlagConfig.Name); location != "" {
		return Current.LoadUserConfig(location)
	}
	return nil
}
