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

	"github.com/mysteriumnetwork/ipnotify/metadata"
)

var (
	// FlagHTTPTimeout limits every outbound request.
	FlagHTTPTimeout = cli.DurationFlag{
		Name:  metadata.FlagNames.HTTPTimeout,
		Usage: "Timeout of a single lookup or notification request",
		Value: metadata.DefaultSettings.HTTPTimeout,
	}
	// FlagBindAddress IP address to bind outbound requests to.
	FlagBindAddress = cli.StringFlag{
		Name:  metadata.FlagNames.BindAddress,
		Usage: "Local IP address for outbound HTTP, DNS and STUN requests",
		Value: metadata.DefaultSettings.BindAddress,
	}
)

// RegisterFlagsNetwork function register network flags to flag list
func RegisterFlagsNetwork(flags *[]cli.Flag) {
	*flags = append(*flags, &FlagHTTPTimeout, &FlagBindAddress)
}

// ParseFlagsNetwork function fills in network options from CLI context
func ParseFlagsNetwork(ctx *cli.Context) {
	Current.ParseDurationFlag(ctx, FlagHTTPTimeout)
	Current.ParseStringFlag(ctx, FlagBindAddress)
}
