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
	// FlagIPSources ordered list of public IP lookup services.
	FlagIPSources = cli.StringSliceFlag{
		Name: metadata.FlagNames.IPSources,
		Usage: "Public IP lookup services, tried in the given order. " +
			"Append #key to read the address from a JSON field, dns:// and stun:// services are accepted too",
		Value: cli.NewStringSlice(metadata.DefaultSettings.IPSources...),
	}
	// FlagBarkAddress Bark device URL the address gets appended to.
	FlagBarkAddress = cli.StringFlag{
		Name:  metadata.FlagNames.BarkAddress,
		Usage: "Bark URL including the device key, the resolved address is appended as is",
		Value: metadata.DefaultSettings.BarkAddress,
	}
)

// RegisterFlagsLookup function register lookup and notification flags to flag list
func RegisterFlagsLookup(flags *[]cli.Flag) {
	*flags = append(*flags, &FlagIPSources, &FlagBarkAddress)
}

// ParseFlagsLookup function fills in lookup and notification options from CLI context
func ParseFlagsLookup(ctx *cli.Context) {
	Current.ParseStringSliceFlag(ctx, FlagIPSources)
	Current.ParseStringFlag(ctx, FlagBarkAddress)
}
