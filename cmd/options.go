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

package cmd

import (
	"time"

	"github.com/mysteriumnetwork/ipnotify/config"
)

// Options describes a single run
type Options struct {
	BarkAddress string
	IPSources   []string
	HTTPTimeout time.Duration
	BindAddress string
}

// GetOptions retrieves run options from the app configuration.
func GetOptions() Options {
	return Options{
		BarkAddress: config.Current.GetString(config.FlagBarkAddress.Name),
		IPSources:   config.Current.GetStringSlice(config.FlagIPSources.Name),
		HTTPTimeout: config.Current.GetDuration(config.FlagHTTPTimeout.Name),
		BindAddress: config.Current.GetString(config.FlagBindAddress.Name),
	}
}
