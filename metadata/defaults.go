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

package metadata

import "time"

// Defaults describes the endpoints and limits a single run works with
// when nothing is overridden by flags or the config file.
type Defaults struct {
	BarkAddress string
	IPSources   []string
	HTTPTimeout time.Duration
	BindAddress string
}

// DefaultSettings reproduces the fixed behaviour: three lookup services
// tried in order, 10 second timeout per request.
var DefaultSettings = Defaults{
	BarkAddress: "https://api.day.app/xxxxxxxxxx/",
	IPSources: []string{
		"https://icanhazip.com/",
		"https://api.ipify.org?format=json#ip",
		"https://httpbin.org/ip#origin",
	},
	HTTPTimeout: 10 * time.Second,
	BindAddress: "0.0.0.0",
}

// FlagNames holds the names of the flags that map onto Defaults.
var FlagNames = struct {
	BarkAddress string
	IPSources   string
	HTTPTimeout string
	BindAddress string
}{
	BarkAddress: "bark.url",
	IPSources:   "ip.sources",
	HTTPTimeout: "http.timeout",
	BindAddress: "bind.address",
}
