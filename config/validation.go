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
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/mysteriumnetwork/ipnotify/core/ip"
)

// Validate checks the resolved configuration a run depends on.
func Validate(cfg *Config) error {
	return validation.Errors{
		FlagBarkAddress.Name: validation.Validate(
			cfg.GetString(FlagBarkAddress.Name),
			validation.Required,
			is.URL,
		),
		FlagHTTPTimeout.Name: validation.Validate(
			cfg.GetDuration(FlagHTTPTimeout.Name),
			validation.Required,
			validation.Min(time.Millisecond),
		),
		FlagIPSources.Name: validation.Validate(
			cfg.GetStringSlice(FlagIPSources.Name),
			validation.Required,
			validation.By(validateDescriptors),
		),
		FlagBindAddress.Name: validation.Validate(
			cfg.GetString(FlagBindAddress.Name),
			is.IP,
		),
	}.Filter()
}

func validateDescriptors(value interface{}) error {
	raw, _ := value.([]string)
	_, err := ip.ParseDescriptors(raw)
	return err
}
