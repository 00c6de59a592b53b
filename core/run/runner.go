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

package run

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mysteriumnetwork/ipnotify/core/ip"
	"github.com/mysteriumnetwork/ipnotify/core/notify"
)

// Runner performs a single resolve and notify pass.
type Runner struct {
	resolver ip.Resolver
	notifier notify.Notifier
}

// NewRunner creates Runner.
func NewRunner(resolver ip.Resolver, notifier notify.Notifier) *Runner {
	return &Runner{
		resolver: resolver,
		notifier: notifier,
	}
}

// Run resolves the public address and hands it to the notifier.
// Failures of either step are logged and never stop the pass.
func (r *Runner) Run(ctx context.Context) {
	address, err := r.resolver.GetPublicIP(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("Public IP lookup failed")
	}

	err = r.notifier.Notify(ctx, address)
	switch {
	case err == nil:
	case errors.Is(err, notify.ErrNoAddress):
		log.Info().Msg("Nothing to notify about")
	default:
		log.Error().Err(err).Msg("Failed to send notification")
	}
}
