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
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mysteriumnetwork/ipnotify/core/ip"
	"github.com/mysteriumnetwork/ipnotify/core/notify"
	"github.com/mysteriumnetwork/ipnotify/core/run"
	"github.com/mysteriumnetwork/ipnotify/eventbus"
	"github.com/mysteriumnetwork/ipnotify/requests"
)

// Dependencies is DI container for top level components
type Dependencies struct {
	EventBus   eventbus.EventBus
	HTTPClient *requests.HTTPClient

	IPResolver ip.Resolver
	Notifier   notify.Notifier

	Report *run.Report
	Runner *run.Runner
}

// Bootstrap initiates all container dependencies
func (di *Dependencies) Bootstrap(options Options) error {
	di.EventBus = eventbus.New()
	di.HTTPClient = requests.NewHTTPClient(options.BindAddress, options.HTTPTimeout)

	if err := di.bootstrapResolver(options); err != nil {
		return err
	}
	di.Notifier = notify.NewBark(options.BarkAddress, di.HTTPClient, di.EventBus)

	di.Report = run.NewReport()
	if err := di.Report.Subscribe(di.EventBus); err != nil {
		return errors.Wrap(err, "could not subscribe run report")
	}
	di.Runner = run.NewRunner(di.IPResolver, di.Notifier)

	return nil
}

func (di *Dependencies) bootstrapResolver(options Options) error {
	descriptors, err := ip.ParseDescriptors(options.IPSources)
	if err != nil {
		return errors.Wrap(err, "invalid IP sources")
	}
	sources, err := ip.NewSources(descriptors, di.HTTPClient, options.HTTPTimeout, options.BindAddress)
	if err != nil {
		return errors.Wrap(err, "could not create IP sources")
	}

	log.Debug().Msgf("Using %d IP sources: %v", len(sources), descriptors)
	di.IPResolver = ip.NewFallbackResolver(di.EventBus, sources...)
	return nil
}
