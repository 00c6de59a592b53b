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

package ip

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mysteriumnetwork/ipnotify/eventbus"
	"github.com/mysteriumnetwork/ipnotify/requests"
	"github.com/mysteriumnetwork/ipnotify/utils"
)

// AppTopicLookup is published after every source attempt.
const AppTopicLookup = "IP lookup attempt"

// LookupEvent describes the outcome of one source attempt.
type LookupEvent struct {
	Source   string
	Address  string
	Kind     requests.ErrorKind
	Duration time.Duration
}

// Failed reports whether the attempt yielded no address.
func (e LookupEvent) Failed() bool {
	return e.Kind != ""
}

// Resolver allows resolving current public IP
type Resolver interface {
	GetPublicIP(ctx context.Context) (string, error)
}

// FallbackResolver tries sources in declared order, the first address wins.
type FallbackResolver struct {
	sources   []Source
	publisher eventbus.Publisher
}

// NewFallbackResolver creates resolver over the ordered sources. Publisher is optional.
func NewFallbackResolver(publisher eventbus.Publisher, sources ...Source) *FallbackResolver {
	return &FallbackResolver{
		sources:   sources,
		publisher: publisher,
	}
}

// GetPublicIP returns the first address any source yields.
// When every source fails the error is a *NoAddressError matching ErrNoAddress.
func (r *FallbackResolver) GetPublicIP(ctx context.Context) (string, error) {
	var failures utils.ErrorCollection

	for _, source := range r.sources {
		if ctx.Err() != nil {
			lookupErr := asLookupError(source, ctx.Err())
			r.publish(LookupEvent{Source: source.String(), Kind: lookupErr.Kind})
			failures.Add(lookupErr)
			break
		}

		log.Info().Msgf("Resolving public IP via %s", source)
		started := time.Now()
		address, err := source.Attempt(ctx)
		if err == nil && address == "" {
			err = newLookupError(source, KindEmptyValue, ErrNoAddress)
		}

		if err != nil {
			lookupErr := asLookupError(source, err)
			r.publish(LookupEvent{Source: source.String(), Kind: lookupErr.Kind, Duration: time.Since(started)})
			logFailure(lookupErr)
			failures.Add(lookupErr)
			continue
		}

		r.publish(LookupEvent{Source: source.String(), Address: address, Duration: time.Since(started)})
		log.Info().Msgf("Public IP %s resolved via %s", address, source)
		return address, nil
	}

	log.Error().Msg("Failed to resolve public IP from any configured source")
	return "", &NoAddressError{Attempts: failures}
}

func (r *FallbackResolver) publish(event LookupEvent) {
	if r.publisher == nil {
		return
	}
	r.publisher.Publish(AppTopicLookup, event)
}

func logFailure(err *LookupError) {
	switch err.Kind {
	case KindEmptyValue:
		log.Warn().Err(err.Err).Msgf("No IP address in response from %s", err.Source)
	case requests.KindTimeout:
		log.Error().Err(err.Err).Msgf("Request to %s timed out", err.Source)
	case requests.KindConnection:
		log.Error().Err(err.Err).Msgf("Connection error while requesting %s", err.Source)
	case KindMalformedBody:
		log.Error().Err(err.Err).Msgf("Failed to parse response from %s", err.Source)
	default:
		log.Error().Err(err.Err).Msgf("Request to %s failed", err.Source)
	}
}
