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

package notify

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mysteriumnetwork/ipnotify/eventbus"
	"github.com/mysteriumnetwork/ipnotify/requests"
)

// AppTopicNotification is published after every notification attempt.
const AppTopicNotification = "Notification attempt"

// Event describes the outcome of one notification attempt.
type Event struct {
	Target string
	Err    error
}

// Delivered reports whether the push service accepted the notification.
func (e Event) Delivered() bool {
	return e.Err == nil
}

// ErrNoAddress is returned when there is nothing to notify about.
var ErrNoAddress = errors.New("no address to notify about")

// Error describes a failed notification request.
type Error struct {
	Target string
	Kind   requests.ErrorKind
	cause  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("notification to %s failed (%s): %v", e.Target, e.Kind, e.cause)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Cause returns the underlying error.
func (e *Error) Cause() error {
	return e.cause
}

// Notifier delivers the resolved address somewhere.
type Notifier interface {
	Notify(ctx context.Context, address string) error
}

// Bark pushes the address to a Bark device endpoint.
type Bark struct {
	baseURL    string
	httpClient *requests.HTTPClient
	publisher  eventbus.Publisher
}

// NewBark creates Bark notifier. The base URL already carries the device key,
// e.g. https://api.day.app/<key>/. Publisher is optional.
func NewBark(baseURL string, httpClient *requests.HTTPClient, publisher eventbus.Publisher) *Bark {
	return &Bark{
		baseURL:    baseURL,
		httpClient: httpClient,
		publisher:  publisher,
	}
}

// Notify issues a single GET to base URL followed by the address, as is.
func (b *Bark) Notify(ctx context.Context, address string) error {
	if address == "" {
		log.Warn().Msg("Public IP not resolved, skipping notification")
		return ErrNoAddress
	}

	target := b.baseURL + address
	err := b.send(ctx, target)
	b.publish(Event{Target: target, Err: err})
	if err != nil {
		return err
	}

	log.Info().Msgf("Notification sent to %s", target)
	return nil
}

func (b *Bark) send(ctx context.Context, target string) error {
	req, err := requests.NewGetRequestWithContext(ctx, target)
	if err != nil {
		return &Error{Target: target, Kind: requests.KindRequest, cause: err}
	}

	body, err := b.httpClient.DoRequestAndReadBody(req)
	if err != nil {
		return &Error{Target: target, Kind: requests.Classify(err), cause: err}
	}

	log.Debug().Msgf("Notification response: %s", body)
	return nil
}

func (b *Bark) publish(event Event) {
	if b.publisher == nil {
		return
	}
	b.publisher.Publish(AppTopicNotification, event)
}
