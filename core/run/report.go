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
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mysteriumnetwork/ipnotify/core/ip"
	"github.com/mysteriumnetwork/ipnotify/core/notify"
	"github.com/mysteriumnetwork/ipnotify/eventbus"
	"github.com/mysteriumnetwork/ipnotify/requests"
)

// Report collects lookup and notification events of a pass.
type Report struct {
	mu        sync.Mutex
	attempts  int
	failures  map[requests.ErrorKind]int
	address   string
	notified  bool
	delivered bool
}

// NewReport creates empty Report.
func NewReport() *Report {
	return &Report{failures: make(map[requests.ErrorKind]int)}
}

// Subscribe starts collecting events from the bus.
func (r *Report) Subscribe(bus eventbus.Subscriber) error {
	if err := bus.Subscribe(ip.AppTopicLookup, r.consumeLookupEvent); err != nil {
		return err
	}
	return bus.Subscribe(notify.AppTopicNotification, r.consumeNotificationEvent)
}

func (r *Report) consumeLookupEvent(e ip.LookupEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.attempts++
	if e.Failed() {
		r.failures[e.Kind]++
		return
	}
	r.address = e.Address
}

func (r *Report) consumeNotificationEvent(e notify.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notified = true
	r.delivered = e.Delivered()
}

// Delivered reports whether a notification was accepted.
func (r *Report) Delivered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.delivered
}

func (r *Report) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]string, 0, len(r.failures))
	for kind, count := range r.failures {
		kinds = append(kinds, fmt.Sprintf("%s:%d", kind, count))
	}
	sort.Strings(kinds)

	address := r.address
	if address == "" {
		address = "none"
	}
	delivered := "skipped"
	if r.notified {
		delivered = fmt.Sprint(r.delivered)
	}

	return fmt.Sprintf("attempts=%d failures=[%s] address=%s delivered=%s",
		r.attempts, strings.Join(kinds, " "), address, delivered)
}

// Log writes the summary line.
func (r *Report) Log() {
	log.Info().Msgf("Run finished: %s", r)
}
