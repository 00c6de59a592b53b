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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mysteriumnetwork/ipnotify/eventbus"
	"github.com/mysteriumnetwork/ipnotify/logconfig"
	"github.com/mysteriumnetwork/ipnotify/requests"
)

type mockSource struct {
	name    string
	address string
	err     error
	calls   int
}

func (m *mockSource) Attempt(_ context.Context) (string, error) {
	m.calls++
	return m.address, m.err
}

func (m *mockSource) String() string {
	return m.name
}

type countingServer struct {
	*httptest.Server
	calls int
}

func newCountingServer(status int, body string) *countingServer {
	s := &countingServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls++
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	return s
}

func newTestResolver(t *testing.T, publisher eventbus.Publisher, raw ...string) *FallbackResolver {
	descriptors, err := ParseDescriptors(raw)
	require.NoError(t, err)
	sources, err := NewSources(descriptors, requests.NewHTTPClient("", requests.DefaultTimeout), requests.DefaultTimeout, "")
	require.NoError(t, err)
	return NewFallbackResolver(publisher, sources...)
}

func TestFallbackResolver_FirstSuccessShortCircuits(t *testing.T) {
	// given
	first := newCountingServer(http.StatusOK, "1.2.3.4\n")
	defer first.Close()
	second := newCountingServer(http.StatusOK, "5.6.7.8")
	defer second.Close()

	resolver := newTestResolver(t, nil, first.URL, second.URL)

	// when
	address, err := resolver.GetPublicIP(context.Background())

	// then
	assert.NoError(t, err)
	assert.Equal(t, "1.2.3.4", address)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestFallbackResolver_JSONWithoutFieldFallsThrough(t *testing.T) {
	// given
	first := newCountingServer(http.StatusOK, `{"origin":"9.9.9.9"}`)
	defer first.Close()
	second := newCountingServer(http.StatusOK, "5.6.7.8")
	defer second.Close()

	resolver := newTestResolver(t, nil, first.URL+"#ip", second.URL)

	// when
	address, err := resolver.GetPublicIP(context.Background())

	// then
	assert.NoError(t, err)
	assert.Equal(t, "5.6.7.8", address)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestFallbackResolver_FailuresFallThroughInOrder(t *testing.T) {
	// given
	httpError := newCountingServer(http.StatusBadGateway, "")
	defer httpError.Close()
	malformed := newCountingServer(http.StatusOK, `{"ip":`)
	defer malformed.Close()
	empty := newCountingServer(http.StatusOK, `{"ip":""}`)
	defer empty.Close()
	working := newCountingServer(http.StatusOK, `{"origin":"203.0.113.5"}`)
	defer working.Close()

	resolver := newTestResolver(t, nil, httpError.URL, malformed.URL+"#ip", empty.URL+"#ip", working.URL+"#origin")

	// when
	address, err := resolver.GetPublicIP(context.Background())

	// then
	assert.NoError(t, err)
	assert.Equal(t, "203.0.113.5", address)
	assert.Equal(t, 1, httpError.calls)
	assert.Equal(t, 1, malformed.calls)
	assert.Equal(t, 1, empty.calls)
	assert.Equal(t, 1, working.calls)
}

func TestFallbackResolver_AllFail(t *testing.T) {
	// given
	failing := newCountingServer(http.StatusInternalServerError, "")
	defer failing.Close()
	empty := newCountingServer(http.StatusOK, "\n")
	defer empty.Close()

	resolver := newTestResolver(t, nil, failing.URL, empty.URL)

	// when
	address, err := resolver.GetPublicIP(context.Background())

	// then
	assert.Empty(t, address)
	assert.True(t, errors.Is(err, ErrNoAddress))

	var noAddress *NoAddressError
	require.True(t, errors.As(err, &noAddress))
	require.Len(t, noAddress.Attempts, 2)
	assert.Equal(t, requests.KindRequest, noAddress.Attempts[0].(*LookupError).Kind)
	assert.Equal(t, KindEmptyValue, noAddress.Attempts[1].(*LookupError).Kind)
}

func TestFallbackResolver_TimeoutFallsThrough(t *testing.T) {
	// given
	release := make(chan struct{})
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer slow.Close()
	defer close(release)
	working := newCountingServer(http.StatusOK, "5.6.7.8")
	defer working.Close()

	descriptors, err := ParseDescriptors([]string{slow.URL, working.URL})
	require.NoError(t, err)
	sources, err := NewSources(descriptors, requests.NewHTTPClient("", 50*time.Millisecond), 50*time.Millisecond, "")
	require.NoError(t, err)
	resolver := NewFallbackResolver(nil, sources...)

	// when
	address, err := resolver.GetPublicIP(context.Background())

	// then
	assert.NoError(t, err)
	assert.Equal(t, "5.6.7.8", address)
}

func TestFallbackResolver_EmptyAddressWithoutErrorIsFailure(t *testing.T) {
	blank := &mockSource{name: "blank"}
	working := &mockSource{name: "working", address: "192.0.2.10"}

	address, err := NewFallbackResolver(nil, blank, working).GetPublicIP(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "192.0.2.10", address)
	assert.Equal(t, 1, blank.calls)
}

func TestFallbackResolver_StopsWhenContextIsDone(t *testing.T) {
	// given
	bus := eventbus.New()
	var events []LookupEvent
	require.NoError(t, bus.Subscribe(AppTopicLookup, func(e LookupEvent) {
		events = append(events, e)
	}))

	first := &mockSource{name: "first", address: "192.0.2.10"}
	second := &mockSource{name: "second", address: "192.0.2.11"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// when
	address, err := NewFallbackResolver(bus, first, second).GetPublicIP(ctx)

	// then
	assert.Empty(t, address)
	assert.True(t, errors.Is(err, ErrNoAddress))
	assert.Equal(t, 0, first.calls)
	assert.Equal(t, 0, second.calls)
	require.Len(t, events, 1)
	assert.Equal(t, "first", events[0].Source)
	assert.True(t, events[0].Failed())
}

func TestFallbackResolver_NoSources(t *testing.T) {
	address, err := NewFallbackResolver(nil).GetPublicIP(context.Background())

	assert.Empty(t, address)
	assert.EqualError(t, err, "no public IP address resolved: no sources configured")
}

func TestFallbackResolver_PublishesAttempts(t *testing.T) {
	// given
	bus := eventbus.New()
	var events []LookupEvent
	require.NoError(t, bus.Subscribe(AppTopicLookup, func(e LookupEvent) {
		events = append(events, e)
	}))

	failing := &mockSource{name: "failing", err: errors.New("boom")}
	malformed := &mockSource{name: "malformed", err: &LookupError{Source: "malformed", Kind: KindMalformedBody, Err: errors.New("bad json")}}
	working := &mockSource{name: "working", address: "192.0.2.10"}

	// when
	_, err := NewFallbackResolver(bus, failing, malformed, working).GetPublicIP(context.Background())

	// then
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "failing", events[0].Source)
	assert.Equal(t, requests.KindRequest, events[0].Kind)
	assert.True(t, events[0].Failed())
	assert.Equal(t, KindMalformedBody, events[1].Kind)
	assert.Equal(t, "192.0.2.10", events[2].Address)
	assert.False(t, events[2].Failed())
}

func TestFallbackResolver_LogsFailureCategories(t *testing.T) {
	// given
	capturer := logconfig.NewLogCapturer()
	capturer.Attach()
	defer capturer.Detach()

	sources := []Source{
		&mockSource{name: "a", err: &LookupError{Source: "a", Kind: requests.KindTimeout, Err: context.DeadlineExceeded}},
		&mockSource{name: "b", err: &LookupError{Source: "b", Kind: requests.KindConnection, Err: errors.New("refused")}},
		&mockSource{name: "c", err: &LookupError{Source: "c", Kind: KindMalformedBody, Err: errors.New("bad json")}},
		&mockSource{name: "d", err: &LookupError{Source: "d", Kind: KindEmptyValue, Err: errors.New("missing")}},
		&mockSource{name: "e", err: errors.New("other")},
	}

	// when
	_, err := NewFallbackResolver(nil, sources...).GetPublicIP(context.Background())

	// then
	assert.Error(t, err)
	assert.Equal(t, []string{
		"Request to a timed out",
		"Connection error while requesting b",
		"Failed to parse response from c",
		"Request to e failed",
		"Failed to resolve public IP from any configured source",
	}, capturer.MessagesAt(zerolog.ErrorLevel))
	assert.Equal(t, []string{"No IP address in response from d"}, capturer.MessagesAt(zerolog.WarnLevel))
}
