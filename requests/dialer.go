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

package requests

import (
	"context"
	"net"
	"net/http"
	"time"
)

// DialContext specifies the dial function for creating unencrypted TCP connections.
type DialContext func(ctx context.Context, network, addr string) (net.Conn, error)

// Dialer wraps default go dialer with extra features.
type Dialer struct {
	// Dialer specifies the dial function for creating unencrypted TCP connections.
	Dialer DialContext
}

// NewDialer creates dialer with default configuration.
func NewDialer(srcIP string) *Dialer {
	return &Dialer{
		Dialer: (&net.Dialer{
			Timeout:   DefaultTimeout,
			KeepAlive: 30 * time.Second,
			LocalAddr: &net.TCPAddr{IP: net.ParseIP(srcIP)},
		}).DialContext,
	}
}

// DialContext connects to the address on the named network using the provided context.
func (d *Dialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return d.Dialer(ctx, network, addr)
}

// GetDefaultTransport creates a transport bound to the given source address.
// Keep-alives are off: every run is a handful of requests to different hosts.
func GetDefaultTransport(srcIP string) *http.Transport {
	return &http.Transport{
		DialContext:           NewDialer(srcIP).DialContext,
		ForceAttemptHTTP2:     true,
		DisableKeepAlives:     true,
		TLSHandshakeTimeout:   DefaultTimeout,
		ExpectContinueTimeout: 1 * time.Second,
	}
}
