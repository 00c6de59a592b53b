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
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/mysteriumnetwork/ipnotify/requests"
)

// Source is a single way of finding out the public address.
type Source interface {
	// Attempt returns a non-empty address or an error, never both.
	Attempt(ctx context.Context) (string, error)
	String() string
}

// Supported descriptor schemes.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeDNS   = "dns"
	SchemeSTUN  = "stun"
)

// Descriptor is the immutable description of a lookup service.
// For HTTP services an empty Key means a plain-text body,
// otherwise the body is JSON and Key names the field holding the address.
type Descriptor struct {
	Scheme string
	URL    string
	Key    string
}

// ParseDescriptor parses the textual form of a descriptor:
//
//	https://icanhazip.com/                    plain text
//	https://api.ipify.org?format=json#ip      JSON, field "ip"
//	dns://resolver1.opendns.com/myip.opendns.com?type=A
//	stun://stun.l.google.com:19302
func ParseDescriptor(raw string) (Descriptor, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Descriptor{}, errors.New("empty IP source")
	}

	endpoint, key, _ := strings.Cut(raw, "#")
	u, err := url.Parse(endpoint)
	if err != nil {
		return Descriptor{}, errors.Wrapf(err, "invalid IP source %q", raw)
	}
	if u.Host == "" {
		return Descriptor{}, errors.Errorf("IP source %q has no host", raw)
	}

	scheme := strings.ToLower(u.Scheme)
	switch scheme {
	case SchemeHTTP, SchemeHTTPS:
	case SchemeDNS:
		if strings.Trim(u.Path, "/") == "" {
			return Descriptor{}, errors.Errorf("DNS source %q has no query name", raw)
		}
		fallthrough
	case SchemeSTUN:
		if key != "" {
			return Descriptor{}, errors.Errorf("%s source %q can not have a JSON key", scheme, raw)
		}
	default:
		return Descriptor{}, errors.Errorf("IP source %q has unsupported scheme %q", raw, u.Scheme)
	}

	return Descriptor{Scheme: scheme, URL: endpoint, Key: key}, nil
}

// ParseDescriptors parses the given descriptors keeping their order.
func ParseDescriptors(raw []string) ([]Descriptor, error) {
	descriptors := make([]Descriptor, 0, len(raw))
	for _, r := range raw {
		d, err := ParseDescriptor(r)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

func (d Descriptor) String() string {
	if d.Key == "" {
		return d.URL
	}
	return d.URL + "#" + d.Key
}

// NewSource creates the source implementation for the descriptor.
// DNS and STUN sources dial from bindAddress, HTTP sources use the client's own binding.
func NewSource(d Descriptor, httpClient *requests.HTTPClient, timeout time.Duration, bindAddress string) (Source, error) {
	switch d.Scheme {
	case SchemeHTTP, SchemeHTTPS:
		return NewHTTPSource(d, httpClient), nil
	case SchemeDNS:
		return NewDNSSource(d, timeout, bindAddress)
	case SchemeSTUN:
		return NewSTUNSource(d, timeout, bindAddress)
	}
	return nil, errors.Errorf("unsupported IP source scheme %q", d.Scheme)
}

// NewSources creates sources for all descriptors, in the same order.
func NewSources(descriptors []Descriptor, httpClient *requests.HTTPClient, timeout time.Duration, bindAddress string) ([]Source, error) {
	sources := make([]Source, 0, len(descriptors))
	for _, d := range descriptors {
		source, err := NewSource(d, httpClient, timeout, bindAddress)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}

// localUDPAddr returns the address UDP sources bind to, nil lets the system choose.
func localUDPAddr(bindAddress string) net.Addr {
	ip := net.ParseIP(bindAddress)
	if ip == nil || ip.IsUnspecified() {
		return nil
	}
	return &net.UDPAddr{IP: ip}
}
