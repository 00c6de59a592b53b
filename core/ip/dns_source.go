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

	"github.com/miekg/dns"
	"github.com/pkg/errors"

	"github.com/mysteriumnetwork/ipnotify/requests"
)

// DNSSource asks a resolver that answers with the address of the querying host,
// e.g. OpenDNS for myip.opendns.com (A) or Google for o-o.myaddr.l.google.com (TXT).
type DNSSource struct {
	descriptor Descriptor
	server     string
	name       string
	qtype      uint16
	client     *dns.Client
}

// NewDNSSource creates DNS lookup source.
func NewDNSSource(d Descriptor, timeout time.Duration, bindAddress string) (*DNSSource, error) {
	u, err := url.Parse(d.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid DNS source")
	}

	server := u.Host
	if u.Port() == "" {
		server = net.JoinHostPort(u.Hostname(), "53")
	}

	qtype := dns.TypeA
	if t := u.Query().Get("type"); t != "" {
		var ok bool
		qtype, ok = dns.StringToType[strings.ToUpper(t)]
		if !ok {
			return nil, errors.Errorf("unknown DNS query type %q", t)
		}
	}
	switch qtype {
	case dns.TypeA, dns.TypeAAAA, dns.TypeTXT:
	default:
		return nil, errors.Errorf("DNS query type %s can not carry an address", dns.TypeToString[qtype])
	}

	return &DNSSource{
		descriptor: d,
		server:     server,
		name:       dns.Fqdn(strings.Trim(u.Path, "/")),
		qtype:      qtype,
		client: &dns.Client{
			Net:     "udp",
			Timeout: timeout,
			Dialer:  &net.Dialer{Timeout: timeout, LocalAddr: localUDPAddr(bindAddress)},
		},
	}, nil
}

// Attempt sends a single query.
func (s *DNSSource) Attempt(ctx context.Context) (string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(s.name, s.qtype)

	resp, _, err := s.client.ExchangeContext(ctx, msg, s.server)
	if err != nil {
		return "", newLookupError(s, requests.Classify(err), err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return "", newLookupError(s, requests.KindRequest, errors.Errorf("query failed with %s", dns.RcodeToString[resp.Rcode]))
	}

	for _, rr := range resp.Answer {
		switch record := rr.(type) {
		case *dns.A:
			return record.A.String(), nil
		case *dns.AAAA:
			return record.AAAA.String(), nil
		case *dns.TXT:
			if len(record.Txt) > 0 && strings.TrimSpace(record.Txt[0]) != "" {
				return strings.TrimSpace(record.Txt[0]), nil
			}
		}
	}

	return "", newLookupError(s, KindEmptyValue, errors.New("answer carries no address"))
}

func (s *DNSSource) String() string {
	return s.descriptor.URL
}
