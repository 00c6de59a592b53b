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
	"time"

	"github.com/pion/stun"
	"github.com/pkg/errors"

	"github.com/mysteriumnetwork/ipnotify/requests"
)

// STUNSource reads the reflexive address from a STUN binding response.
type STUNSource struct {
	descriptor Descriptor
	server     string
	timeout    time.Duration
	localAddr  net.Addr
}

// NewSTUNSource creates STUN lookup source.
func NewSTUNSource(d Descriptor, timeout time.Duration, bindAddress string) (*STUNSource, error) {
	u, err := url.Parse(d.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid STUN source")
	}

	server := u.Host
	if u.Port() == "" {
		server = net.JoinHostPort(u.Hostname(), "3478")
	}

	return &STUNSource{
		descriptor: d,
		server:     server,
		timeout:    timeout,
		localAddr:  localUDPAddr(bindAddress),
	}, nil
}

// Attempt sends a single binding request.
func (s *STUNSource) Attempt(ctx context.Context) (string, error) {
	dialer := net.Dialer{Timeout: s.timeout, LocalAddr: s.localAddr}
	conn, err := dialer.DialContext(ctx, "udp4", s.server)
	if err != nil {
		return "", newLookupError(s, requests.Classify(err), err)
	}
	defer conn.Close()

	deadline := time.Now().Add(s.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return "", newLookupError(s, requests.KindConnection, err)
	}

	request := stun.MustBuild(stun.TransactionID, stun.BindingRequest)
	if _, err := conn.Write(request.Raw); err != nil {
		return "", newLookupError(s, requests.Classify(err), errors.Wrap(err, "failed to send binding request"))
	}

	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil {
		return "", newLookupError(s, requests.Classify(err), errors.Wrap(err, "failed to read binding response"))
	}

	if !stun.IsMessage(buf[:n]) {
		return "", newLookupError(s, KindMalformedBody, errors.New("not a STUN message"))
	}
	resp := &stun.Message{Raw: buf[:n]}
	if err := resp.Decode(); err != nil {
		return "", newLookupError(s, KindMalformedBody, errors.Wrap(err, "failed to decode STUN message"))
	}
	if resp.TransactionID != request.TransactionID {
		return "", newLookupError(s, KindMalformedBody, errors.New("unexpected STUN transaction"))
	}

	var xorAddr stun.XORMappedAddress
	if err := xorAddr.GetFrom(resp); err != nil {
		return "", newLookupError(s, KindEmptyValue, errors.Wrap(err, "no mapped address in STUN response"))
	}

	return xorAddr.IP.String(), nil
}

func (s *STUNSource) String() string {
	return s.descriptor.URL
}
