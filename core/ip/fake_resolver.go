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

import "context"

// NewFakeResolver returns resolver which always yields the given address.
func NewFakeResolver(ip string) *FakeResolver {
	return &FakeResolver{ip: ip}
}

// NewFailingFakeResolver returns resolver which always fails with the given error.
func NewFailingFakeResolver(err error) *FakeResolver {
	return &FakeResolver{err: err}
}

// FakeResolver is a Resolver for tests.
type FakeResolver struct {
	ip    string
	err   error
	Calls int
}

// GetPublicIP returns the configured address or error.
func (r *FakeResolver) GetPublicIP(_ context.Context) (string, error) {
	r.Calls++
	return r.ip, r.err
}
