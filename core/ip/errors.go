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
	"fmt"

	"github.com/pkg/errors"

	"github.com/mysteriumnetwork/ipnotify/requests"
	"github.com/mysteriumnetwork/ipnotify/utils"
)

const (
	// KindMalformedBody the response could not be decoded.
	KindMalformedBody requests.ErrorKind = "malformed body"
	// KindEmptyValue the response was decoded but carried no address.
	KindEmptyValue requests.ErrorKind = "empty value"
)

// ErrNoAddress is returned when none of the sources yielded an address.
var ErrNoAddress = errors.New("no public IP address resolved")

// LookupError describes a failed attempt of a single source.
type LookupError struct {
	Source string
	Kind   requests.ErrorKind
	Err    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s error from %s: %v", e.Kind, e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *LookupError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error.
func (e *LookupError) Cause() error {
	return e.Err
}

func newLookupError(source Source, kind requests.ErrorKind, err error) *LookupError {
	return &LookupError{Source: source.String(), Kind: kind, Err: err}
}

// asLookupError keeps typed errors from sources and classifies everything else.
func asLookupError(source Source, err error) *LookupError {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr
	}
	return newLookupError(source, requests.Classify(err), err)
}

// NoAddressError is returned when every source failed, it carries the failure of each attempt.
type NoAddressError struct {
	Attempts utils.ErrorCollection
}

func (e *NoAddressError) Error() string {
	if len(e.Attempts) == 0 {
		return ErrNoAddress.Error() + ": no sources configured"
	}
	return e.Attempts.Stringf(ErrNoAddress.Error()+": %s", "; ")
}

// Is reports NoAddressError as ErrNoAddress.
func (e *NoAddressError) Is(target error) bool {
	return target == ErrNoAddress
}
