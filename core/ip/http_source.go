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
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/mysteriumnetwork/ipnotify/requests"
)

// HTTPSource asks an HTTP echo service for the caller's address.
type HTTPSource struct {
	descriptor Descriptor
	httpClient *requests.HTTPClient
}

// NewHTTPSource creates HTTP lookup source.
func NewHTTPSource(d Descriptor, httpClient *requests.HTTPClient) *HTTPSource {
	return &HTTPSource{
		descriptor: d,
		httpClient: httpClient,
	}
}

// Attempt queries the service once.
func (s *HTTPSource) Attempt(ctx context.Context) (string, error) {
	req, err := requests.NewGetRequestWithContext(ctx, s.descriptor.URL)
	if err != nil {
		return "", newLookupError(s, requests.KindRequest, err)
	}
	if s.descriptor.Key != "" {
		req.Header.Set("Accept", "application/json")
	}

	body, err := s.httpClient.DoRequestAndReadBody(req)
	if err != nil {
		return "", newLookupError(s, requests.Classify(err), err)
	}

	if s.descriptor.Key == "" {
		return s.nonEmpty(strings.TrimSpace(string(body)))
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", newLookupError(s, KindMalformedBody, errors.Wrap(err, "failed to parse JSON response"))
	}

	value, ok := payload[s.descriptor.Key]
	if !ok || value == nil {
		return "", newLookupError(s, KindEmptyValue, errors.Errorf("field %q is missing", s.descriptor.Key))
	}
	address, ok := value.(string)
	if !ok {
		return "", newLookupError(s, KindEmptyValue, errors.Errorf("field %q is not a string", s.descriptor.Key))
	}
	return s.nonEmpty(address)
}

func (s *HTTPSource) nonEmpty(address string) (string, error) {
	if address == "" {
		return "", newLookupError(s, KindEmptyValue, errors.New("response carries no address"))
	}
	return address, nil
}

func (s *HTTPSource) String() string {
	return s.descriptor.URL
}
