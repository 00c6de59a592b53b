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
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/mysteriumnetwork/ipnotify/logconfig/httptrace"
)

const (
	// DefaultTimeout is a default HTTP client timeout.
	DefaultTimeout = 10 * time.Second
)

// NewHTTPClient creates a new HTTP client bound to the given source address.
func NewHTTPClient(srcIP string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: GetDefaultTransport(srcIP),
		},
	}
}

// HTTPClient describes a client for performing HTTP requests.
type HTTPClient struct {
	client *http.Client
}

// Do sends an HTTP request and returns an HTTP response.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}

// DoRequest performs HTTP requests and parses error without returning response.
func (c *HTTPClient) DoRequest(req *http.Request) error {
	response, err := c.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	httptrace.TraceRequestResponse(req, response)

	return ParseResponseError(response)
}

// DoRequestAndReadBody performs HTTP request and returns raw response body of a successful response.
func (c *HTTPClient) DoRequestAndReadBody(req *http.Request) ([]byte, error) {
	response, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	httptrace.TraceRequestResponse(req, response)

	if err := ParseResponseError(response); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	return body, nil
}

// ErrorHTTP represents a response with a non-successful status code.
type ErrorHTTP struct {
	Code   int
	Status string
	URL    string
}

// Error returns string representation of the error.
func (e *ErrorHTTP) Error() string {
	return fmt.Sprintf("server response invalid: %s (%s)", e.Status, e.URL)
}

// ParseResponseError parses http.Response error.
func ParseResponseError(response *http.Response) error {
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var url string
		if response.Request != nil && response.Request.URL != nil {
			url = response.Request.URL.String()
		}
		return &ErrorHTTP{Code: response.StatusCode, Status: response.Status, URL: url}
	}

	return nil
}
