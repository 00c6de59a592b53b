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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_DoRequestAndReadBody(t *testing.T) {
	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, agentName, r.Header.Get("User-Agent"))
		w.Write([]byte("203.0.113.5\n"))
	}))
	defer server.Close()

	client := NewHTTPClient("127.0.0.1", DefaultTimeout)
	req, err := NewGetRequestWithContext(context.Background(), server.URL)
	require.NoError(t, err)

	// when
	body, err := client.DoRequestAndReadBody(req)

	// then
	assert.NoError(t, err)
	assert.Equal(t, "203.0.113.5\n", string(body))
}

func TestHTTPClient_DoRequestAndReadBody_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHTTPClient("", DefaultTimeout)
	req, err := NewGetRequestWithContext(context.Background(), server.URL+"/ip")
	require.NoError(t, err)

	body, err := client.DoRequestAndReadBody(req)

	assert.Nil(t, body)
	var httpErr *ErrorHTTP
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
	assert.Equal(t, server.URL+"/ip", httpErr.URL)
	assert.EqualError(t, err, "server response invalid: 503 Service Unavailable ("+server.URL+"/ip)")
}

func TestHTTPClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewHTTPClient("", 50*time.Millisecond)
	req, err := NewGetRequestWithContext(context.Background(), server.URL)
	require.NoError(t, err)

	err = client.DoRequest(req)

	require.Error(t, err)
	var netErr interface{ Timeout() bool }
	require.True(t, errors.As(err, &netErr))
	assert.True(t, netErr.Timeout())
}

func TestParseResponseError(t *testing.T) {
	assert.NoError(t, ParseResponseError(&http.Response{StatusCode: http.StatusNoContent}))
	assert.Error(t, ParseResponseError(&http.Response{StatusCode: http.StatusFound, Status: "302 Found"}))
}
