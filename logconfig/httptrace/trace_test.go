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

package httptrace

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mysteriumnetwork/ipnotify/logconfig"
)

func TestTraceRequestResponse_KeepsBodyReadable(t *testing.T) {
	logconfig.CurrentLogOptions.LogHTTP = true
	defer func() { logconfig.CurrentLogOptions.LogHTTP = false }()

	capturer := logconfig.NewLogCapturer()
	capturer.Attach()
	defer capturer.Detach()

	req, err := http.NewRequest(http.MethodGet, "http://example.com/ip", nil)
	require.NoError(t, err)
	resp := &http.Response{
		StatusCode: http.StatusOK,
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("203.0.113.5\n")),
	}

	TraceRequestResponse(req, resp)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.5\n", string(body))

	messages := capturer.Messages()
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "GET /ip")
	assert.Contains(t, messages[1], "203.0.113.5")
}

func TestTraceRequestResponse_DisabledByDefault(t *testing.T) {
	capturer := logconfig.NewLogCapturer()
	capturer.Attach()
	defer capturer.Detach()

	req, err := http.NewRequest(http.MethodGet, "http://example.com/ip", nil)
	require.NoError(t, err)
	TraceRequestResponse(req, &http.Response{Body: io.NopCloser(strings.NewReader(""))})

	assert.Empty(t, capturer.Messages())
}
