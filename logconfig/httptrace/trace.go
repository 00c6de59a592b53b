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

// Package httptrace dumps outgoing HTTP traffic to the debug log when HTTP payload logging is on.
package httptrace

import (
	"net/http"
	"net/http/httputil"

	"github.com/rs/zerolog/log"

	"github.com/mysteriumnetwork/ipnotify/logconfig"
)

// TraceRequest logs request dump.
func TraceRequest(req *http.Request) {
	if !logconfig.CurrentLogOptions.LogHTTP {
		return
	}
	dumpRequest, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to dump request")
		return
	}
	log.Debug().Msgf("Request: %v", string(dumpRequest))
}

// TraceRequestResponse logs request and response dumps. Response body stays readable.
func TraceRequestResponse(req *http.Request, resp *http.Response) {
	if !logconfig.CurrentLogOptions.LogHTTP {
		return
	}
	TraceRequest(req)
	dumpResponse, err := httputil.DumpResponse(resp, true)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to dump response")
		return
	}
	log.Debug().Msgf("Response: %v", string(dumpResponse))
}
