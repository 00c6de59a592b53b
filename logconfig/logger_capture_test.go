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

package logconfig

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLogCapturer_CapturesMessagesWithLevels(t *testing.T) {
	// given
	capturer := NewLogCapturer()
	capturer.Attach()
	defer capturer.Detach()

	// when
	log.Info().Msg("first")
	log.Error().Msg("second")

	// then
	assert.Equal(t, []string{"first", "second"}, capturer.Messages())
	assert.Equal(t, []string{"second"}, capturer.MessagesAt(zerolog.ErrorLevel))
}

func TestTrimLeftInclusive(t *testing.T) {
	assert.Equal(t, "/github.com/rs/zerolog/log.go", trimLeftInclusive("/home/u/go/pkg/mod/github.com/rs/zerolog/log.go", "/go/pkg/mod"))
	assert.Equal(t, "core/ip/resolver.go", trimLeftInclusive("core/ip/resolver.go", "/vendor"))
}

func TestConfigure_AppliesLevel(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	Configure(&LogOptions{LogLevel: zerolog.WarnLevel})

	assert.Equal(t, zerolog.WarnLevel, log.Logger.GetLevel())
	assert.Equal(t, zerolog.WarnLevel, CurrentLogOptions.LogLevel)
}
