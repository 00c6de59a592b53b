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

package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatString(t *testing.T) {
	assert.Equal(
		t,
		"Branch: master. Build id: 1234. Commit: b34a335019aaaae51256d8a33dfdef70ba08b075",
		FormatString("b34a335019aaaae51256d8a33dfdef70ba08b075", "master", "1234"),
	)
}

func TestVersionAsSummary(t *testing.T) {
	Version, BuildBranch, BuildNumber, BuildCommit = "1.2.3", "main", "42", "abc"
	defer func() {
		Version, BuildBranch, BuildNumber, BuildCommit = "source", "<unknown>", "dev-build", ""
	}()

	assert.Equal(t, "ipnotify 1.2.3 (Branch: main. Build id: 42. Commit: abc)", VersionAsSummary())
}
