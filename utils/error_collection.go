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

package utils

import (
	"fmt"
	"strings"
)

// ErrorCollection is a list of errors, gathered while several independent steps run
type ErrorCollection []error

// Add appends given errors to the collection, nil errors are skipped
func (ec *ErrorCollection) Add(errs ...error) {
	for _, err := range errs {
		if err != nil {
			*ec = append(*ec, err)
		}
	}
}

// Stringf formats all errors in the collection with given format and separator
func (ec ErrorCollection) Stringf(format, separator string) string {
	messages := make([]string, len(ec))
	for i, err := range ec {
		messages[i] = err.Error()
	}
	return fmt.Sprintf(format, strings.Join(messages, separator))
}
