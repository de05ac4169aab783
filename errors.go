/* Copyright (C) 2024 Philipp Benner
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

package chromswitch

/* -------------------------------------------------------------------------- */

import "fmt"

/* -------------------------------------------------------------------------- */

// ConfigError marks a problem with the configuration or the input data that
// makes the requested computation impossible, such as mismatched option
// lists, an unknown attribute name, or inconsistent sample sets. A
// ConfigError raised during setup aborts the run; a ConfigError raised
// while processing a single region terminates only that region.
type ConfigError struct {
  Message string
}

func (e ConfigError) Error() string {
  return e.Message
}

func newConfigError(format string, args ...interface{}) ConfigError {
  return ConfigError{fmt.Sprintf(format, args...)}
}
