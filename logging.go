// logging.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file wires up structured logging for the package and its
// commands, using zerolog the way the wider retrieval pack (e.g.
// macondo's cmd/shell) sets up its loggers: a package-level Logger,
// console-pretty in development and JSON in production.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package scrabblecore

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package's shared logger. InitLogging replaces it once a
// caller's configuration is known; until then it logs at debug level and
// above to stderr in the pretty console format, suitable for `go test`
// output.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// InitLogging configures Log for the given verbosity and format. pretty
// selects the human-readable console writer (for local development and
// skraflsim); when false, Log emits newline-delimited JSON, the format
// skraflserver runs in production.
func InitLogging(level zerolog.Level, pretty bool) {
	var writer = os.Stderr
	var logger zerolog.Logger
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: writer, TimeFormat: "15:04:05"})
	} else {
		logger = zerolog.New(writer)
	}
	Log = logger.Level(level).With().Timestamp().Caller().Logger()
}
