// SPDX-License-Identifier: MIT

// Command nelab runs the matrix kernels on YAML or JSON matrix documents.
//
// Usage:
//
//	nelab det a.yaml
//	nelab mul a.yaml b.json --format json
//	nelab minor a.yaml --row 0 --col 1
//
// Results go to stdout; logs go to stderr.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("nelab failed")
		os.Exit(1)
	}
}
