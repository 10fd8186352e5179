// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package audit records what the server does: request spans and the process logger.
package audit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Outputs with a fixed meaning. Anything else is a file path.
const (
	Stdout = "/dev/stdout"
	Stderr = "/dev/stderr"
)

const logFileMode = 0o640

// LogOptions configures the process logger.
type LogOptions struct {
	// Level is a zerolog level name. Empty or unknown leaves the level alone.
	Level   string
	Outputs []string
	// JSON writes file outputs as JSON lines. Stdout and Stderr are always
	// console formatted.
	JSON bool
}

// SetDefaultLogger gives startup messages a readable format before the
// configuration is loaded.
func SetDefaultLogger() {
	log.Logger = log.Output(ConsoleWriter(os.Stderr))
}

// Setup replaces the global logger.
//
// Outputs that cannot be opened are skipped and reported in the returned
// error; the logger is installed either way, falling back to stderr when no
// output is left.
func Setup(opts LogOptions) error {
	if level, err := zerolog.ParseLevel(opts.Level); err == nil && opts.Level != "" {
		zerolog.SetGlobalLevel(level)
	}

	var (
		writers []io.Writer
		errs    []error
	)

	for _, output := range opts.Outputs {
		w, err := openOutput(output, opts.JSON)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		writers = append(writers, w)
	}

	if len(writers) == 0 {
		writers = append(writers, ConsoleWriter(os.Stderr))
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(writers...))

	return errors.Join(errs...)
}

func openOutput(output string, asJSON bool) (io.Writer, error) {
	switch output {
	case Stdout:
		return ConsoleWriter(os.Stdout), nil
	case Stderr:
		return ConsoleWriter(os.Stderr), nil
	}

	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode) // #nosec:G302,G304
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", output, err)
	}

	if asJSON {
		return file, nil
	}

	return ConsoleWriter(file), nil
}

// ConsoleWriter returns a human-readable writer for f, colored when f is a
// terminal. Span events are folded into a single
// "[destination] status METHOD url" message.
func ConsoleWriter(f *os.File) io.Writer {
	return zerolog.ConsoleWriter{
		Out:           f,
		NoColor:       !isatty.IsTerminal(f.Fd()),
		TimeFormat:    time.DateTime,
		FormatPrepare: foldSpan,
	}
}

func foldSpan(m map[string]any) error {
	if m["sys"] != "http" {
		return nil
	}

	m["message"] = fmt.Sprintf("[%v] %v %-5v %v", m["destination"], m["status_code"], m["method"], m["url"])

	for _, k := range []string{"sys", "method", "status_code", "url", "destination", "request_id"} {
		delete(m, k)
	}

	return nil
}
