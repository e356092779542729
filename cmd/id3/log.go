package main

import (
	"fmt"
	"io"
	"log/slog"
)

type logger struct {
	*slog.Logger
}

/*
Logf logs a progress message. Messages only reach the output when the
verbose flag is set.
*/
func (l logger) Logf(format string, a ...interface{}) {
	if l.Logger == nil {
		return
	}
	l.Info(fmt.Sprintf(format, a...))
}

func (rcc *rootCmdConfig) setupLogger(w io.Writer) error {
	l, err := newLogger(w, rcc.logFormat, rcc.verbose)
	if err != nil {
		return err
	}
	rcc.logger = logger{l}
	return nil
}

// Logger returns the logger set up from the persistent flags.
func (rcc *rootCmdConfig) Logger() *slog.Logger {
	if rcc.logger.Logger == nil {
		rcc.logger = logger{slog.New(slog.NewTextHandler(io.Discard, nil))}
	}
	return rcc.logger.Logger
}

func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	rcc.logger.Logf(format, a...)
}

/*
newLogger returns a logger writing onto w in the given format, text or
json. Only warnings and errors are written unless verbose is set, in which
case everything down to debug level is.
*/
func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q, valid formats are text and json", format)
	}
}
