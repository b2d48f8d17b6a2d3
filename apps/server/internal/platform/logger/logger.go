// Package logger builds the server's root slog.Logger.
package logger

import (
	"log/slog"

	"github.com/tilsley/gallery/pkg/logging"
)

// New returns a logger configured from LOG_FORMAT and LOG_LEVEL env vars,
// tagged with the service name. See pkg/logging for details.
func New(service string) *slog.Logger {
	return logging.New().With("service", service)
}
