package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/posthog/posthog-go"
)

var _ posthog.Logger = logger{}

// logger routes PostHog's own messages into the debug log file.
// It never writes to stderr, which would corrupt the TUI, and telemetry
// failures are never surfaced above debug level.
type logger struct{}

func (logger) Debugf(format string, args ...any) { debugf(format, args...) }
func (logger) Logf(format string, args ...any)   { debugf(format, args...) }
func (logger) Warnf(format string, args ...any)  { debugf(format, args...) }
func (logger) Errorf(format string, args ...any) { debugf(format, args...) }

func debugf(format string, args ...any) {
	slog.Debug("telemetry: " + fmt.Sprintf(format, args...))
}
