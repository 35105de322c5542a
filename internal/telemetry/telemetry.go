// Package telemetry sends anonymous usage events to PostHog.
package telemetry

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/denisbrodbeck/machineid"
	"github.com/juanibiapina/sideswipe/internal/version"
	"github.com/posthog/posthog-go"
)

const (
	endpoint = "https://eu.i.posthog.com"
	appID    = "sideswipe"
)

// key is injected at release build time; development builds send nothing
var key = ""

var (
	client   posthog.Client
	deviceID string
)

// Init starts the client unless telemetry is disabled. Events sent before
// Init, or while disabled, are dropped.
func Init() {
	if isDisabled() {
		return
	}

	c, err := posthog.NewWithConfig(key, posthog.Config{
		Endpoint: endpoint,
		Logger:   logger{},
	})
	if err != nil {
		slog.Warn("telemetry: client unavailable", "error", err)
		return
	}
	client = c
	deviceID = anonymousID()
}

// isDisabled honors SIDESWIPE_TELEMETRY_DISABLED and DO_NOT_TRACK
func isDisabled() bool {
	if key == "" {
		return true
	}
	for _, name := range []string{"SIDESWIPE_TELEMETRY_DISABLED", "DO_NOT_TRACK"} {
		if off, _ := strconv.ParseBool(os.Getenv(name)); off {
			return true
		}
	}
	return false
}

// anonymousID hashes the machine ID with the app name
func anonymousID() string {
	id, err := machineid.ProtectedID(appID)
	if err != nil {
		slog.Debug("telemetry: no machine id", "error", err)
		return "unknown"
	}
	return id
}

func environment() posthog.Properties {
	return posthog.NewProperties().
		Set("goos", runtime.GOOS).
		Set("goarch", runtime.GOARCH).
		Set("term", os.Getenv("TERM")).
		Set("shell", filepath.Base(os.Getenv("SHELL"))).
		Set("version", version.Version).
		Set("go_version", runtime.Version())
}

func send(event string, props ...any) {
	if client == nil {
		return
	}

	capture := posthog.Capture{
		DistinctId: deviceID,
		Event:      event,
		Properties: pairsToProps(props...).Merge(environment()),
	}
	if err := client.Enqueue(capture); err != nil {
		slog.Warn("telemetry: event dropped", "event", event, "error", err)
	}
}

// Flush delivers queued events and shuts the client down
func Flush() {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		slog.Warn("telemetry: flush failed", "error", err)
	}
	client = nil
}

// pairsToProps turns alternating keys and values into properties. An odd
// count yields no properties; a non-string key skips its pair.
func pairsToProps(pairs ...any) posthog.Properties {
	props := posthog.NewProperties()
	if len(pairs)%2 != 0 {
		slog.Warn("telemetry: unpaired properties", "pairs", pairs)
		return props
	}

	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			slog.Warn("telemetry: property name is not a string", "name", pairs[i])
			continue
		}
		props = props.Set(name, pairs[i+1])
	}
	return props
}
