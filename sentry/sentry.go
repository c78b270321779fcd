package sentry

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config holds Sentry configuration options
type Config struct {
	DSN         string
	Environment string // "dev" or "production"
	Release     string // e.g. "ghupdate@1.0.0"
	Debug       bool
	SampleRate  float64 // 0.0 to 1.0

	// Error messages containing any of these substrings are dropped.
	FilteredErrors []string

	ServiceName string
	InstanceID  string
}

// Init initializes Sentry with the provided configuration. An empty DSN leaves
// Sentry disabled and every helper in this package becomes a no-op.
func Init(cfg Config) error {
	if cfg.DSN == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
		SampleRate:       cfg.SampleRate,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if shouldDrop(event, cfg.FilteredErrors) {
				return nil
			}
			if event.Extra == nil {
				event.Extra = make(map[string]interface{})
			}
			event.Extra["service_name"] = cfg.ServiceName
			event.Extra["instance_id"] = cfg.InstanceID
			return event
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("service", cfg.ServiceName)
		scope.SetTag("environment", cfg.Environment)
		if cfg.InstanceID != "" {
			scope.SetTag("instance_id", cfg.InstanceID)
		}
	})

	return nil
}

func shouldDrop(event *sentry.Event, filtered []string) bool {
	if event == nil {
		return true
	}
	for _, f := range filtered {
		if f == "" {
			continue
		}
		if strings.Contains(event.Message, f) {
			return true
		}
		for _, exception := range event.Exception {
			if strings.Contains(exception.Value, f) {
				return true
			}
		}
	}
	return false
}

// Flush flushes buffered events with timeout
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// CaptureError captures an error with typed options
func CaptureError(err error, opts *EventOptions) *sentry.EventID {
	if err == nil {
		return nil
	}

	var eventID *sentry.EventID
	sentry.WithScope(func(scope *sentry.Scope) {
		applyOptions(scope, opts)
		if opts != nil && opts.Level != nil {
			scope.SetLevel(*opts.Level)
		}
		if opts != nil && opts.Fingerprint != nil {
			scope.SetFingerprint(opts.Fingerprint)
		}
		eventID = sentry.CaptureException(err)
	})
	return eventID
}

func applyOptions(scope *sentry.Scope, opts *EventOptions) {
	if opts == nil {
		return
	}
	if opts.Tags != nil {
		for k, v := range opts.Tags.ToMap() {
			scope.SetTag(k, v)
		}
	}
	if opts.Extra != nil {
		for k, v := range opts.Extra.ToMap() {
			scope.SetExtra(k, v)
		}
	}
}

// Level is a Sentry severity level (re-exported for convenience)
type Level = sentry.Level

const (
	LevelDebug   = sentry.LevelDebug
	LevelInfo    = sentry.LevelInfo
	LevelWarning = sentry.LevelWarning
	LevelError   = sentry.LevelError
	LevelFatal   = sentry.LevelFatal
)

// CapturePanic should be used in a defer statement to capture and report panics.
// It recovers, reports, flushes, and re-panics.
func CapturePanic(opts *EventOptions) {
	if r := recover(); r != nil {
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetLevel(sentry.LevelFatal)
			applyOptions(scope, opts)
			sentry.CurrentHub().Recover(r)
		})
		sentry.Flush(5 * time.Second)
		panic(r)
	}
}

// GetEnvironment maps a build version to a Sentry environment.
func GetEnvironment(buildVersion string) string {
	if env := os.Getenv("GHUPDATE_ENVIRONMENT"); env != "" {
		return env
	}
	if buildVersion == "dev" {
		return "dev"
	}
	return "production"
}

// GetInstanceID returns an instance identifier
func GetInstanceID() string {
	if id := os.Getenv("HOSTNAME"); id != "" {
		return id
	}
	if id := os.Getenv("COMPUTERNAME"); id != "" {
		return id
	}
	return "unknown"
}
