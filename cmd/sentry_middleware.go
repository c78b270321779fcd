package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Thunder-Compute/ghupdate/internal/version"
	"github.com/Thunder-Compute/ghupdate/sentry"
	"github.com/Thunder-Compute/ghupdate/tui"
	"github.com/spf13/cobra"
)

// initSentry enables error reporting. A DSN baked in at build time wins over
// the sentry-dsn config key; with neither set reporting stays off.
func initSentry(configDSN string) {
	dsn := version.SentryDSN
	if dsn == "" {
		dsn = configDSN
	}
	if dsn == "" {
		return
	}

	err := sentry.Init(sentry.Config{
		DSN:         dsn,
		Environment: sentry.GetEnvironment(version.BuildVersion),
		Release:     fmt.Sprintf("ghupdate@%s", version.BuildVersion),
		SampleRate:  1.0,
		FilteredErrors: []string{
			tui.ErrDownloadCancelled.Error(),
		},
		ServiceName: "ghupdate",
		InstanceID:  sentry.GetInstanceID(),
	})
	if err != nil {
		debugWarn(err)
	}
}

func debugWarn(err error) {
	if os.Getenv("GHUPDATE_DEBUG") == "1" {
		PrintWarning(err.Error())
	}
}

// WrapCommandWithSentry wraps a cobra.Command's RunE function
// to automatically capture panics to Sentry
func WrapCommandWithSentry(cmd *cobra.Command) {
	if cmd.RunE == nil {
		return
	}

	originalRunE := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) error {
		defer sentry.CapturePanic(&sentry.EventOptions{
			Tags: sentry.NewTags().
				Set("command", cmd.Name()).
				Set("version", version.BuildVersion),
		})

		return originalRunE(c, args)
	}
}

// CaptureCommandError reports a failed command, skipping user cancellations.
func CaptureCommandError(cmd *cobra.Command, err error) {
	if err == nil || cmd == nil {
		return
	}

	if errors.Is(err, tui.ErrDownloadCancelled) {
		return
	}

	eventID := sentry.CaptureError(err, &sentry.EventOptions{
		Tags: sentry.NewTags().
			Set("command", cmd.Name()).
			Set("version", version.BuildVersion).
			Set("error_type", getErrorType(err)),
		Extra: sentry.NewExtra().
			Set("args", cmd.Flags().Args()),
		Level: ptr(getLogLevelForError(err)),
	})

	if eventID != nil {
		// os.Exit skips deferred flushes
		sentry.Flush(2 * time.Second)
	}
}

// ptr is a helper to create a pointer to a value
func ptr[T any](v T) *T {
	return &v
}

// getLogLevelForError determines the appropriate Sentry level for an error
func getLogLevelForError(err error) sentry.Level {
	switch getErrorType(err) {
	case "not_found", "platform_error", "usage_error", "config_error", "network_error":
		return sentry.LevelWarning
	default:
		return sentry.LevelError
	}
}
