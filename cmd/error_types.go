package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/Thunder-Compute/ghupdate/updater"
)

// getErrorType categorizes errors for better Sentry grouping
func getErrorType(err error) string {
	switch {
	case errors.Is(err, updater.ErrNotFound):
		return "not_found"

	case errors.Is(err, updater.ErrUnsupportedPlatform):
		return "platform_error"

	case errors.Is(err, updater.ErrParse):
		return "parsing_error"

	case errors.Is(err, updater.ErrIO):
		return "io_error"

	case errors.Is(err, updater.ErrNetwork) ||
		errors.Is(err, context.DeadlineExceeded):
		return "network_error"
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "config"):
		return "config_error"

	case strings.Contains(errStr, "owner") ||
		strings.Contains(errStr, "platform") ||
		strings.Contains(errStr, "arg"):
		return "usage_error"

	default:
		return "unknown_error"
	}
}
