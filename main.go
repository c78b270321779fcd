package main

import (
	"time"

	"github.com/Thunder-Compute/ghupdate/cmd"
	"github.com/getsentry/sentry-go"
)

func main() {
	// Sentry itself is initialized once config is loaded (see cmd.rootCmd).
	defer sentry.Flush(5 * time.Second)

	defer func() {
		if r := recover(); r != nil {
			sentry.CurrentHub().Recover(r)
			sentry.Flush(5 * time.Second)
			panic(r)
		}
	}()

	cmd.Execute()
}
