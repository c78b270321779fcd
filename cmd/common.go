package cmd

import (
	"fmt"

	"github.com/Thunder-Compute/ghupdate/internal/config"
	"github.com/Thunder-Compute/ghupdate/updater"
	"github.com/spf13/cobra"
)

// repoArgs accepts either no positional repo (owner/repo come from config) or both
// owner and repo, followed by up to extra more arguments.
func repoArgs(extra int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return fmt.Errorf("requires both <owner> and <repo>, got only %q", args[0])
		}
		return cobra.MaximumNArgs(2+extra)(cmd, args)
	}
}

func resolveRepo(args []string) (owner, repo string, err error) {
	owner = config.GetString(config.KeyOwner)
	repo = config.GetString(config.KeyRepo)
	if len(args) >= 2 {
		owner, repo = args[0], args[1]
	}
	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("owner and repository are required: pass <owner> <repo> or set owner/repo in the config file")
	}
	return owner, repo, nil
}

func newClient() *updater.Client {
	c := updater.NewClient(config.GetString(config.KeyAPIURL))
	c.Dir = config.GetString(config.KeyDownloadDir)
	return c
}

// targetPlatform returns the platform named by the --platform flag, or the host's.
func targetPlatform(name string) (updater.Platform, error) {
	if name == "" {
		return updater.HostPlatform(), nil
	}
	p := updater.ParsePlatform(name)
	if p == updater.PlatformUnsupported {
		return p, fmt.Errorf("unknown platform %q (want windows, mac or linux)", name)
	}
	return p, nil
}
