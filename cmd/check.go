package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Thunder-Compute/ghupdate/internal/config"
	"github.com/Thunder-Compute/ghupdate/internal/updatecheck"
	"github.com/Thunder-Compute/ghupdate/tui"
	"github.com/spf13/cobra"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check [owner] [repo] [current-version]",
	Short: "Check whether a newer release is available",
	Long: "Fetches the latest release of owner/repo and compares its tag against the\n" +
		"current version using semantic-version ordering.",
	Example: "  ghupdate check sw33ze swarm 1.2.0\n  ghupdate check --json",
	Args:    repoArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.Context(), cmd.OutOrStdout(), args)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(ctx context.Context, out io.Writer, args []string) error {
	owner, repo, err := resolveRepo(args)
	if err != nil {
		return err
	}

	current := config.GetString(config.KeyCurrentVersion)
	if len(args) > 2 {
		current = args[2]
	}

	res, err := updatecheck.Check(ctx, newClient(), owner, repo, current)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}

	if checkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	label := owner + "/" + repo
	switch {
	case res.Skipped:
		fmt.Fprintln(out, tui.RenderCheckSkipped(label, res.Reason))
	case res.Outdated:
		fmt.Fprintln(out, tui.RenderUpdateAvailable(label, displayVersion(res.CurrentVersion), displayVersion(res.LatestVersion)))
		if link := tui.RenderReleaseLink(res.ReleaseURL); link != "" {
			fmt.Fprintln(out, link)
		}
	default:
		fmt.Fprintln(out, tui.RenderUpToDate(label, displayVersion(res.CurrentVersion)))
	}
	return nil
}
