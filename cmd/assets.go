package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Thunder-Compute/ghupdate/tui"
	"github.com/Thunder-Compute/ghupdate/updater"
	"github.com/spf13/cobra"
)

var assetsJSON bool

var assetsCmd = &cobra.Command{
	Use:     "assets [owner] [repo]",
	Short:   "List the latest release's assets by platform",
	Example: "  ghupdate assets sw33ze swarm",
	Args:    repoArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssets(cmd.Context(), cmd.OutOrStdout(), args)
	},
}

func init() {
	assetsCmd.Flags().BoolVar(&assetsJSON, "json", false, "print the platform map as JSON")
	rootCmd.AddCommand(assetsCmd)
}

func runAssets(ctx context.Context, out io.Writer, args []string) error {
	owner, repo, err := resolveRepo(args)
	if err != nil {
		return err
	}

	release, err := newClient().GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return err
	}
	releases := updater.GetReleaseURLs(release)

	if assetsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(releases.ByName())
	}

	host := updater.HostPlatform()
	rows := make([]tui.AssetRow, 0, len(releases))
	for _, p := range releases.Keys() {
		rows = append(rows, tui.AssetRow{
			Platform: p.String(),
			URL:      releases[p],
			Host:     p == host,
		})
	}
	fmt.Fprintln(out, tui.RenderAssets(owner+"/"+repo, release.TagName, rows))
	return nil
}
