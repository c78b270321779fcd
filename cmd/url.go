package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/Thunder-Compute/ghupdate/updater"
	"github.com/spf13/cobra"
)

var urlPlatform string

var urlCmd = &cobra.Command{
	Use:   "url [owner] [repo]",
	Short: "Print the download URL of the latest release for this platform",
	Long: "Prints the asset URL without downloading it. The output is a bare URL so it\n" +
		"can be piped into other tools.",
	Example: "  ghupdate url sw33ze swarm\n  ghupdate url sw33ze swarm --platform windows",
	Args:    repoArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runURL(cmd.Context(), cmd.OutOrStdout(), args)
	},
}

func init() {
	urlCmd.Flags().StringVar(&urlPlatform, "platform", "", "platform to resolve instead of this host (windows, mac, linux)")
	rootCmd.AddCommand(urlCmd)
}

func runURL(ctx context.Context, out io.Writer, args []string) error {
	owner, repo, err := resolveRepo(args)
	if err != nil {
		return err
	}
	platform, err := targetPlatform(urlPlatform)
	if err != nil {
		return err
	}

	release, err := newClient().GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return err
	}

	u, err := updater.ResolvePlatformURL(updater.GetReleaseURLs(release), platform)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, u)
	return nil
}
