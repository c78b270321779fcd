package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/Thunder-Compute/ghupdate/internal/config"
	"github.com/Thunder-Compute/ghupdate/tui"
	"github.com/Thunder-Compute/ghupdate/updater"
	"github.com/spf13/cobra"
)

var (
	downloadDir      string
	downloadQuiet    bool
	downloadPlatform string
)

var downloadCmd = &cobra.Command{
	Use:   "download [owner] [repo]",
	Short: "Download the latest release asset for this platform",
	Long: "Downloads the asset of the latest release that matches this platform into the\n" +
		"current directory (or --dir). An existing file with the same name is replaced.",
	Example: "  ghupdate download sw33ze swarm\n  ghupdate download sw33ze swarm --dir ./bin --quiet",
	Args:    repoArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDownload(cmd.Context(), cmd.OutOrStdout(), args)
	},
}

func init() {
	downloadCmd.Flags().StringVar(&downloadDir, "dir", "", "directory to write the asset to (default is the current directory)")
	downloadCmd.Flags().BoolVarP(&downloadQuiet, "quiet", "q", false, "do not show a progress spinner")
	downloadCmd.Flags().StringVar(&downloadPlatform, "platform", "", "platform to download instead of this host (windows, mac, linux)")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(ctx context.Context, out io.Writer, args []string) error {
	owner, repo, err := resolveRepo(args)
	if err != nil {
		return err
	}
	platform, err := targetPlatform(downloadPlatform)
	if err != nil {
		return err
	}
	if err := config.ApplyOverrides(map[string]any{config.KeyDownloadDir: downloadDir}); err != nil {
		return err
	}

	client := newClient()
	release, err := client.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return err
	}

	assetURL, err := updater.ResolvePlatformURL(updater.GetReleaseURLs(release), platform)
	if err != nil {
		return err
	}

	// quitting the spinner returns before the action does; abort its request
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var written string
	action := func() error {
		var err error
		written, err = client.Download(ctx, assetURL)
		return err
	}

	if downloadQuiet {
		err = action()
	} else {
		err = tui.RunDownloadProgress(fmt.Sprintf("Downloading %s (%s)...", path.Base(assetURL), release.TagName), action)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderDownloadFailed(err, release.HTMLURL))
		return err
	}

	fmt.Fprintln(out, tui.RenderDownloadComplete(written))
	return nil
}
