package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Thunder-Compute/ghupdate/internal/config"
	"github.com/Thunder-Compute/ghupdate/internal/version"
	"github.com/Thunder-Compute/ghupdate/tui"
	"github.com/spf13/cobra"
)

var (
	apiURLFlag     string
	configPathFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ghupdate",
	Short: "Check GitHub releases and download platform assets",
	Long: "ghupdate compares a repository's latest GitHub release against a known version\n" +
		"and fetches the release asset built for this platform.",
	Version:       version.BuildVersion,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	for _, c := range rootCmd.Commands() {
		WrapCommandWithSentry(c)
	}

	executed, err := rootCmd.ExecuteC()
	if err != nil {
		CaptureCommandError(executed, err)
		PrintError(err)
		os.Exit(1)
	}
}

func init() {
	tui.InitCommonStyles(os.Stdout)

	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "GitHub API root (default https://api.github.com)")
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "config file (default is .ghupdate/config.yaml, then ~/.ghupdate/config.yaml)")

	completionCmd := &cobra.Command{
		Use:   "completion [shell]",
		Short: "Generate the autocompletion script for ghupdate for the specified shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletionV2(cmd.OutOrStdout(), true)
		},
	}

	completionCmd.AddCommand(&cobra.Command{
		Use:   "bash",
		Short: "Generate the autocompletion script for bash",
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletionV2(cmd.OutOrStdout(), true)
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "zsh",
		Short: "Generate the autocompletion script for zsh",
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "fish",
		Short: "Generate the autocompletion script for fish",
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "powershell",
		Short: "Generate the autocompletion script for powershell",
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
		},
	})

	rootCmd.AddCommand(completionCmd)
}

func loadConfig() error {
	var opts []config.Option
	if configPathFlag != "" {
		opts = append(opts, config.WithProjectConfig(configPathFlag))
	}
	if err := config.Initialize(opts...); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.ApplyOverrides(map[string]any{config.KeyAPIURL: apiURLFlag}); err != nil {
		return fmt.Errorf("apply flags: %w", err)
	}
	initSentry(config.GetString(config.KeySentryDSN))
	return nil
}

func displayVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "unknown"
	}
	if strings.HasPrefix(v, "v") || strings.HasPrefix(v, "V") {
		return v
	}
	return "v" + v
}
