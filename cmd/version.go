package cmd

import (
	"fmt"

	"github.com/gerrowadat/guessgame/internal"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version, commit, and build information for GuessGame.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := internal.GetBuildInfo()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "GuessGame %s\n", info.Version)
		fmt.Fprintf(out, "Commit: %s\n", info.Commit)
		fmt.Fprintf(out, "Build Time: %s\n", info.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
