package cmd

import (
	"os"

	"github.com/gerrowadat/guessgame/internal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	logLevel        string
	metricsTextfile string

	// newTarget picks the secret number; tests replace it
	newTarget = internal.RandomTarget
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "guessgame",
	Short: "Guess the secret number between 1 and 100",
	Long: `GuessGame picks a secret number between 1 and 100 and asks you to guess it.

Type a number and press enter after each prompt. You will be told whether
your guess is too small or too big until you find the number. Anything
that is not a whole number is ignored and you are simply asked again.

Use 'guessgame --log-level debug' to see what is happening under the hood.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger with the specified log level before any command runs
		internal.InitLoggerWithLevel(logLevel)
	},
	RunE: runGame,
}

func runGame(cmd *cobra.Command, args []string) error {
	reg := prometheus.NewRegistry()
	metrics := internal.NewMetrics(reg)
	registerVersionInfo(reg)

	game := internal.NewGame(newTarget(), cmd.InOrStdin(), cmd.OutOrStdout(), internal.WithMetrics(metrics))
	err := game.Play()

	if metricsTextfile != "" {
		if werr := internal.WriteTextfile(reg, metricsTextfile); werr != nil {
			internal.Logger.Warn().Err(werr).Str("path", metricsTextfile).Msg("Failed to write metrics textfile")
		} else {
			internal.Logger.Debug().Str("path", metricsTextfile).Msg("Metrics textfile written")
		}
	}

	return err
}

func registerVersionInfo(reg prometheus.Registerer) {
	info := internal.GetBuildInfo()
	versionInfo := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "guessgame_version_info",
			Help: "Version information for GuessGame",
		},
		[]string{"version", "commit", "build_time"},
	)
	reg.MustRegister(versionInfo)
	versionInfo.WithLabelValues(info.Version, info.Commit, info.BuildTime).Set(1)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", internal.DefaultLogLevel(), "Set the logging level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics for this game to a file when it ends")
}
