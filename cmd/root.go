// Package cmd implements the command line interface.
//
//	nhl-scores             - print the latest results
//	nhl-scores --nocolors  - disable terminal colors
//	nhl-scores --highlight - color goals by players from the highlight file
//	nhl-scores --stats     - print goal+assist tallies for highlighted players
//	nhl-scores --version   - print the version
package cmd

import (
	"errors"
	"fmt"
	"os"

	isatty "github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nhl-scores/config"
	"nhl-scores/feed"
	"nhl-scores/output"
	"nhl-scores/parser"
)

// BuildVersion is set at build time via ldflags.
var BuildVersion = "master"

var (
	noColors       bool
	showHighlights bool
	showStats      bool
)

var rootCmd = &cobra.Command{
	Use:           "nhl-scores",
	Short:         "Display live or previous NHL results on the command line",
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func run(cmd *cobra.Command, _ []string) error {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	resp, err := feed.NewClient(logger).FetchLatest(cmd.Context())
	if err != nil {
		fmt.Println(transportMessage(err))

		return err
	}

	games := parser.ParseGames(resp, logger)

	opts := output.Options{
		UseColors:      !noColors,
		ShowHighlights: showHighlights,
		ShowStats:      showStats,
		Interactive:    isatty.IsTerminal(os.Stdout.Fd()),
	}

	output.NewPrinter(os.Stdout, opts, config.LoadHighlights()).PrintGames(games)

	return nil
}

// transportMessage maps a fetch failure to the one-line category shown to
// the user.
func transportMessage(err error) string {
	switch {
	case errors.Is(err, feed.ErrTimeout):
		return "ERROR: API timed out. Try again later."
	case errors.Is(err, feed.ErrDecode):
		return "ERROR: API returned malformed data. Try again later."
	case errors.Is(err, feed.ErrConnect):
		return "ERROR: Can't connect to the API. It might be because your Internet connection is down."
	default:
		return "ERROR: Unknown error."
	}
}

// Execute sets up flags and runs the root command. Called once from main.
func Execute() {
	rootCmd.Version = BuildVersion
	rootCmd.PersistentFlags().BoolVar(&noColors, "nocolors", false, "Disable terminal colors")
	rootCmd.PersistentFlags().BoolVar(&showHighlights, "highlight", false,
		"Highlight players based on $HOME/"+config.HighlightFile+" file. If --nocolors is enabled, does nothing")
	rootCmd.PersistentFlags().BoolVar(&showStats, "stats", false,
		"Display stats (goals + assists) for players defined in $HOME/"+config.HighlightFile+" file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
