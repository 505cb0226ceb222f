// Package cmd implements the magiceda command line: profile renders a
// data-frame profile figure, path renders a geographic path over map
// tiles, scatter renders a hover-tooltip scatter page.
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})

	rootCmd = &cobra.Command{
		Use:          "magiceda",
		Short:        "Plotting helpers for exploratory data analysis",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(profileCmd, pathCmd, scatterCmd)
}
