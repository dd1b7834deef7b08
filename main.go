// strandinfer: infer the strandedness of an RNA-seq library from RSeQC
// infer_experiment.py fractions and report the featureCounts strand option

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const VERSION = "1.0.0"

// Replaced in tests
var exitFunc = os.Exit

// Define color functions
var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

func getColorizedLogo() string {
	return cyan("⇅") + yellow("⇵")
}

func main() {
	rootCmd := newRootCmd()

	// Custom error handling
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))
		fmt.Fprintln(os.Stderr, red("Try 'strandinfer --help' for more information"))
		exitFunc(1)
	}
}

// newRootCmd assembles the command tree. Logging flags are shared by all subcommands
func newRootCmd() *cobra.Command {
	logOpts := &LogOptions{}

	rootCmd := &cobra.Command{
		Use:           "strandinfer",
		Short:         bold("Infer RNA-seq library strandedness"),
		Version:       VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			helpFunc(cmd, args)
		},
	}
	rootCmd.SetVersionTemplate("strandinfer {{.Version}}\n")
	rootCmd.SetHelpFunc(helpFunc)

	pflags := rootCmd.PersistentFlags()
	pflags.BoolVar(&logOpts.Debug, "debug", false, "Log debug events")
	pflags.BoolVarP(&logOpts.Quiet, "quiet", "q", false, "Do not log events to stderr")
	pflags.StringVar(&logOpts.LogFile, "log-file", "", "Append JSON events to this file instead of stderr")

	rootCmd.AddCommand(InferCommand(logOpts))
	rootCmd.AddCommand(ReportCommand(logOpts))
	rootCmd.AddCommand(BatchCommand(logOpts))

	return rootCmd
}
