// Subcommand (`strandinfer batch`) deciding many libraries concurrently

package main

import (
	"fmt"

	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
)

const DEFAULT_THREADS = 4

// BatchCommand creates the `batch` subcommand. Every positional argument is an
// infer_experiment.py report; one record per sample is written, ordered by
// sample name, and the consensus protocol of the batch is logged
func BatchCommand(logOpts *LogOptions) *cobra.Command {
	var (
		outFile    string
		sampleSize int
		threads    int
		pval       float64
	)

	cmd := &cobra.Command{
		Use:   "batch [flags] report...",
		Short: "Decide strandedness for many infer_experiment.py reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cleanup, err := newLogger(cmd.ErrOrStderr(), *logOpts)
			if err != nil {
				return fmt.Errorf("error opening log file: %v", err)
			}
			defer cleanup()

			cfg := DefaultDecisionConfig()
			cfg.PValueThreshold = pval
			if err := cfg.Validate(); err != nil {
				return err
			}

			decisions, err := decideReports(cmd.Context(), logger, args, sampleSize, threads, cfg)
			if err != nil {
				return err
			}

			c, err := consensus(decisions)
			if err != nil {
				return err
			}
			logConsensus(logger, c)

			outfh, err := xopen.Wopen(outFile)
			if err != nil {
				return fmt.Errorf("error creating output file: %v", err)
			}
			if err := writeSampleDecisions(outfh, decisions); err != nil {
				outfh.Close()
				return fmt.Errorf("error writing output: %v", err)
			}
			if err := outfh.Close(); err != nil {
				return fmt.Errorf("error closing output file: %v", err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&outFile, "out", "o", "-", "Output file (default: stdout)")
	flags.IntVarP(&sampleSize, "sample-size", "s", DEFAULT_SAMPLE_SIZE, "Number of reads sampled by infer_experiment.py (its -s option)")
	flags.IntVarP(&threads, "threads", "j", DEFAULT_THREADS, "Number of reports processed concurrently")
	flags.Float64VarP(&pval, "pval", "p", DEFAULT_PVAL_THRESHOLD, "Binomial p-value for rejecting the hypothesis of an unstranded library")

	return cmd
}
