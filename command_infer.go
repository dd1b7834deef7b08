// Subcommands (`strandinfer infer`, `strandinfer report`) deciding a single library

package main

import (
	"fmt"

	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
)

// InferCommand creates the `infer` subcommand, which decides strandedness
// from fractions given on the command line
func InferCommand(logOpts *LogOptions) *cobra.Command {
	var (
		outFile     string
		sample      string
		layoutName  string
		sampleSize  int
		pval        float64
		sp1         float64
		sp2         float64
		unexplained float64
	)

	cmd := &cobra.Command{
		Use:   "infer",
		Short: "Decide strandedness from explicit orientation fractions",
		Long: `Decide the strand protocol from the two "explained by" fractions and the
"failed to determine" fraction reported by RSeQC infer_experiment.py. When
--other is omitted it is derived as 1 - sp1 - sp2.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := parseLayout(layoutName)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("other") {
				unexplained = 1 - sp1 - sp2
			}

			obs := Observation{
				SampleSize:  sampleSize,
				Layout:      layout,
				ExplainedA:  sp1,
				ExplainedB:  sp2,
				Unexplained: unexplained,
			}
			cfg := DefaultDecisionConfig()
			cfg.PValueThreshold = pval

			return runDecision(cmd, *logOpts, sample, obs, cfg, outFile)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&sp1, "sp1", 0, `Fraction explained by "1++,1--,2+-,2-+" (paired-end) or "++,--" (single-end)`)
	flags.Float64Var(&sp2, "sp2", 0, `Fraction explained by "1+-,1-+,2++,2--" (paired-end) or "+-,-+" (single-end)`)
	flags.Float64Var(&unexplained, "other", 0, "Fraction of reads failed to determine")
	flags.IntVarP(&sampleSize, "sample-size", "s", DEFAULT_SAMPLE_SIZE, "Number of reads sampled from the alignment")
	flags.Float64VarP(&pval, "pval", "p", DEFAULT_PVAL_THRESHOLD, "Binomial p-value for rejecting the hypothesis of an unstranded library")
	flags.StringVarP(&outFile, "out", "o", "-", "Output file (default: stdout)")
	flags.StringVarP(&layoutName, "layout", "l", "", "Read layout (pe, se); only used in log events")
	flags.StringVar(&sample, "sample", "", "Sample name used in log events")

	cmd.MarkFlagRequired("sp1")
	cmd.MarkFlagRequired("sp2")

	return cmd
}

// ReportCommand creates the `report` subcommand, which decides strandedness
// from the text report of RSeQC infer_experiment.py
func ReportCommand(logOpts *LogOptions) *cobra.Command {
	var (
		inFile     string
		outFile    string
		sampleSize int
		pval       float64
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Decide strandedness from an infer_experiment.py report",
		RunE: func(cmd *cobra.Command, args []string) error {
			obs, err := readReport(inFile)
			if err != nil {
				return err
			}
			obs.SampleSize = sampleSize

			cfg := DefaultDecisionConfig()
			cfg.PValueThreshold = pval

			sample := ""
			if inFile != "-" {
				sample = sampleName(inFile)
			}
			return runDecision(cmd, *logOpts, sample, obs, cfg, outFile)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inFile, "in", "i", "-", "Input infer_experiment.py report (default: stdin)")
	flags.StringVarP(&outFile, "out", "o", "-", "Output file (default: stdout)")
	flags.IntVarP(&sampleSize, "sample-size", "s", DEFAULT_SAMPLE_SIZE, "Number of reads sampled by infer_experiment.py (its -s option)")
	flags.Float64VarP(&pval, "pval", "p", DEFAULT_PVAL_THRESHOLD, "Binomial p-value for rejecting the hypothesis of an unstranded library")

	return cmd
}

// runDecision decides one observation and writes its record.
// Nothing is written when the decision fails
func runDecision(cmd *cobra.Command, logOpts LogOptions, sample string, obs Observation, cfg DecisionConfig, outFile string) error {
	logger, cleanup, err := newLogger(cmd.ErrOrStderr(), logOpts)
	if err != nil {
		return fmt.Errorf("error opening log file: %v", err)
	}
	defer cleanup()

	logObservation(logger, sample, obs)
	d, err := DecideObservation(obs, cfg)
	if err != nil {
		return err
	}
	logDecision(logger, sample, d)

	outfh, err := xopen.Wopen(outFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	if err := writeDecision(outfh, d); err != nil {
		outfh.Close()
		return fmt.Errorf("error writing output: %v", err)
	}
	if err := outfh.Close(); err != nil {
		return fmt.Errorf("error closing output file: %v", err)
	}
	return nil
}
