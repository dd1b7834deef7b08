package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Custom help function used
// It provides nicely formatted help messages for the root command and other subcommands
func helpFunc(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	// Specialized help for subcommands
	switch cmd.Name() {
	case "infer":
		fmt.Fprintf(out, `
%s

%s
  Decide the strand protocol from orientation fractions given on the command
  line. The unexplained fraction defaults to 1 - sp1 - sp2.

%s
  %s
  %s
  %s
  %s
  %s
  %s
  %s

%s
  %s

`,
			bold(getColorizedLogo()+" strandinfer infer - Decides strandedness from explicit fractions"),
			bold(yellow("Description:")),
			bold(yellow("Flags:")),
			cyan("--sp1")+" <float>              : Fraction explained by \"1++,1--,2+-,2-+\" or \"++,--\" (required)",
			cyan("--sp2")+" <float>              : Fraction explained by \"1+-,1-+,2++,2--\" or \"+-,-+\" (required)",
			cyan("--other")+" <float>            : Fraction of reads failed to determine (optional)",
			cyan("-s, --sample-size")+" <int>    : Number of reads sampled (default, 200000)",
			cyan("-p, --pval")+" <float>         : P-value threshold (default, 1e-5)",
			cyan("-o, --out")+" <string>         : Output file (default, '-' for stdout)",
			cyan("-l, --layout")+" <string>      : Read layout for log events (pe, se)",
			bold(yellow("Examples:")),
			cyan("strandinfer infer --sp1 0.0050 --sp2 0.9300 --other 0.0650 -s 200000 -o strand.csv"),
		)
		return
	case "report":
		fmt.Fprintf(out, `
%s

%s
  Parse the text report of RSeQC infer_experiment.py and decide the strand
  protocol. The sample size must match the -s option given to infer_experiment.py.

%s
  %s
  %s
  %s
  %s

%s
  %s

`,
			bold(getColorizedLogo()+" strandinfer report - Decides strandedness from an infer_experiment.py report"),
			bold(yellow("Description:")),
			bold(yellow("Flags:")),
			cyan("-i, --in")+" <string>          : Input report (default, '-' for stdin)",
			cyan("-o, --out")+" <string>         : Output file (default, '-' for stdout)",
			cyan("-s, --sample-size")+" <int>    : Number of reads sampled (default, 200000)",
			cyan("-p, --pval")+" <float>         : P-value threshold (default, 1e-5)",
			bold(yellow("Examples:")),
			cyan("infer_experiment.py -i sample.bam -r genes.bed | strandinfer report -o strand.csv"),
		)
		return
	case "batch":
		fmt.Fprintf(out, `
%s

%s
  Decide the strand protocol for every report given as argument. Records are
  written in natural order of sample names, and the consensus protocol of the
  batch is logged together with any discordant samples.

%s
  %s
  %s
  %s
  %s

%s
  %s

`,
			bold(getColorizedLogo()+" strandinfer batch - Decides strandedness for many reports"),
			bold(yellow("Description:")),
			bold(yellow("Flags:")),
			cyan("-o, --out")+" <string>         : Output file (default, '-' for stdout)",
			cyan("-s, --sample-size")+" <int>    : Number of reads sampled (default, 200000)",
			cyan("-p, --pval")+" <float>         : P-value threshold (default, 1e-5)",
			cyan("-j, --threads")+" <int>        : Reports processed concurrently (default, 4)",
			bold(yellow("Examples:")),
			cyan("strandinfer batch -o strand.csv reports/*.infer_experiment.txt"),
		)
		return
	}

	// Default: root command help
	fmt.Fprintf(out, `
%s

%s
  %s
  %s
  %s

%s
  %s
  %s
  %s
  %s
  %s

%s
  %s
  %s
  %s

%s
  %s

`,
		bold(getColorizedLogo()+" strandinfer v."+VERSION+" - Infers RNA-seq library strandedness"),
		bold(yellow("Strand options (featureCounts -s):")),
		cyan("0")+" : unstranded",
		cyan("1")+" : forward stranded (reads follow the transcript strand)",
		cyan("2")+" : reverse stranded (dUTP and similar protocols)",
		bold(yellow("Global flags:")),
		cyan("--debug")+"                    : Log debug events",
		cyan("-q, --quiet")+"                : Do not log events to stderr",
		cyan("--log-file")+" <string>        : Append JSON events to a file",
		cyan("-h, --help")+"                 : Show help message",
		cyan("-v, --version")+"              : Show version information",
		bold(yellow("Subcommands:")),
		cyan("infer")+"  : Decide strandedness from explicit fractions",
		cyan("report")+" : Decide strandedness from an infer_experiment.py report",
		cyan("batch")+"  : Decide strandedness for many reports",
		bold(yellow("Usage examples:")),
		cyan("strandinfer report -i sample.infer_experiment.txt -s 200000 -o strand.csv"),
	)
}
