// Summary record written for downstream quantification

package main

import (
	"fmt"
	"io"
)

const RECORD_HEADER = "sp1_fraction,sp2_fraction,total_sampled,total_assigned,n1,n2,pval_threshold,pval,strand_option"

// Record formats the decision as one comma-delimited line (no trailing newline)
func (d StrandDecision) Record() string {
	return fmt.Sprintf("%.4f,%.4f,%d,%d,%d,%d,%.4E,%.4E,%d",
		d.FractionA,
		d.FractionB,
		d.TotalSampled,
		d.TotalAssigned,
		d.CountA,
		d.CountB,
		d.PValueThreshold,
		d.PValue,
		int(d.Strand),
	)
}

// writeDecision writes the header and the record of a single decision
func writeDecision(w io.Writer, d StrandDecision) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", RECORD_HEADER, d.Record())
	return err
}

// SampleDecision is a decision tagged with the sample it was made for
type SampleDecision struct {
	Sample string
	StrandDecision
}

// writeSampleDecisions writes one record per sample, prefixed by a sample column
func writeSampleDecisions(w io.Writer, decisions []SampleDecision) error {
	if _, err := fmt.Fprintf(w, "sample,%s\n", RECORD_HEADER); err != nil {
		return err
	}
	for _, d := range decisions {
		if _, err := fmt.Fprintf(w, "%s,%s\n", d.Sample, d.Record()); err != nil {
			return err
		}
	}
	return nil
}
