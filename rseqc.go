// Parser for the text report of RSeQC infer_experiment.py
//
// Example report:
//   This is PairEnd Data
//   Fraction of reads failed to determine: 0.0172
//   Fraction of reads explained by "1++,1--,2+-,2-+": 0.4903
//   Fraction of reads explained by "1+-,1-+,2++,2--": 0.4925

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shenwei356/xopen"
)

const (
	reportUnexplainedPrefix = "Fraction of reads failed to determine:"
	reportExplainedPrefix   = "Fraction of reads explained by"
)

// parseReport reads the orientation fractions from an infer_experiment.py report.
// The sample size is not part of the report and is left at zero
func parseReport(r io.Reader) (Observation, error) {
	var (
		obs                        Observation
		hasA, hasB, hasUnexplained bool
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "This is PairEnd Data":
			obs.Layout = PairedEnd
		case line == "This is SingleEnd Data":
			obs.Layout = SingleEnd
		case strings.HasPrefix(line, "Unknown Data type"):
			return obs, fmt.Errorf("%w: infer_experiment.py could not determine the data type", ErrMalformedReport)

		case strings.HasPrefix(line, reportUnexplainedPrefix):
			v, err := parseReportValue(line[len(reportUnexplainedPrefix):], lineNo)
			if err != nil {
				return obs, err
			}
			obs.Unexplained = v
			hasUnexplained = true

		case strings.HasPrefix(line, reportExplainedPrefix):
			rest := line[len(reportExplainedPrefix):]
			label, value, err := splitExplainedLine(rest, lineNo)
			if err != nil {
				return obs, err
			}
			v, err := parseReportValue(value, lineNo)
			if err != nil {
				return obs, err
			}

			layout, isA, ok := classifyLabel(label)
			if !ok {
				return obs, fmt.Errorf("%w: unknown orientation class %q (line %d)", ErrMalformedReport, label, lineNo)
			}
			if obs.Layout == UnknownLayout {
				obs.Layout = layout
			} else if obs.Layout != layout {
				return obs, fmt.Errorf("%w: orientation class %q does not match %s data (line %d)", ErrMalformedReport, label, obs.Layout, lineNo)
			}
			if isA {
				obs.ExplainedA = v
				hasA = true
			} else {
				obs.ExplainedB = v
				hasB = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return obs, fmt.Errorf("error reading report: %v", err)
	}

	if !hasA || !hasB {
		return obs, fmt.Errorf("%w: missing \"explained by\" fractions", ErrMalformedReport)
	}
	if !hasUnexplained {
		// Older RSeQC versions omit the line when every read is explained
		obs.Unexplained = 1 - obs.ExplainedA - obs.ExplainedB
	}
	return obs, nil
}

// splitExplainedLine splits ` "1++,1--,2+-,2-+": 0.4903` into label and value
func splitExplainedLine(rest string, lineNo int) (string, string, error) {
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, `"`) {
		return "", "", fmt.Errorf("%w: expected quoted orientation class (line %d)", ErrMalformedReport, lineNo)
	}
	end := strings.Index(rest[1:], `"`)
	if end < 0 {
		return "", "", fmt.Errorf("%w: unterminated orientation class (line %d)", ErrMalformedReport, lineNo)
	}
	label := rest[1 : end+1]
	value := strings.TrimSpace(rest[end+2:])
	value = strings.TrimPrefix(value, ":")
	return label, value, nil
}

func parseReportValue(s string, lineNo int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid fraction %q (line %d)", ErrMalformedReport, strings.TrimSpace(s), lineNo)
	}
	return v, nil
}

// classifyLabel maps an orientation class label to its layout and class
func classifyLabel(label string) (layout Layout, isA bool, ok bool) {
	for _, l := range []Layout{PairedEnd, SingleEnd} {
		a, b := l.Classes()
		switch label {
		case a:
			return l, true, true
		case b:
			return l, false, true
		}
	}
	return UnknownLayout, false, false
}

// readReport parses a report file (plain or compressed, "-" for stdin)
func readReport(file string) (Observation, error) {
	fh, err := xopen.Ropen(file)
	if err != nil {
		return Observation{}, fmt.Errorf("error opening report %s: %v", file, err)
	}
	defer fh.Close()

	obs, err := parseReport(fh)
	if err != nil {
		return obs, fmt.Errorf("%s: %w", file, err)
	}
	return obs, nil
}
