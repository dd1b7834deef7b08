package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const pairedEndReport = `

This is PairEnd Data
Fraction of reads failed to determine: 0.0172
Fraction of reads explained by "1++,1--,2+-,2-+": 0.4903
Fraction of reads explained by "1+-,1-+,2++,2--": 0.4925
`

const singleEndReport = `

This is SingleEnd Data
Fraction of reads failed to determine: 0.0170
Fraction of reads explained by "++,--": 0.9669
Fraction of reads explained by "+-,-+": 0.0161
`

func TestParseReport(t *testing.T) {
	tests := []struct {
		name   string
		report string
		want   Observation
	}{
		{
			name:   "Paired-end report",
			report: pairedEndReport,
			want:   Observation{Layout: PairedEnd, ExplainedA: 0.4903, ExplainedB: 0.4925, Unexplained: 0.0172},
		},
		{
			name:   "Single-end report",
			report: singleEndReport,
			want:   Observation{Layout: SingleEnd, ExplainedA: 0.9669, ExplainedB: 0.0161, Unexplained: 0.0170},
		},
		{
			name: "Negative residual is kept for the normalizer",
			report: `This is PairEnd Data
Fraction of reads failed to determine: -0.0020
Fraction of reads explained by "1++,1--,2+-,2-+": 0.0052
Fraction of reads explained by "1+-,1-+,2++,2--": 0.9968
`,
			want: Observation{Layout: PairedEnd, ExplainedA: 0.0052, ExplainedB: 0.9968, Unexplained: -0.0020},
		},
		{
			name: "Class order swapped and no layout line",
			report: `Fraction of reads explained by "+-,-+": 0.9201
Fraction of reads explained by "++,--": 0.0052
Fraction of reads failed to determine: 0.0747
`,
			want: Observation{Layout: SingleEnd, ExplainedA: 0.0052, ExplainedB: 0.9201, Unexplained: 0.0747},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseReport(strings.NewReader(tt.report))
			if err != nil {
				t.Fatalf("parseReport() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseReport() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseReportMissingResidual(t *testing.T) {
	report := `This is SingleEnd Data
Fraction of reads explained by "++,--": 0.25
Fraction of reads explained by "+-,-+": 0.5
`
	got, err := parseReport(strings.NewReader(report))
	if err != nil {
		t.Fatalf("parseReport() error = %v", err)
	}
	if got.Unexplained != 0.25 {
		t.Errorf("parseReport() Unexplained = %v, want 0.25", got.Unexplained)
	}
}

func TestParseReportErrors(t *testing.T) {
	tests := []struct {
		name   string
		report string
	}{
		{"Empty report", ""},
		{"Unknown data type", "\n\nUnknown Data type\n"},
		{
			"Missing class",
			"This is PairEnd Data\nFraction of reads failed to determine: 0.0172\nFraction of reads explained by \"1++,1--,2+-,2-+\": 0.4903\n",
		},
		{
			"Invalid fraction",
			"This is SingleEnd Data\nFraction of reads explained by \"++,--\": abc\nFraction of reads explained by \"+-,-+\": 0.1\n",
		},
		{
			"Invalid residual",
			"This is SingleEnd Data\nFraction of reads failed to determine: n/a\n",
		},
		{
			"Unknown class label",
			"Fraction of reads explained by \"+++\": 0.5\n",
		},
		{
			"Unquoted class label",
			"Fraction of reads explained by ++,--: 0.5\n",
		},
		{
			"Layout mismatch",
			"This is PairEnd Data\nFraction of reads explained by \"++,--\": 0.9\nFraction of reads explained by \"+-,-+\": 0.1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseReport(strings.NewReader(tt.report))
			if !errors.Is(err, ErrMalformedReport) {
				t.Errorf("parseReport() error = %v, want ErrMalformedReport", err)
			}
		})
	}
}

func TestReadReport(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "s1.infer_experiment.txt")
	if err := os.WriteFile(file, []byte(pairedEndReport), 0o644); err != nil {
		t.Fatal(err)
	}

	obs, err := readReport(file)
	if err != nil {
		t.Fatalf("readReport() error = %v", err)
	}
	if obs.Layout != PairedEnd || obs.ExplainedA != 0.4903 || obs.ExplainedB != 0.4925 {
		t.Errorf("readReport() = %+v", obs)
	}

	_, err = readReport(filepath.Join(dir, "missing.txt"))
	if err == nil {
		t.Errorf("readReport() of a missing file returned no error")
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		input      string
		want       Layout
		wantString string
		wantErr    bool
	}{
		{"pe", PairedEnd, "PairEnd", false},
		{"Paired-End", PairedEnd, "PairEnd", false},
		{"se", SingleEnd, "SingleEnd", false},
		{"", UnknownLayout, "Unknown", false},
		{"mate", UnknownLayout, "Unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLayout(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLayout() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want || got.String() != tt.wantString {
				t.Errorf("parseLayout(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	a, b := PairedEnd.Classes()
	if a != "1++,1--,2+-,2-+" || b != "1+-,1-+,2++,2--" {
		t.Errorf("PairedEnd.Classes() = %q, %q", a, b)
	}
	a, b = SingleEnd.Classes()
	if a != "++,--" || b != "+-,-+" {
		t.Errorf("SingleEnd.Classes() = %q, %q", a, b)
	}
}
