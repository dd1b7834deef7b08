package main

import (
	"fmt"
	"strings"
)

// Layout is the read layout of the sequencing library
type Layout int

const (
	UnknownLayout Layout = iota
	PairedEnd
	SingleEnd
)

// Orientation class labels as printed by RSeQC infer_experiment.py
var layoutClasses = map[Layout][2]string{
	PairedEnd:     {"1++,1--,2+-,2-+", "1+-,1-+,2++,2--"},
	SingleEnd:     {"++,--", "+-,-+"},
	UnknownLayout: {"sense", "antisense"},
}

func (l Layout) String() string {
	switch l {
	case PairedEnd:
		return "PairEnd"
	case SingleEnd:
		return "SingleEnd"
	default:
		return "Unknown"
	}
}

// Classes returns the labels of the two orientation classes for the layout
func (l Layout) Classes() (string, string) {
	c, ok := layoutClasses[l]
	if !ok {
		c = layoutClasses[UnknownLayout]
	}
	return c[0], c[1]
}

// parseLayout converts a user-supplied layout name into a Layout
func parseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pe", "paired", "pairend", "pairedend", "paired-end":
		return PairedEnd, nil
	case "se", "single", "singleend", "single-end":
		return SingleEnd, nil
	case "", "unknown":
		return UnknownLayout, nil
	default:
		return UnknownLayout, fmt.Errorf("invalid layout: %s (use 'pe' or 'se')", name)
	}
}
