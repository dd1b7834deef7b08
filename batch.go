// Strandedness decisions for many infer_experiment reports at once

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/shenwei356/natsort"
	"github.com/shenwei356/util/pathutil"
	"golang.org/x/sync/errgroup"
)

// Suffixes removed from report file names to get sample names
var reportSuffixes = []string{".gz", ".xz", ".zst", ".bz2", ".txt", ".infer_experiment"}

// sampleName derives a sample name from a report path,
// e.g. "out/s1.infer_experiment.txt.gz" -> "s1"
func sampleName(file string) string {
	name := filepath.Base(file)
	for _, suffix := range reportSuffixes {
		if trimmed := strings.TrimSuffix(name, suffix); trimmed != "" {
			name = trimmed
		}
	}
	return name
}

// checkReports makes sure every report exists and maps to a distinct sample
func checkReports(files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("no report files given")
	}
	seen := make(map[string]string, len(files))
	for _, file := range files {
		if file == "-" {
			return fmt.Errorf("stdin is not supported in batch mode")
		}
		ok, err := pathutil.Exists(file)
		if err != nil {
			return fmt.Errorf("error checking report %s: %v", file, err)
		}
		if !ok {
			return fmt.Errorf("report %s does not exist", file)
		}
		name := sampleName(file)
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("reports %s and %s have the same sample name %q", prev, file, name)
		}
		seen[name] = file
	}
	return nil
}

// decideReports parses and decides every report using up to threads goroutines.
// Results are returned in natural order of sample names. The first failure
// stops the remaining work and is returned
func decideReports(ctx context.Context, logger *slog.Logger, files []string, sampleSize, threads int, cfg DecisionConfig) ([]SampleDecision, error) {
	if err := checkReports(files); err != nil {
		return nil, err
	}
	if threads < 1 {
		threads = 1
	}

	results := make([]SampleDecision, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sample := sampleName(file)

			obs, err := readReport(file)
			if err != nil {
				return err
			}
			obs.SampleSize = sampleSize
			logObservation(logger, sample, obs)

			d, err := DecideObservation(obs, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			logDecision(logger, sample, d)

			results[i] = SampleDecision{Sample: sample, StrandDecision: d}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return natsort.Compare(results[i].Sample, results[j].Sample, false)
	})
	return results, nil
}

// Consensus summarizes the decisions of a batch of libraries
// that are expected to share one protocol
type Consensus struct {
	Strand          StrandOption
	Agreeing        int
	Total           int
	MedianFractionA float64
	MedianFractionB float64
	Discordant      []string
}

// consensus picks the most frequent strand option. Ties go to the lower
// option code, so an even split with unstranded samples stays unstranded
func consensus(decisions []SampleDecision) (Consensus, error) {
	if len(decisions) == 0 {
		return Consensus{}, fmt.Errorf("no decisions to summarize")
	}

	var counts [3]int
	fracA := make([]float64, 0, len(decisions))
	fracB := make([]float64, 0, len(decisions))
	for _, d := range decisions {
		counts[d.Strand]++
		fracA = append(fracA, d.FractionA)
		fracB = append(fracB, d.FractionB)
	}

	best := Unstranded
	for s := ForwardStranded; s <= ReverseStranded; s++ {
		if counts[s] > counts[best] {
			best = s
		}
	}

	medA, err := stats.Median(fracA)
	if err != nil {
		return Consensus{}, err
	}
	medB, err := stats.Median(fracB)
	if err != nil {
		return Consensus{}, err
	}

	c := Consensus{
		Strand:          best,
		Agreeing:        counts[best],
		Total:           len(decisions),
		MedianFractionA: medA,
		MedianFractionB: medB,
	}
	for _, d := range decisions {
		if d.Strand != best {
			c.Discordant = append(c.Discordant, d.Sample)
		}
	}
	return c, nil
}

func logConsensus(logger *slog.Logger, c Consensus) {
	logger.Info("batch.consensus",
		"strand", c.Strand.String(),
		"strand_option", int(c.Strand),
		"agreeing", c.Agreeing,
		"total", c.Total,
		"median_fraction_a", c.MedianFractionA,
		"median_fraction_b", c.MedianFractionB,
	)
	if len(c.Discordant) > 0 {
		logger.Warn("batch.discordant",
			"consensus", c.Strand.String(),
			"samples", strings.Join(c.Discordant, ","),
		)
	}
}
