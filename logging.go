package main

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// LogOptions selects where diagnostic events go
type LogOptions struct {
	Debug   bool
	Quiet   bool
	LogFile string
}

// newLogger builds the event sink used by the commands. Events go to stderr as
// text, or are appended as JSON to LogFile when one is given. The returned
// cleanup closes the log file
func newLogger(stderr io.Writer, opts LogOptions) (*slog.Logger, func() error, error) {
	nop := func() error { return nil }

	if opts.Quiet && opts.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nop, nil
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nop, err
		}
		h := slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
					a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
				}
				return a
			},
		})
		return slog.New(h), f.Close, nil
	}

	h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h), nop, nil
}

// logObservation reports problems with the observation before it is decided
func logObservation(logger *slog.Logger, sample string, obs Observation) {
	if obs.Unexplained < 0 {
		logger.Debug("observation.normalized",
			"sample", sample,
			"unexplained", obs.Unexplained,
			"clamped_to", 0.0,
		)
	}
	if obs.SampleSize < MIN_RECOMMENDED_SAMPLE_SIZE {
		logger.Warn("sample_size.small",
			"sample", sample,
			"sample_size", obs.SampleSize,
			"recommended", MIN_RECOMMENDED_SAMPLE_SIZE,
		)
	}
}

func logDecision(logger *slog.Logger, sample string, d StrandDecision) {
	classA, classB := d.Layout.Classes()
	logger.Info("decision",
		"sample", sample,
		"layout", d.Layout.String(),
		"class_a", classA,
		"class_b", classB,
		"fraction_a", d.FractionA,
		"fraction_b", d.FractionB,
		"total_sampled", d.TotalSampled,
		"total_assigned", d.TotalAssigned,
		"n1", d.CountA,
		"n2", d.CountB,
		"pval_threshold", d.PValueThreshold,
		"pval", d.PValue,
		"strand", d.Strand.String(),
		"strand_option", int(d.Strand),
	)
}
