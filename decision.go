// Strandedness decision: binomial test of the two orientation classes against an unstranded protocol

package main

import (
	"fmt"
	"math"
)

const (
	DEFAULT_PVAL_THRESHOLD = 1e-5
	DEFAULT_SAMPLE_SIZE    = 200000
	// Sample sizes below this give an unreliable estimate
	MIN_RECOMMENDED_SAMPLE_SIZE = 1000
	// Unstranded libraries produce both orientation classes equally often
	UNSTRANDED_PROBABILITY = 0.5
)

// StrandOption is the library protocol, encoded as the featureCounts -s value
type StrandOption int

const (
	Unstranded StrandOption = iota
	ForwardStranded
	ReverseStranded
)

func (s StrandOption) String() string {
	switch s {
	case Unstranded:
		return "unstranded"
	case ForwardStranded:
		return "forward"
	case ReverseStranded:
		return "reverse"
	default:
		return fmt.Sprintf("StrandOption(%d)", int(s))
	}
}

// DecisionConfig holds the parameters of the strandedness test
type DecisionConfig struct {
	PValueThreshold float64
	// Success probability under the null hypothesis; zero means UNSTRANDED_PROBABILITY
	NullProbability float64
}

// DefaultDecisionConfig returns the configuration used by the command line
func DefaultDecisionConfig() DecisionConfig {
	return DecisionConfig{
		PValueThreshold: DEFAULT_PVAL_THRESHOLD,
		NullProbability: UNSTRANDED_PROBABILITY,
	}
}

// Validate checks that the threshold lies strictly between 0 and 1
func (c DecisionConfig) Validate() error {
	if math.IsNaN(c.PValueThreshold) || c.PValueThreshold <= 0 || c.PValueThreshold >= 1 {
		return fmt.Errorf("%w: p-value threshold must be in (0,1), got %v", ErrInvalidConfiguration, c.PValueThreshold)
	}
	if c.NullProbability != 0 && (math.IsNaN(c.NullProbability) || c.NullProbability < 0 || c.NullProbability > 1) {
		return fmt.Errorf("%w: null probability must be in [0,1], got %v", ErrInvalidConfiguration, c.NullProbability)
	}
	return nil
}

func (c DecisionConfig) nullProbability() float64 {
	if c.NullProbability == 0 {
		return UNSTRANDED_PROBABILITY
	}
	return c.NullProbability
}

// StrandDecision is the outcome of one strandedness test
type StrandDecision struct {
	Layout          Layout
	FractionA       float64
	FractionB       float64
	TotalSampled    int
	TotalAssigned   int
	CountA          int
	CountB          int
	PValueThreshold float64
	PValue          float64
	Strand          StrandOption
}

// Decide tests whether the two orientation classes are balanced.
//
// Per-class read counts are obtained by truncating totalSampled*fraction, so
// the evidence is never overstated. Reads of neither class do not take part in
// the test. When the null hypothesis is rejected, the class with more reads
// picks the direction: B wins only when strictly larger
func Decide(totalSampled int, fracA, fracB float64, cfg DecisionConfig) (StrandDecision, error) {
	if err := cfg.Validate(); err != nil {
		return StrandDecision{}, err
	}
	if totalSampled < 0 {
		return StrandDecision{}, fmt.Errorf("%w: negative sample size %d", ErrInvalidObservation, totalSampled)
	}
	for _, f := range [...]float64{fracA, fracB} {
		if math.IsNaN(f) || f < 0 || f > 1 {
			return StrandDecision{}, fmt.Errorf("%w: class fraction %v outside [0,1]", ErrInvalidObservation, f)
		}
	}

	countA := int(float64(totalSampled) * fracA)
	countB := int(float64(totalSampled) * fracB)
	assigned := countA + countB

	pval, err := BinomTest(countA, assigned, cfg.nullProbability())
	if err != nil {
		return StrandDecision{}, err
	}

	strand := Unstranded
	if pval < cfg.PValueThreshold {
		if countB > countA {
			// dUTP and similar protocols, featureCounts -s 2
			strand = ReverseStranded
		} else {
			strand = ForwardStranded
		}
	}

	return StrandDecision{
		FractionA:       fracA,
		FractionB:       fracB,
		TotalSampled:    totalSampled,
		TotalAssigned:   assigned,
		CountA:          countA,
		CountB:          countB,
		PValueThreshold: cfg.PValueThreshold,
		PValue:          pval,
		Strand:          strand,
	}, nil
}

// DecideObservation normalizes the observation and runs Decide on it
func DecideObservation(obs Observation, cfg DecisionConfig) (StrandDecision, error) {
	obs = obs.Normalized()
	d, err := Decide(obs.SampleSize, obs.ExplainedA, obs.ExplainedB, cfg)
	if err != nil {
		return StrandDecision{}, err
	}
	d.Layout = obs.Layout
	return d, nil
}
