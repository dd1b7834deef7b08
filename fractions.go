// Orientation fractions reported by the alignment sampler and their normalization

package main

// Observation holds the orientation fractions measured on a sample of reads.
// ExplainedA is the fraction explained by the sense orientation class
// ("1++,1--,2+-,2-+" or "++,--"), ExplainedB by the antisense class
// ("1+-,1-+,2++,2--" or "+-,-+"). Unexplained may be slightly negative when the
// upstream sampler rounds
type Observation struct {
	SampleSize  int
	Layout      Layout
	ExplainedA  float64
	ExplainedB  float64
	Unexplained float64
}

// Normalize clamps a negative unexplained residual to zero.
// The two class fractions are returned untouched, even when they fall outside [0,1]
func Normalize(fracA, fracB, unexplained float64) (float64, float64, float64) {
	if unexplained < 0 {
		unexplained = 0
	}
	return fracA, fracB, unexplained
}

// Normalized returns a copy of the observation with its residual normalized
func (o Observation) Normalized() Observation {
	o.ExplainedA, o.ExplainedB, o.Unexplained = Normalize(o.ExplainedA, o.ExplainedB, o.Unexplained)
	return o
}
