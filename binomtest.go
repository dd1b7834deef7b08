// Exact two-sided binomial test

package main

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Relative tolerance used when comparing probability masses against the
// mass of the observed count (same value as R and SciPy)
const BINOM_RELATIVE_ERROR = 1e-7

// BinomTest returns the two-sided p-value of observing k successes in n trials
// with success probability p. Outcomes whose probability mass is not larger
// than that of k (up to BINOM_RELATIVE_ERROR) are counted as at least as
// extreme, so the test is exact for any p, not only for the symmetric case.
//
// Both tails are evaluated through the binomial CDF (regularized incomplete
// beta), and the start of the opposite tail is found by binary search over the
// log mass function, which keeps the cost logarithmic in n. Tail probabilities
// below the float64 range are reported as 0.
//
// n == 0 carries no evidence and returns 1
func BinomTest(k, n int, p float64) (float64, error) {
	if n < 0 || k < 0 || k > n {
		return 0, fmt.Errorf("%w: binomial test with %d successes in %d trials", ErrInvalidObservation, k, n)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: binomial success probability %v outside [0,1]", ErrInvalidObservation, p)
	}
	if n == 0 {
		return 1, nil
	}

	kf, nf := float64(k), float64(n)
	mean := p * nf

	// Degenerate null: every outcome but n*p has zero mass
	if p == 0 || p == 1 {
		if kf == mean {
			return 1, nil
		}
		return 0, nil
	}
	if kf == mean {
		return 1, nil
	}

	dist := distuv.Binomial{N: nf, P: p}
	// n-X, used to get the upper tail without the cancellation of 1-CDF
	flip := distuv.Binomial{N: nf, P: 1 - p}

	limit := dist.LogProb(kf) + math.Log1p(BINOM_RELATIVE_ERROR)

	var pval float64
	if kf < mean {
		// Mass is non-increasing on [ceil(mean), n]; find the first outcome
		// there that is not more likely than k
		lo := int(math.Ceil(mean))
		j := lo + sort.Search(n-lo+1, func(i int) bool {
			return dist.LogProb(float64(lo+i)) <= limit
		})
		pval = dist.CDF(kf)
		if j <= n {
			pval += flip.CDF(float64(n - j))
		}
	} else {
		// Mass is non-decreasing on [0, floor(mean)]; count the outcomes
		// there that are not more likely than k
		hi := int(math.Floor(mean))
		c := sort.Search(hi+1, func(i int) bool {
			return dist.LogProb(float64(i)) > limit
		})
		if c > 0 {
			pval = dist.CDF(float64(c - 1))
		}
		pval += flip.CDF(float64(n - k))
	}

	return math.Min(1, pval), nil
}
