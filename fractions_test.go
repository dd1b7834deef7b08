package main

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		a, b, other  float64
		wantResidual float64
	}{
		{"Positive residual", 0.005, 0.93, 0.065, 0.065},
		{"Zero residual", 0.5, 0.5, 0, 0},
		{"Negative residual", 0.45, 0.53, -0.02, 0},
		{"Tiny negative residual", 0.4999, 0.5001, -1e-12, 0},
		{"Class fractions outside range are kept", 1.02, -0.01, -0.01, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, residual := Normalize(tt.a, tt.b, tt.other)

			if math.Float64bits(a) != math.Float64bits(tt.a) || math.Float64bits(b) != math.Float64bits(tt.b) {
				t.Errorf("Normalize() changed class fractions: got (%v, %v), want (%v, %v)", a, b, tt.a, tt.b)
			}
			if residual < 0 {
				t.Errorf("Normalize() residual = %v, must not be negative", residual)
			}
			if residual != tt.wantResidual {
				t.Errorf("Normalize() residual = %v, want %v", residual, tt.wantResidual)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	a1, b1, r1 := Normalize(0.45, 0.53, -0.02)
	a2, b2, r2 := Normalize(a1, b1, r1)
	if a1 != a2 || b1 != b2 || r1 != r2 {
		t.Errorf("Normalize() is not idempotent: (%v,%v,%v) then (%v,%v,%v)", a1, b1, r1, a2, b2, r2)
	}
}

func TestObservationNormalized(t *testing.T) {
	obs := Observation{SampleSize: 200000, Layout: PairedEnd, ExplainedA: 0.45, ExplainedB: 0.53, Unexplained: -0.02}
	got := obs.Normalized()

	want := Observation{SampleSize: 200000, Layout: PairedEnd, ExplainedA: 0.45, ExplainedB: 0.53, Unexplained: 0}
	if got != want {
		t.Errorf("Normalized() = %+v, want %+v", got, want)
	}
	// The receiver is a value; the original is untouched
	if obs.Unexplained != -0.02 {
		t.Errorf("Normalized() modified its receiver: %+v", obs)
	}
}
