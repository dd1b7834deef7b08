package main

import "errors"

var (
	// ErrInvalidConfiguration is returned for a p-value threshold outside (0,1)
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidObservation is returned for sample sizes, fractions or counts
	// outside the domain of the binomial test
	ErrInvalidObservation = errors.New("invalid observation")
	// ErrMalformedReport is returned when an infer_experiment report cannot be parsed
	ErrMalformedReport = errors.New("malformed infer_experiment report")
)
