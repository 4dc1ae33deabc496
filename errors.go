package algocomplex

import "errors"

// Sentinel errors returned by Complex.Err.
var (
	// ErrNaN is returned when a component of a value is NaN.
	ErrNaN = errors.New("algocomplex: NaN component")

	// ErrInf is returned when a component of a value is infinite.
	ErrInf = errors.New("algocomplex: infinite component")
)
