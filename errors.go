package statkit

import "errors"

var (
	// ErrEmptyData is returned by the checked tier when the input slice is
	// empty. The NaN tier signals the same condition by returning NaN.
	ErrEmptyData = errors.New("empty data")

	// ErrOutOfRange is returned by the checked tier when an order, tau, or
	// percentile argument falls outside its documented range.
	ErrOutOfRange = errors.New("argument out of range")
)
