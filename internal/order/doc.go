// Package order implements the in-place selection and dual-array sort cores
// used by the statkit ranking and quantile layers.
//
// This is an internal package - external users should use the statkit root
// package, which wraps these routines with argument validation and the
// NaN-sentinel contract.
package order
