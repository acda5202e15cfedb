// Package testutil provides deterministic data generation and reference
// fixture loading for statkit tests: a seeded RNG wrapper, periodic and
// sinusoidal signal generators with known analytic statistics, NIST-style
// numerical-accuracy sequences, and a plain-text dataset loader.
package testutil
