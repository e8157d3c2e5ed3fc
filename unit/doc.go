// Package unit provides dimension-tagged scalar quantities for spectral
// measurements.
//
// A Quantity carries a float64 value and a Dim, the integer exponents of
// the length and time base dimensions. Arithmetic between quantities
// combines dimensions; additive operations on mismatched dimensions fail
// with ErrDimensionMismatch instead of silently producing nonsense.
//
// Values use fixed canonical scales per named dimension: wavelengths in
// Angstrom, velocities in km/s, column densities in 1/cm^2. The package
// tracks dimensions, not scale conversions; calibration constants that
// bridge scales (such as the AODM constant) carry the bridge explicitly.
//
// # Usage
//
//	wrest := unit.Angstroms(1215.67)
//	wobs := wrest.Scale(1 + z)
//	_, err := wobs.Add(unit.KmPerS(3)) // ErrDimensionMismatch
package unit
