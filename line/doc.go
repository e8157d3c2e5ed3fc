// Package line provides the record type for a single spectral line: its
// atomic data, analysis configuration, and measured attributes.
//
// A Line is created from a transition reference (a canonical name or a
// rest wavelength) which is resolved against an atomic line list at
// construction. Only absorption lines are supported; the emission variant
// is declared but rejected until implemented.
//
// Measurement calculators (measure/ew, measure/aodm) read the bound
// spectrum through the analysis configuration and write their results
// into the measured attributes. A Line is a plain value object owned by
// its caller: measuring the same record from multiple goroutines races on
// the attribute fields, while distinct records sharing one spectrum are
// safe because the spectrum is never mutated.
//
// # Usage
//
//	l, err := line.NewAbsorption(line.ByName("CIV 1548"))
//	l.Analysis.Spec = spec
//	l.Analysis.WvLim = [2]float64{6123.0, 6130.5}
//	l.Attrib.Z = 2.956
package line
