// Package aodm estimates column densities of absorption lines with the
// apparent optical depth method.
//
// Each pixel's normalized flux maps to an apparent column density per
// unit velocity:
//
//	N(v) = ln(1/fx) * cst,   cst = 10^14.5761 / (fval * wrest)
//
// integrated over the velocity window to give the total column in 1/cm^2.
// The calibration exponent 14.5761 is the fixed physical constant of the
// AODM formalism (Savage & Sembach), bridging Angstrom, km/s, and cm
// scales; it is not configurable.
//
// Pixels too dark or too noisy for a direct optical-depth estimate are
// classified as saturated. A saturated pixel with usable error is floored
// at max(0.05, sig/5) and contributes a lower-limit estimate; the count
// of such pixels is reported in the Result. A nonzero count means the
// returned column is a lower bound, not a point estimate; consumers
// must inspect it and decide how to surface the distinction. Saturated
// pixels without usable error are masked out entirely.
package aodm

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectro/line"
	"github.com/cwbudde/algo-spectro/unit"
)

// Errors returned by the AODM calculator.
var (
	ErrUndefinedUnit   = errors.New("aodm: column-density unit derivation failed")
	ErrMissingFValue   = errors.New("aodm: transition carries no oscillator strength")
	ErrContinuumLength = errors.New("aodm: continuum override must align with the spectrum")
	ErrWindowTooNarrow = errors.New("aodm: velocity window must cover at least two pixels")
)

// calibrationLog10 is the log10 of the AODM calibration constant.
const calibrationLog10 = 14.5761

// Saturation thresholds: a pixel is saturated when fx <= sig/5 or
// fx < fluxFloor.
const (
	fluxFloor     = 0.05
	sigmaFraction = 5.0
)

// Result holds an AODM column-density measurement.
type Result struct {
	N    unit.Quantity // linear column density, 1/cm^2
	NSig unit.Quantity // 1-sigma uncertainty, 1/cm^2

	// LogN and SigLogN are the log10 column density and its first-order
	// propagated uncertainty. Both are zero when N <= 0.
	LogN    float64
	SigLogN float64

	// Saturated counts the pixels that entered the lower-limit branch.
	// When nonzero, N is a lower bound rather than a point estimate.
	Saturated int
}

// Calculator performs AODM integration over a line's velocity window.
type Calculator struct {
	// Conti optionally overrides continuum normalization. When set, it
	// must be aligned pixel-for-pixel with the full bound spectrum; flux
	// and error are divided by it over the integration range.
	Conti []float64
}

// Measure is a one-shot AODM measurement without a continuum override.
func Measure(l *line.Line) (Result, error) {
	return (&Calculator{}).Measure(l)
}

// Measure integrates the apparent optical depth over the line's velocity
// window, relative to the redshift in the line's attributes. The result
// is returned and also written into the line's column attributes.
func (c *Calculator) Measure(l *line.Line) (Result, error) {
	if l.Type != line.Absorption {
		return Result{}, line.ErrInvalidLineType
	}

	if l.Analysis.VLim == [2]float64{} {
		return Result{}, line.ErrMissingWindow
	}

	spec := l.Analysis.Spec
	if spec == nil {
		return Result{}, line.ErrMissingSpectrum
	}

	cst, err := constant(l)
	if err != nil {
		return Result{}, err
	}

	// Velocity axis over the whole spectrum, relative to the observed
	// line center.
	center := l.Wrest.Scale(1 + l.Attrib.Z)

	velo, err := spec.VelocityRelativeTo(center)
	if err != nil {
		return Result{}, err
	}

	lo, hi, err := spec.VelocityPixRange(l.Attrib.Z, l.Wrest, l.Analysis.VLim[0], l.Analysis.VLim[1])
	if err != nil {
		return Result{}, err
	}

	n := hi - lo
	if n < 2 {
		return Result{}, ErrWindowTooNarrow
	}

	fx := make([]float64, n)
	sig := make([]float64, n)

	copy(fx, spec.Flux[lo:hi])
	copy(sig, spec.Sigma[lo:hi])

	if c.Conti != nil {
		if len(c.Conti) != spec.Len() {
			return Result{}, ErrContinuumLength
		}

		for i := 0; i < n; i++ {
			fx[i] /= c.Conti[lo+i]
			sig[i] /= c.Conti[lo+i]
		}
	}

	delv := binWidths(velo[lo:hi])

	// Per-pixel apparent column rate. mask marks pixels whose flux is
	// trustworthy for the direct estimate and the variance sum.
	nndt := make([]float64, n)
	mask := make([]bool, n)
	saturated := 0

	for i := 0; i < n; i++ {
		if fx[i] <= sig[i]/sigmaFraction || fx[i] < fluxFloor {
			if sig[i] > 0 {
				// Lower-limit branch: floor the flux.
				sub := math.Max(fluxFloor, sig[i]/sigmaFraction)
				nndt[i] = math.Log(1/sub) * cst.Value
				saturated++
			}

			continue
		}

		mask[i] = true
		nndt[i] = math.Log(1/fx[i]) * cst.Value
	}

	ntot := vecmath.DotProduct(nndt, delv)

	var tvar float64

	for i := 0; i < n; i++ {
		if mask[i] {
			term := delv[i] * cst.Value * sig[i] / fx[i]
			tvar += term * term
		}
	}

	nsig := math.Sqrt(tvar)
	logN, sigLogN := LinToLog(ntot, nsig)

	res := Result{
		N:         unit.PerCm2(ntot),
		NSig:      unit.PerCm2(nsig),
		LogN:      logN,
		SigLogN:   sigLogN,
		Saturated: saturated,
	}

	l.Attrib.N = res.N
	l.Attrib.NSig = res.NSig
	l.Attrib.NFlag = saturated
	l.Attrib.LogN = logN
	l.Attrib.SigLogN = sigLogN

	return res, nil
}

// constant derives the AODM conversion constant and its unit. The rest
// wavelength must carry a length dimension and the transition an
// oscillator strength; integrating the constant against a km/s axis must
// land on a column density.
func constant(l *line.Line) (unit.Quantity, error) {
	if !l.Wrest.IsLength() {
		return unit.Quantity{}, ErrUndefinedUnit
	}

	if l.Data.Fval <= 0 {
		return unit.Quantity{}, ErrMissingFValue
	}

	cst := unit.Quantity{
		Value: math.Pow(10, calibrationLog10) / (l.Data.Fval * l.Wrest.Value),
		Dim:   unit.ColumnDensity.Div(unit.Velocity),
	}

	if cst.Dim.Mul(unit.Velocity) != unit.ColumnDensity {
		return unit.Quantity{}, ErrUndefinedUnit
	}

	return cst, nil
}

// LinToLog converts a linear column density and its error to log10 space
// with first-order propagation:
//
//	logN    = log10(N)
//	sigLogN = sigN / (N * ln 10)
//
// Both are zero when N <= 0.
func LinToLog(n, nsig float64) (logN, sigLogN float64) {
	if n <= 0 {
		return 0, 0
	}

	return math.Log10(n), nsig / (n * math.Ln10)
}

// binWidths returns per-pixel bin widths delv[i] = v[i] - v[i-1]. The
// first bin has no predecessor and takes the width of the second.
func binWidths(v []float64) []float64 {
	delv := make([]float64, len(v))
	for i := 1; i < len(v); i++ {
		delv[i] = v[i] - v[i-1]
	}

	delv[0] = delv[1]

	return delv
}
