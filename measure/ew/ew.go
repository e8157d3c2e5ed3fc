// Package ew measures equivalent widths of absorption lines by simple
// boxcar integration over a wavelength window.
//
// The equivalent width is the integrated fractional flux deficit across
// the window:
//
//	EW    = sum(dwv * (1 - fx))
//	varEW = sum(dwv^2 * sig^2)
//
// where dwv is the per-pixel bin width and fx the continuum-normalized
// flux. BoxEW works in the observer frame; RestEW divides the result by
// (1+z) to move it to the rest frame.
package ew

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectro/line"
	"github.com/cwbudde/algo-spectro/unit"
)

// ErrWindowTooNarrow is returned when the wavelength window covers fewer
// than two pixels, leaving the bin widths undefined.
var ErrWindowTooNarrow = errors.New("ew: window must cover at least two pixels")

// Frame tags which reference frame a result is expressed in.
type Frame int

const (
	Observer Frame = iota
	Rest
)

// String returns the frame name.
func (f Frame) String() string {
	if f == Rest {
		return "rest"
	}

	return "observer"
}

// Result holds an equivalent-width measurement.
type Result struct {
	EW    unit.Quantity // equivalent width, Angstrom
	EWSig unit.Quantity // 1-sigma uncertainty, Angstrom
	Frame Frame
}

// BoxEW integrates the equivalent width over the line's wavelength window
// in the observer frame. The spectrum cut is continuum-normalized when a
// continuum is attached. The result is returned and also written into the
// line's EW attributes.
func BoxEW(l *line.Line) (Result, error) {
	fx, sig, wave, err := l.CutSpec(true)
	if err != nil {
		return Result{}, err
	}

	if len(wave) < 2 {
		return Result{}, ErrWindowTooNarrow
	}

	dwv := binWidths(wave)

	// sum(dwv*(1-fx)) rewritten as sum(dwv) - dot(dwv, fx).
	ewVal := vecmath.Sum(dwv) - vecmath.DotProduct(dwv, fx)

	weighted := make([]float64, len(dwv))
	vecmath.MulBlock(weighted, dwv, sig)

	sigVal := math.Sqrt(vecmath.DotProduct(weighted, weighted))

	res := Result{
		EW:    unit.Angstroms(ewVal),
		EWSig: unit.Angstroms(sigVal),
		Frame: Observer,
	}

	l.Attrib.EW = res.EW
	l.Attrib.EWSig = res.EWSig

	return res, nil
}

// RestEW measures the equivalent width and converts it to the rest frame
// by dividing by (1+z). The line's stored EW attributes are rest-frame
// after this call, not observer-frame.
func RestEW(l *line.Line) (Result, error) {
	res, err := BoxEW(l)
	if err != nil {
		return Result{}, err
	}

	res.EW = unit.Angstroms(res.EW.Value / (1 + l.Attrib.Z))
	res.EWSig = unit.Angstroms(res.EWSig.Value / (1 + l.Attrib.Z))
	res.Frame = Rest

	l.Attrib.EW = res.EW
	l.Attrib.EWSig = res.EWSig

	return res, nil
}

// binWidths returns per-pixel bin widths dwv[i] = w[i] - w[i-1]. The
// first bin has no predecessor and takes the width of the second.
func binWidths(w []float64) []float64 {
	dwv := make([]float64, len(w))
	for i := 1; i < len(w); i++ {
		dwv[i] = w[i] - w[i-1]
	}

	dwv[0] = dwv[1]

	return dwv
}
