// Package linelist provides atomic transition data for spectral-line
// analysis: rest wavelengths, oscillator strengths, and damping constants,
// keyed by canonical transition name or by rest wavelength.
//
// The builtin ISM list covers the strong resonance transitions commonly
// measured in quasar absorption spectra. Custom lists can be built with
// FromTransitions.
package linelist

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectro/unit"
)

// Errors returned by list construction and lookup.
var (
	ErrUnknownList       = errors.New("linelist: unknown list name")
	ErrUnknownTransition = errors.New("linelist: transition not found")
	ErrNotLength         = errors.New("linelist: lookup wavelength must carry a length dimension")
)

// WavelengthTolerance is the maximum rest-wavelength offset, in Angstrom,
// accepted when matching a transition by wavelength.
const WavelengthTolerance = 0.01

// Transition holds the atomic data for one transition.
type Transition struct {
	Name  string        // canonical name, e.g. "HI 1215"
	Ion   string        // ion designation, e.g. "CIV"
	Wrest unit.Quantity // rest wavelength
	Fval  float64       // oscillator strength
	Gamma float64       // damping constant in 1/s (0 when unknown)
}

// List is an in-memory transition database.
type List struct {
	name        string
	transitions []Transition
}

// New returns a builtin list by name. "ISM" is the only builtin.
func New(name string) (*List, error) {
	if name != "ISM" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}

	return FromTransitions(name, ismTransitions), nil
}

// FromTransitions builds a list from caller-supplied transitions.
// The slice is copied; later mutation of ts does not affect the list.
func FromTransitions(name string, ts []Transition) *List {
	cp := make([]Transition, len(ts))
	copy(cp, ts)

	return &List{name: name, transitions: cp}
}

// Name returns the list name.
func (l *List) Name() string {
	return l.name
}

// Len returns the number of transitions in the list.
func (l *List) Len() int {
	return len(l.transitions)
}

// Transitions returns a copy of the transition table.
func (l *List) Transitions() []Transition {
	cp := make([]Transition, len(l.transitions))
	copy(cp, l.transitions)

	return cp
}

// LookupName finds a transition by its canonical name.
func (l *List) LookupName(name string) (Transition, error) {
	for _, tr := range l.transitions {
		if tr.Name == name {
			return tr, nil
		}
	}

	return Transition{}, fmt.Errorf("%w: %q", ErrUnknownTransition, name)
}

// LookupWavelength finds the transition whose rest wavelength is nearest
// to w, within WavelengthTolerance.
func (l *List) LookupWavelength(w unit.Quantity) (Transition, error) {
	if !w.IsLength() {
		return Transition{}, ErrNotLength
	}

	best := -1
	bestDiff := math.Inf(1)

	for i, tr := range l.transitions {
		diff := math.Abs(tr.Wrest.Value - w.Value)
		if diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}

	if best < 0 || bestDiff > WavelengthTolerance {
		return Transition{}, fmt.Errorf("%w: %g Angstrom", ErrUnknownTransition, w.Value)
	}

	return l.transitions[best], nil
}
