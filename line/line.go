package line

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectro/linelist"
	"github.com/cwbudde/algo-spectro/spectrum"
	"github.com/cwbudde/algo-spectro/unit"
)

// Errors returned by line construction and spectrum slicing.
var (
	ErrInvalidLineType   = errors.New("line: unsupported line type")
	ErrInvalidTransition = errors.New("line: transition must be a rest wavelength or a name")
	ErrInvalidLineList   = errors.New("line: bad line list selection")
	ErrMissingWindow     = errors.New("line: analysis window is not set")
	ErrMissingSpectrum   = errors.New("line: no spectrum is bound")
)

// Type identifies the line variant.
type Type int

const (
	// Absorption is the only fully implemented variant.
	Absorption Type = iota

	// Emission is reserved and rejected at construction.
	Emission
)

// String returns the variant name.
func (t Type) String() string {
	switch t {
	case Absorption:
		return "AbsLine"
	case Emission:
		return "EmissLine"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// TransitionRef identifies a transition either by canonical name or by
// rest wavelength. The set of implementations is closed.
type TransitionRef interface {
	isTransitionRef()
}

type nameRef string

func (nameRef) isTransitionRef() {}

type waveRef struct {
	q unit.Quantity
}

func (waveRef) isTransitionRef() {}

// ByName references a transition by canonical name, e.g. "CIV 1548".
func ByName(name string) TransitionRef {
	return nameRef(name)
}

// ByWavelength references a transition by rest wavelength. The quantity
// must carry a length dimension.
func ByWavelength(wrest unit.Quantity) TransitionRef {
	return waveRef{q: wrest}
}

// Option configures line construction.
type Option func(*config)

type config struct {
	list     *linelist.List
	listName string
	badList  bool
}

// WithList uses a caller-supplied line list for the atomic-data fill.
func WithList(l *linelist.List) Option {
	return func(c *config) {
		if l == nil {
			c.badList = true
			return
		}

		c.list = l
	}
}

// WithListName selects a builtin line list by name, e.g. "ISM".
func WithListName(name string) Option {
	return func(c *config) {
		c.list = nil
		c.listName = name
	}
}

// AnalysisConfig holds the inputs for measuring one line.
type AnalysisConfig struct {
	// Spec is the bound spectrum. Referenced, not owned; never mutated.
	Spec *spectrum.Spectrum

	// WvLim is the observed wavelength window [low, high] in Angstrom.
	// The degenerate (0, 0) pair means the window is unset.
	WvLim [2]float64

	// VLim is the velocity window [low, high] in km/s, always relative
	// to the redshift in Attrib.Z, never absolute.
	VLim [2]float64

	// DoAnalysis marks the line for analysis in batch pipelines.
	DoAnalysis bool

	// Datafile tags the source file the spectrum came from.
	Datafile string
}

// Attributes holds the measured properties of a line. The EW and column
// fields are written by the measurement calculators.
type Attributes struct {
	RA  float64 // right ascension in deg
	Dec float64 // declination in deg

	Z    float64 // redshift
	ZSig float64

	V    unit.Quantity // velocity offset relative to Z, km/s
	VSig unit.Quantity

	EW     unit.Quantity // equivalent width, Angstrom
	EWSig  unit.Quantity
	EWFlag int

	// Absorption-only column-density attributes.
	N       unit.Quantity // linear column density, 1/cm^2
	NSig    unit.Quantity
	NFlag   int // count of saturated pixels in the last AODM run
	LogN    float64
	SigLogN float64

	B    unit.Quantity // Doppler parameter, km/s
	BSig unit.Quantity
}

// Line is the record for one spectral line.
type Line struct {
	Type  Type
	Name  string        // canonical transition name
	Wrest unit.Quantity // rest wavelength

	// Data is the atomic data matched from the line list. Filled once
	// at construction and treated as immutable afterwards.
	Data linelist.Transition

	// List is the line list the atomic data was resolved against.
	List *linelist.List

	Analysis AnalysisConfig
	Attrib   Attributes
}

// New constructs a line record of the given type and synchronously fills
// its atomic data from the selected line list (builtin ISM by default).
func New(t Type, trans TransitionRef, opts ...Option) (*Line, error) {
	if t != Absorption {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLineType, t)
	}

	if trans == nil {
		return nil, ErrInvalidTransition
	}

	cfg := config{listName: "ISM"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.badList {
		return nil, ErrInvalidLineList
	}

	list := cfg.list
	if list == nil {
		var err error

		list, err = linelist.New(cfg.listName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLineList, err)
		}
	}

	l := &Line{Type: t, List: list}

	err := l.fillData(trans)
	if err != nil {
		return nil, err
	}

	return l, nil
}

// NewAbsorption constructs an absorption-line record.
func NewAbsorption(trans TransitionRef, opts ...Option) (*Line, error) {
	return New(Absorption, trans, opts...)
}

// fillData resolves the transition, copies the matched atomic data, and
// initializes the analysis and attribute defaults.
func (l *Line) fillData(trans TransitionRef) error {
	var (
		tr  linelist.Transition
		err error
	)

	switch ref := trans.(type) {
	case nameRef:
		tr, err = l.List.LookupName(string(ref))
	case waveRef:
		if !ref.q.IsLength() {
			return ErrInvalidTransition
		}

		tr, err = l.List.LookupWavelength(ref.q)
	default:
		return ErrInvalidTransition
	}

	if err != nil {
		return err
	}

	l.Data = tr
	l.Wrest = tr.Wrest
	l.Name = tr.Name

	l.Analysis = AnalysisConfig{DoAnalysis: true}

	l.Attrib = Attributes{
		V:     unit.KmPerS(0),
		VSig:  unit.KmPerS(0),
		EW:    unit.Angstroms(0),
		EWSig: unit.Angstroms(0),
		N:     unit.PerCm2(0),
		NSig:  unit.PerCm2(0),
		B:     unit.KmPerS(0),
		BSig:  unit.KmPerS(0),
	}

	return nil
}

// CutSpec slices the bound spectrum to the wavelength window, returning
// flux, error, and wavelength arrays aligned pixel-for-pixel. When
// normalize is set and the spectrum carries a continuum, flux and error
// are divided by it; without a continuum, normalization is skipped.
//
// The returned arrays are copies; mutating them does not touch the
// spectrum.
func (l *Line) CutSpec(normalize bool) (fx, sig, wave []float64, err error) {
	if l.Analysis.WvLim == [2]float64{} {
		return nil, nil, nil, ErrMissingWindow
	}

	spec := l.Analysis.Spec
	if spec == nil {
		return nil, nil, nil, ErrMissingSpectrum
	}

	lo, hi, err := spec.PixRange(l.Analysis.WvLim[0], l.Analysis.WvLim[1])
	if err != nil {
		return nil, nil, nil, err
	}

	n := hi - lo
	fx = make([]float64, n)
	sig = make([]float64, n)
	wave = make([]float64, n)

	copy(fx, spec.Flux[lo:hi])
	copy(sig, spec.Sigma[lo:hi])
	copy(wave, spec.Wave[lo:hi])

	if normalize && spec.HasContinuum() {
		for i := 0; i < n; i++ {
			fx[i] /= spec.Continuum[lo+i]
			sig[i] /= spec.Continuum[lo+i]
		}
	}

	return fx, sig, wave, nil
}

// String returns a deterministic textual representation with the
// canonical name, rest wavelength, and oscillator strength when present.
func (l *Line) String() string {
	s := "[" + l.Type.String() + ":"
	if l.Name != "" {
		s += " " + l.Name + ","
	}

	s += fmt.Sprintf(" wrest=%.4f %s", l.Wrest.Value, l.Wrest.Dim)

	if l.Data.Fval > 0 {
		s += fmt.Sprintf(", f=%g", l.Data.Fval)
	}

	return s + "]"
}
