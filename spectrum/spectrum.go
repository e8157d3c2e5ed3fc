package spectrum

import (
	"errors"
	"math"
	"sort"

	"github.com/cwbudde/algo-spectro/unit"
)

// Errors returned by spectrum operations.
var (
	ErrEmptySpectrum  = errors.New("spectrum: empty spectrum")
	ErrLengthMismatch = errors.New("spectrum: arrays must be aligned pixel-for-pixel")
	ErrMissingUnit    = errors.New("spectrum: dispersion axis carries no length unit")
	ErrNotMonotonic   = errors.New("spectrum: dispersion axis must be strictly ascending")
	ErrWindowOutside  = errors.New("spectrum: window covers no pixels")
	ErrNotLength      = errors.New("spectrum: center wavelength must carry a length dimension")
)

// SpeedOfLightKmS is the speed of light in km/s.
const SpeedOfLightKmS = 299792.458

// Spectrum holds a calibrated 1D spectrum. Wave, Flux, and Sigma must be
// aligned pixel-for-pixel; Continuum is optional but, when present, must
// be aligned as well. WaveUnit tags the dispersion axis and must be the
// length dimension for any windowing operation.
type Spectrum struct {
	Wave      []float64
	WaveUnit  unit.Dim
	Flux      []float64
	Sigma     []float64
	Continuum []float64
}

// Len returns the number of pixels.
func (s *Spectrum) Len() int {
	return len(s.Wave)
}

// HasContinuum reports whether a continuum array is attached.
func (s *Spectrum) HasContinuum() bool {
	return len(s.Continuum) > 0
}

// Validate checks pixel alignment, the dispersion unit, and monotonicity.
func (s *Spectrum) Validate() error {
	n := len(s.Wave)
	if n == 0 {
		return ErrEmptySpectrum
	}

	if len(s.Flux) != n || len(s.Sigma) != n {
		return ErrLengthMismatch
	}

	if len(s.Continuum) > 0 && len(s.Continuum) != n {
		return ErrLengthMismatch
	}

	if s.WaveUnit != unit.Length {
		return ErrMissingUnit
	}

	for i := 1; i < n; i++ {
		if s.Wave[i] <= s.Wave[i-1] {
			return ErrNotMonotonic
		}
	}

	return nil
}

// PixRange returns the half-open pixel index range [lo, hi) whose
// dispersion values fall inside [wvmin, wvmax] inclusive. The bounds may
// be given in either order.
func (s *Spectrum) PixRange(wvmin, wvmax float64) (int, int, error) {
	err := s.Validate()
	if err != nil {
		return 0, 0, err
	}

	if wvmin > wvmax {
		wvmin, wvmax = wvmax, wvmin
	}

	lo := sort.SearchFloat64s(s.Wave, wvmin)
	hi := sort.Search(len(s.Wave), func(i int) bool { return s.Wave[i] > wvmax })

	if lo >= hi {
		return 0, 0, ErrWindowOutside
	}

	return lo, hi, nil
}

// VelocityRelativeTo builds a per-pixel velocity axis, in km/s, relative
// to the given center wavelength using the relativistic Doppler transform:
//
//	v = c * (r^2 - 1) / (r^2 + 1),  r = wave/center
//
// The returned array is aligned with the dispersion axis.
func (s *Spectrum) VelocityRelativeTo(center unit.Quantity) ([]float64, error) {
	err := s.Validate()
	if err != nil {
		return nil, err
	}

	if !center.IsLength() {
		return nil, ErrNotLength
	}

	velo := make([]float64, len(s.Wave))
	for i, w := range s.Wave {
		r2 := (w / center.Value) * (w / center.Value)
		velo[i] = SpeedOfLightKmS * (r2 - 1) / (r2 + 1)
	}

	return velo, nil
}

// WavelengthAtVelocity returns the observed wavelength at velocity v km/s
// relative to the given center, inverting the relativistic Doppler
// transform.
func WavelengthAtVelocity(center unit.Quantity, v float64) (unit.Quantity, error) {
	if !center.IsLength() {
		return unit.Quantity{}, ErrNotLength
	}

	beta := v / SpeedOfLightKmS

	return center.Scale(math.Sqrt((1 + beta) / (1 - beta))), nil
}

// VelocityPixRange resolves a velocity window [vmin, vmax] km/s, taken
// relative to redshift z of a line with the given rest wavelength, into
// the half-open pixel index range bracketing it on the dispersion axis.
func (s *Spectrum) VelocityPixRange(z float64, wrest unit.Quantity, vmin, vmax float64) (int, int, error) {
	if !wrest.IsLength() {
		return 0, 0, ErrNotLength
	}

	center := wrest.Scale(1 + z)

	wlo, err := WavelengthAtVelocity(center, vmin)
	if err != nil {
		return 0, 0, err
	}

	whi, err := WavelengthAtVelocity(center, vmax)
	if err != nil {
		return 0, 0, err
	}

	return s.PixRange(wlo.Value, whi.Value)
}
