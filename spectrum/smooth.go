package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Smoothing errors.
var (
	ErrInvalidWidth = errors.New("spectrum: smoothing width must be positive")
)

// directThreshold is the kernel length above which smoothing switches
// from direct convolution to the FFT path.
const directThreshold = 64

// SmoothBox returns a copy of the spectrum with the flux convolved by a
// normalized boxcar of the given pixel width. Dispersion, error, and
// continuum arrays are shared with the receiver; only the flux is new.
func (s *Spectrum) SmoothBox(width int) (*Spectrum, error) {
	if width < 1 {
		return nil, ErrInvalidWidth
	}

	err := s.Validate()
	if err != nil {
		return nil, err
	}

	kernel := make([]float64, width)
	for i := range kernel {
		kernel[i] = 1 / float64(width)
	}

	return s.smoothWith(kernel)
}

// SmoothGauss returns a copy of the spectrum with the flux convolved by a
// normalized Gaussian of the given FWHM in pixels. The kernel is truncated
// at four standard deviations.
func (s *Spectrum) SmoothGauss(fwhmPix float64) (*Spectrum, error) {
	if fwhmPix <= 0 {
		return nil, ErrInvalidWidth
	}

	err := s.Validate()
	if err != nil {
		return nil, err
	}

	// FWHM = 2*sqrt(2*ln2)*stddev
	stddev := fwhmPix / 2.3548200450309493
	half := int(math.Ceil(4 * stddev))

	kernel := make([]float64, 2*half+1)

	var sum float64
	for i := range kernel {
		x := float64(i - half)
		kernel[i] = math.Exp(-x * x / (2 * stddev * stddev))
		sum += kernel[i]
	}

	for i := range kernel {
		kernel[i] /= sum
	}

	return s.smoothWith(kernel)
}

func (s *Spectrum) smoothWith(kernel []float64) (*Spectrum, error) {
	var (
		full []float64
		err  error
	)

	if len(kernel) <= directThreshold {
		full = convolveDirect(s.Flux, kernel)
	} else {
		full, err = convolveFFT(s.Flux, kernel)
		if err != nil {
			return nil, err
		}
	}

	// Center the full convolution back onto the pixel grid.
	start := (len(kernel) - 1) / 2
	flux := make([]float64, len(s.Flux))
	copy(flux, full[start:start+len(s.Flux)])

	return &Spectrum{
		Wave:      s.Wave,
		WaveUnit:  s.WaveUnit,
		Flux:      flux,
		Sigma:     s.Sigma,
		Continuum: s.Continuum,
	}, nil
}

// convolveDirect performs time-domain linear convolution, returning the
// full result of length len(a)+len(b)-1.
func convolveDirect(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)

	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}

	return out
}

// convolveFFT performs linear convolution through zero-padded FFTs.
func convolveFFT(a, b []float64) ([]float64, error) {
	outLen := len(a) + len(b) - 1
	fftSize := nextPowerOf2(outLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}

	bPadded := make([]complex128, fftSize)
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	aFreq := make([]complex128, fftSize)

	err = plan.Forward(aFreq, aPadded)
	if err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bFreq := make([]complex128, fftSize)

	err = plan.Forward(bFreq, bPadded)
	if err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= bFreq[i]
	}

	resultTime := make([]complex128, fftSize)

	err = plan.Inverse(resultTime, aFreq)
	if err != nil {
		return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}

	out := make([]float64, outLen)
	for i := range out {
		out[i] = real(resultTime[i])
	}

	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
