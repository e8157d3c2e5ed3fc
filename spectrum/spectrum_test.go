package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/unit"
)

// linearSpec builds a spectrum with an evenly spaced dispersion axis.
func linearSpec(n int, w0, dw float64) *Spectrum {
	wave := make([]float64, n)
	flux := make([]float64, n)
	sig := make([]float64, n)

	for i := range wave {
		wave[i] = w0 + float64(i)*dw
		flux[i] = 1
		sig[i] = 0.01
	}

	return &Spectrum{Wave: wave, WaveUnit: unit.Length, Flux: flux, Sigma: sig}
}

func TestValidate(t *testing.T) {
	s := linearSpec(10, 4000, 0.5)
	if err := s.Validate(); err != nil {
		t.Fatalf("valid spectrum rejected: %v", err)
	}

	empty := &Spectrum{WaveUnit: unit.Length}
	if err := empty.Validate(); !errors.Is(err, ErrEmptySpectrum) {
		t.Fatalf("expected ErrEmptySpectrum, got %v", err)
	}

	short := linearSpec(10, 4000, 0.5)
	short.Sigma = short.Sigma[:5]

	if err := short.Validate(); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}

	badConti := linearSpec(10, 4000, 0.5)
	badConti.Continuum = make([]float64, 3)

	if err := badConti.Validate(); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch for continuum, got %v", err)
	}

	unitless := linearSpec(10, 4000, 0.5)
	unitless.WaveUnit = unit.Dim{}

	if err := unitless.Validate(); !errors.Is(err, ErrMissingUnit) {
		t.Fatalf("expected ErrMissingUnit, got %v", err)
	}

	reversed := linearSpec(10, 4000, 0.5)
	reversed.Wave[3] = reversed.Wave[2]

	if err := reversed.Validate(); !errors.Is(err, ErrNotMonotonic) {
		t.Fatalf("expected ErrNotMonotonic, got %v", err)
	}
}

func TestPixRange(t *testing.T) {
	s := linearSpec(100, 4000, 1) // 4000..4099

	lo, hi, err := s.PixRange(4010, 4020)
	if err != nil {
		t.Fatalf("PixRange failed: %v", err)
	}

	// Inclusive bounds: pixels 10..20.
	if lo != 10 || hi != 21 {
		t.Fatalf("range mismatch: got [%d, %d) want [10, 21)", lo, hi)
	}

	// Bounds in either order.
	lo2, hi2, err := s.PixRange(4020, 4010)
	if err != nil || lo2 != lo || hi2 != hi {
		t.Fatalf("reversed bounds mismatch: got [%d, %d) err %v", lo2, hi2, err)
	}

	// Window beyond the red end.
	if _, _, err := s.PixRange(5000, 5010); !errors.Is(err, ErrWindowOutside) {
		t.Fatalf("expected ErrWindowOutside, got %v", err)
	}

	// Window between two pixels.
	if _, _, err := s.PixRange(4010.2, 4010.8); !errors.Is(err, ErrWindowOutside) {
		t.Fatalf("expected ErrWindowOutside between pixels, got %v", err)
	}
}

func TestVelocityRelativeTo(t *testing.T) {
	s := linearSpec(101, 4000, 1)
	center := unit.Angstroms(4050) // pixel 50

	velo, err := s.VelocityRelativeTo(center)
	if err != nil {
		t.Fatalf("VelocityRelativeTo failed: %v", err)
	}

	if len(velo) != s.Len() {
		t.Fatalf("velocity axis not aligned: got %d want %d", len(velo), s.Len())
	}

	if math.Abs(velo[50]) > 1e-9 {
		t.Fatalf("velocity at center should be 0: got %g", velo[50])
	}

	if velo[0] >= 0 || velo[100] <= 0 {
		t.Fatalf("velocity sign mismatch: blue %g red %g", velo[0], velo[100])
	}

	// Rough magnitude check: dw/w ~ v/c for small shifts.
	approx := SpeedOfLightKmS * (4051 - 4050) / 4050.0
	if math.Abs(velo[51]-approx) > 1 {
		t.Fatalf("velocity magnitude mismatch: got %g want ~%g", velo[51], approx)
	}

	if _, err := s.VelocityRelativeTo(unit.Scalar(4050)); !errors.Is(err, ErrNotLength) {
		t.Fatalf("expected ErrNotLength, got %v", err)
	}
}

func TestWavelengthAtVelocityRoundTrip(t *testing.T) {
	center := unit.Angstroms(4863.0)

	for _, v := range []float64{-5000, -100, 0, 42.5, 100, 5000} {
		w, err := WavelengthAtVelocity(center, v)
		if err != nil {
			t.Fatalf("WavelengthAtVelocity failed: %v", err)
		}

		r2 := (w.Value / center.Value) * (w.Value / center.Value)
		back := SpeedOfLightKmS * (r2 - 1) / (r2 + 1)

		if math.Abs(back-v) > 1e-6 {
			t.Fatalf("round trip mismatch at v=%g: got %g", v, back)
		}
	}
}

func TestVelocityPixRange(t *testing.T) {
	wrest := unit.Angstroms(1215.67)
	z := 2.0
	center := wrest.Scale(1 + z)

	// Build pixels exactly at -100..100 km/s in 10 km/s steps.
	n := 21
	wave := make([]float64, n)

	for i := range wave {
		v := -100 + 10*float64(i)
		w, err := WavelengthAtVelocity(center, v)
		if err != nil {
			t.Fatalf("WavelengthAtVelocity failed: %v", err)
		}

		wave[i] = w.Value
	}

	s := &Spectrum{
		Wave:     wave,
		WaveUnit: unit.Length,
		Flux:     make([]float64, n),
		Sigma:    make([]float64, n),
	}

	lo, hi, err := s.VelocityPixRange(z, wrest, -100, 100)
	if err != nil {
		t.Fatalf("VelocityPixRange failed: %v", err)
	}

	if lo != 0 || hi != n {
		t.Fatalf("range mismatch: got [%d, %d) want [0, %d)", lo, hi, n)
	}

	lo, hi, err = s.VelocityPixRange(z, wrest, -45, 45)
	if err != nil {
		t.Fatalf("VelocityPixRange failed: %v", err)
	}

	// -40..+40 km/s pixels, indices 6..14.
	if lo != 6 || hi != 15 {
		t.Fatalf("inner range mismatch: got [%d, %d) want [6, 15)", lo, hi)
	}

	if _, _, err := s.VelocityPixRange(z, unit.KmPerS(1), -100, 100); !errors.Is(err, ErrNotLength) {
		t.Fatalf("expected ErrNotLength, got %v", err)
	}
}
