package line

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/linelist"
	"github.com/cwbudde/algo-spectro/spectrum"
	"github.com/cwbudde/algo-spectro/unit"
)

func TestNewAbsorptionByName(t *testing.T) {
	l, err := NewAbsorption(ByName("CIV 1548"))
	if err != nil {
		t.Fatalf("NewAbsorption failed: %v", err)
	}

	if l.Name != "CIV 1548" {
		t.Fatalf("name mismatch: got %q", l.Name)
	}

	if math.Abs(l.Wrest.Value-1548.1950) > 1e-9 || !l.Wrest.IsLength() {
		t.Fatalf("wrest mismatch: got %v", l.Wrest)
	}

	if math.Abs(l.Data.Fval-0.1908) > 1e-9 {
		t.Fatalf("fval mismatch: got %g", l.Data.Fval)
	}

	if !l.Analysis.DoAnalysis {
		t.Fatalf("DoAnalysis default should be true")
	}

	if !l.Attrib.N.IsColumnDensity() || l.Attrib.N.Value != 0 {
		t.Fatalf("column attribute not zero-initialized: %v", l.Attrib.N)
	}

	if !l.Attrib.EW.IsLength() || !l.Attrib.B.IsVelocity() {
		t.Fatalf("attribute dimensions mismatch: EW %v B %v", l.Attrib.EW.Dim, l.Attrib.B.Dim)
	}
}

func TestNewAbsorptionByWavelength(t *testing.T) {
	l, err := NewAbsorption(ByWavelength(unit.Angstroms(1215.67)))
	if err != nil {
		t.Fatalf("NewAbsorption failed: %v", err)
	}

	if l.Name != "HI 1215" {
		t.Fatalf("name mismatch: got %q", l.Name)
	}
}

func TestNewRejectsEmission(t *testing.T) {
	_, err := New(Emission, ByName("HI 1215"))
	if !errors.Is(err, ErrInvalidLineType) {
		t.Fatalf("expected ErrInvalidLineType, got %v", err)
	}
}

func TestNewRejectsBadTransition(t *testing.T) {
	_, err := NewAbsorption(nil)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for nil ref, got %v", err)
	}

	_, err = NewAbsorption(ByWavelength(unit.KmPerS(1215.67)))
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for velocity, got %v", err)
	}
}

func TestNewRejectsBadList(t *testing.T) {
	_, err := NewAbsorption(ByName("HI 1215"), WithList(nil))
	if !errors.Is(err, ErrInvalidLineList) {
		t.Fatalf("expected ErrInvalidLineList for nil list, got %v", err)
	}

	_, err = NewAbsorption(ByName("HI 1215"), WithListName("nope"))
	if !errors.Is(err, ErrInvalidLineList) {
		t.Fatalf("expected ErrInvalidLineList for unknown name, got %v", err)
	}
}

func TestNewWithCustomList(t *testing.T) {
	custom := linelist.FromTransitions("custom", []linelist.Transition{
		{Name: "ZZ 4242", Ion: "ZZ", Wrest: unit.Angstroms(4242.0), Fval: 0.5},
	})

	l, err := NewAbsorption(ByName("ZZ 4242"), WithList(custom))
	if err != nil {
		t.Fatalf("NewAbsorption with custom list failed: %v", err)
	}

	if l.Name != "ZZ 4242" || l.List != custom {
		t.Fatalf("custom list not used: name %q", l.Name)
	}
}

// testSpec builds a flat spectrum with unit continuum = 2 so that
// normalization is observable.
func testSpec(n int, w0, dw float64) *spectrum.Spectrum {
	wave := make([]float64, n)
	flux := make([]float64, n)
	sig := make([]float64, n)
	conti := make([]float64, n)

	for i := range wave {
		wave[i] = w0 + float64(i)*dw
		flux[i] = 1
		sig[i] = 0.1
		conti[i] = 2
	}

	return &spectrum.Spectrum{
		Wave:      wave,
		WaveUnit:  unit.Length,
		Flux:      flux,
		Sigma:     sig,
		Continuum: conti,
	}
}

func TestCutSpecPreconditions(t *testing.T) {
	l, err := NewAbsorption(ByName("HI 1215"))
	if err != nil {
		t.Fatalf("NewAbsorption failed: %v", err)
	}

	// Degenerate window.
	if _, _, _, err := l.CutSpec(false); !errors.Is(err, ErrMissingWindow) {
		t.Fatalf("expected ErrMissingWindow, got %v", err)
	}

	// Window set, no spectrum bound.
	l.Analysis.WvLim = [2]float64{1214, 1217}

	if _, _, _, err := l.CutSpec(false); !errors.Is(err, ErrMissingSpectrum) {
		t.Fatalf("expected ErrMissingSpectrum, got %v", err)
	}

	// Spectrum without a dispersion unit.
	spec := testSpec(10, 1214, 0.5)
	spec.WaveUnit = unit.Dim{}
	l.Analysis.Spec = spec

	if _, _, _, err := l.CutSpec(false); !errors.Is(err, spectrum.ErrMissingUnit) {
		t.Fatalf("expected spectrum.ErrMissingUnit, got %v", err)
	}
}

func TestCutSpecNormalize(t *testing.T) {
	l, err := NewAbsorption(ByName("HI 1215"))
	if err != nil {
		t.Fatalf("NewAbsorption failed: %v", err)
	}

	l.Analysis.Spec = testSpec(11, 1213, 0.5) // 1213..1218
	l.Analysis.WvLim = [2]float64{1214, 1216}

	fx, sig, wave, err := l.CutSpec(true)
	if err != nil {
		t.Fatalf("CutSpec failed: %v", err)
	}

	// Pixels 2..6 inclusive.
	if len(fx) != 5 || len(sig) != 5 || len(wave) != 5 {
		t.Fatalf("slice length mismatch: got %d want 5", len(fx))
	}

	if wave[0] != 1214 || wave[4] != 1216 {
		t.Fatalf("wavelength bounds mismatch: %g..%g", wave[0], wave[4])
	}

	// Continuum of 2 halves flux and sigma.
	for i := range fx {
		if math.Abs(fx[i]-0.5) > 1e-12 || math.Abs(sig[i]-0.05) > 1e-12 {
			t.Fatalf("normalization mismatch at %d: fx %g sig %g", i, fx[i], sig[i])
		}
	}
}

func TestCutSpecNormalizeSkippedWithoutContinuum(t *testing.T) {
	l, err := NewAbsorption(ByName("HI 1215"))
	if err != nil {
		t.Fatalf("NewAbsorption failed: %v", err)
	}

	spec := testSpec(11, 1213, 0.5)
	spec.Continuum = nil
	l.Analysis.Spec = spec
	l.Analysis.WvLim = [2]float64{1214, 1216}

	fx, _, _, err := l.CutSpec(true)
	if err != nil {
		t.Fatalf("CutSpec without continuum should not fail: %v", err)
	}

	for i := range fx {
		if fx[i] != 1 {
			t.Fatalf("flux should be unnormalized at %d: got %g", i, fx[i])
		}
	}
}

func TestCutSpecReturnsCopies(t *testing.T) {
	l, err := NewAbsorption(ByName("HI 1215"))
	if err != nil {
		t.Fatalf("NewAbsorption failed: %v", err)
	}

	l.Analysis.Spec = testSpec(11, 1213, 0.5)
	l.Analysis.WvLim = [2]float64{1214, 1216}

	fx, _, _, err := l.CutSpec(false)
	if err != nil {
		t.Fatalf("CutSpec failed: %v", err)
	}

	fx[0] = -99

	if l.Analysis.Spec.Flux[2] == -99 {
		t.Fatalf("mutating the cut leaked into the spectrum")
	}
}

func TestString(t *testing.T) {
	l, err := NewAbsorption(ByName("HI 1215"))
	if err != nil {
		t.Fatalf("NewAbsorption failed: %v", err)
	}

	want := "[AbsLine: HI 1215, wrest=1215.6700 Angstrom, f=0.4164]"
	if got := l.String(); got != want {
		t.Fatalf("String mismatch:\ngot  %q\nwant %q", got, want)
	}
}
