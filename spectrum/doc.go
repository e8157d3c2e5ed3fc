// Package spectrum provides the bound-spectrum data model for line
// measurement: pixel-aligned dispersion, flux, error, and optional
// continuum arrays, window-to-pixel resolution in wavelength and velocity
// space, and kernel smoothing.
//
// The dispersion axis must be strictly ascending and must carry a length
// unit. All window resolution is a monotonic search over the dispersion
// axis; velocity axes use the relativistic Doppler transform relative to
// a chosen center wavelength.
//
// A Spectrum is a read-only shared resource during measurement: the
// methods here never mutate the receiver's arrays, so many line records
// may reference one spectrum concurrently.
//
// # Usage
//
//	spec := &spectrum.Spectrum{
//	    Wave:     wave,
//	    WaveUnit: unit.Length,
//	    Flux:     flux,
//	    Sigma:    sig,
//	}
//	lo, hi, err := spec.PixRange(4770, 4788)
//	velo, err := spec.VelocityRelativeTo(unit.Angstroms(4776.5))
package spectrum
