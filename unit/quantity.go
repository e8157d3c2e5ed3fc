package unit

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned by additive operations on quantities
// whose dimensions differ.
var ErrDimensionMismatch = errors.New("unit: dimension mismatch")

// Dim encodes the integer exponents of the length and time base dimensions.
// The zero value is dimensionless.
type Dim struct {
	Length int
	Time   int
}

// Named dimensions used throughout the library.
var (
	Dimensionless = Dim{}
	Length        = Dim{Length: 1}
	Velocity      = Dim{Length: 1, Time: -1}
	ColumnDensity = Dim{Length: -2}
)

// Mul returns the dimension of a product.
func (d Dim) Mul(o Dim) Dim {
	return Dim{Length: d.Length + o.Length, Time: d.Time + o.Time}
}

// Div returns the dimension of a quotient.
func (d Dim) Div(o Dim) Dim {
	return Dim{Length: d.Length - o.Length, Time: d.Time - o.Time}
}

// IsZero reports whether the dimension is dimensionless.
func (d Dim) IsZero() bool {
	return d == Dim{}
}

// String renders the dimension as a unit suffix for the canonical scales.
func (d Dim) String() string {
	switch d {
	case Dimensionless:
		return ""
	case Length:
		return "Angstrom"
	case Velocity:
		return "km/s"
	case ColumnDensity:
		return "1/cm^2"
	default:
		return fmt.Sprintf("[L^%d T^%d]", d.Length, d.Time)
	}
}

// Quantity is a scalar value tagged with a physical dimension.
type Quantity struct {
	Value float64
	Dim   Dim
}

// Angstroms returns a length quantity in Angstrom.
func Angstroms(v float64) Quantity {
	return Quantity{Value: v, Dim: Length}
}

// KmPerS returns a velocity quantity in km/s.
func KmPerS(v float64) Quantity {
	return Quantity{Value: v, Dim: Velocity}
}

// PerCm2 returns a column-density quantity in 1/cm^2.
func PerCm2(v float64) Quantity {
	return Quantity{Value: v, Dim: ColumnDensity}
}

// Scalar returns a dimensionless quantity.
func Scalar(v float64) Quantity {
	return Quantity{Value: v}
}

// Mul returns the product q*o with combined dimensions.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{Value: q.Value * o.Value, Dim: q.Dim.Mul(o.Dim)}
}

// Div returns the quotient q/o with combined dimensions.
func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{Value: q.Value / o.Value, Dim: q.Dim.Div(o.Dim)}
}

// Scale returns q multiplied by a dimensionless factor.
func (q Quantity) Scale(s float64) Quantity {
	return Quantity{Value: q.Value * s, Dim: q.Dim}
}

// Add returns q+o. The dimensions must match.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if q.Dim != o.Dim {
		return Quantity{}, ErrDimensionMismatch
	}

	return Quantity{Value: q.Value + o.Value, Dim: q.Dim}, nil
}

// Sub returns q-o. The dimensions must match.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if q.Dim != o.Dim {
		return Quantity{}, ErrDimensionMismatch
	}

	return Quantity{Value: q.Value - o.Value, Dim: q.Dim}, nil
}

// IsLength reports whether q carries the length dimension.
func (q Quantity) IsLength() bool {
	return q.Dim == Length
}

// IsVelocity reports whether q carries the velocity dimension.
func (q Quantity) IsVelocity() bool {
	return q.Dim == Velocity
}

// IsColumnDensity reports whether q carries the column-density dimension.
func (q Quantity) IsColumnDensity() bool {
	return q.Dim == ColumnDensity
}

// IsDimensionless reports whether q carries no dimension.
func (q Quantity) IsDimensionless() bool {
	return q.Dim.IsZero()
}

// String renders the value with its canonical unit suffix.
func (q Quantity) String() string {
	if q.Dim.IsZero() {
		return fmt.Sprintf("%g", q.Value)
	}

	return fmt.Sprintf("%g %s", q.Value, q.Dim)
}
