// Package unitary defines the value types shared by the gate-parameterization
// layer: complex scalars, 2×2 complex matrices, rotation axes, and the single
// numerical tolerance every derivation and predicate in this module measures
// against.
package unitary

// Eps is the numerical tolerance shared by the rotation deriver and all
// validation predicates. Using one constant everywhere guarantees that
// legitimately derived parameters always pass validation.
const Eps = 1e-13

// Complex is a complex scalar as the simulation backend consumes it:
// two explicit real components, no identity beyond value.
type Complex struct {
	Real, Imag float64
}

// Conj returns the complex conjugate of c.
func (c Complex) Conj() Complex {
	return Complex{Real: c.Real, Imag: -c.Imag}
}

// Abs2 returns |c|², the squared modulus.
func (c Complex) Abs2() float64 {
	return c.Real*c.Real + c.Imag*c.Imag
}

// Matrix2 is an arbitrary 2×2 complex matrix, a candidate single-qubit gate.
// It is only a legal gate once IsUnitary reports true.
type Matrix2 struct {
	R0C0, R0C1 Complex
	R1C0, R1C1 Complex
}

// Conj returns the element-wise complex conjugate of m.
func (m Matrix2) Conj() Matrix2 {
	return Matrix2{
		R0C0: m.R0C0.Conj(),
		R0C1: m.R0C1.Conj(),
		R1C0: m.R1C0.Conj(),
		R1C1: m.R1C1.Conj(),
	}
}

// Vector is a real 3-vector naming a rotation axis on the Bloch sphere.
// Magnitude need not be 1 on input: FromRotation re-normalizes internally.
// A zero-magnitude axis yields non-finite parameters that fail validation.
type Vector struct {
	X, Y, Z float64
}

// XAxis, YAxis and ZAxis are the unit axes the fixed-axis rotation gates
// specialize to.
var (
	XAxis = Vector{X: 1}
	YAxis = Vector{Y: 1}
	ZAxis = Vector{Z: 1}
)
