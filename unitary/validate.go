// Validation predicates for gate parameters.
//
// Each predicate is pure, side-effect free, and returns a plain bool: the
// caller decides how to route a failure (typically through qerr.Assert).
// All four compare against the same Eps constant used by FromRotation, so
// legitimately derived parameters always pass.
package unitary

import "math"

// IsUnitComplex reports whether |c| ≈ 1 within Eps.
func IsUnitComplex(c Complex) bool {
	return math.Abs(1-math.Sqrt(c.Abs2())) < Eps
}

// IsUnitAlphaBeta reports whether |alpha|² + |beta|² ≈ 1 within Eps,
// i.e. whether the pair parameterizes a legal compact unitary.
// Non-finite components (e.g. from a degenerate rotation axis) fail.
func IsUnitAlphaBeta(alpha, beta Complex) bool {
	return math.Abs(alpha.Abs2()+beta.Abs2()-1) <= Eps
}

// IsUnitVector reports whether (x, y, z) has Euclidean norm ≈ 1 within Eps.
func IsUnitVector(x, y, z float64) bool {
	return math.Abs(math.Sqrt(x*x+y*y+z*z)-1) <= Eps
}

// IsUnitary reports whether m is unitary: both columns individually
// normalized and mutually orthogonal in the complex inner product
// (real and imaginary parts each ≈ 0 within Eps).
//
// Complexity: O(1) — four scalar comparisons.
func (m Matrix2) IsUnitary() bool {
	// Column 0 normalized.
	if math.Abs(m.R0C0.Abs2()+m.R1C0.Abs2()-1) > Eps {
		return false
	}
	// Column 1 normalized.
	if math.Abs(m.R0C1.Abs2()+m.R1C1.Abs2()-1) > Eps {
		return false
	}
	// Hermitian inner product ⟨col0, col1⟩: real part.
	if math.Abs(m.R0C0.Real*m.R0C1.Real+m.R0C0.Imag*m.R0C1.Imag+
		m.R1C0.Real*m.R1C1.Real+m.R1C0.Imag*m.R1C1.Imag) > Eps {
		return false
	}
	// Hermitian inner product: imaginary part.
	if math.Abs(m.R0C1.Real*m.R0C0.Imag-m.R0C0.Real*m.R0C1.Imag+
		m.R1C1.Real*m.R1C0.Imag-m.R1C0.Real*m.R1C1.Imag) > Eps {
		return false
	}
	return true
}
