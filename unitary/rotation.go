// Rotation-to-unitary derivation.
//
// A single-qubit rotation by angle θ about axis n is the compact unitary
//
//	U = [[alpha, -conj(beta)], [beta, conj(alpha)]]
//
// under the half-angle convention:
//
//	alpha = (cos(θ/2), -sin(θ/2)·n.z)
//	beta  = (sin(θ/2)·n.y, -sin(θ/2)·n.x)
//
// Design:
//   - Deterministic, side-effect free; no logging, no panics.
//   - The axis is re-normalized here, so callers may pass any non-zero
//     magnitude. A zero axis divides by zero and produces non-finite
//     parameters, which IsUnitAlphaBeta rejects downstream.
package unitary

import "math"

// FromRotation derives the compact-unitary parameters (alpha, beta) of a
// rotation by angle radians about axis.
//
// Contract:
//   - axis must have non-zero magnitude; it is normalized internally.
//   - The result satisfies |alpha|²+|beta|² = 1 within Eps for any finite
//     angle and non-degenerate axis.
//
// Complexity: O(1).
func FromRotation(angle float64, axis Vector) (alpha, beta Complex) {
	mag := math.Sqrt(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)
	ux, uy, uz := axis.X/mag, axis.Y/mag, axis.Z/mag

	sin, cos := math.Sincos(angle / 2)
	alpha = Complex{Real: cos, Imag: -sin * uz}
	beta = Complex{Real: sin * uy, Imag: -sin * ux}
	return alpha, beta
}

// FromRotationConj derives the parameters of the inverse rotation by negating
// both imaginary parts of the FromRotation result, without recomputing any
// trigonometry. Applying Conj twice on the pair reproduces the original.
//
// Complexity: O(1).
func FromRotationConj(angle float64, axis Vector) (alpha, beta Complex) {
	alpha, beta = FromRotation(angle, axis)
	alpha.Imag = -alpha.Imag
	beta.Imag = -beta.Imag
	return alpha, beta
}
