package unitary_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nutchun/QuEST/unitary"
)

// TestFromRotation_AlwaysNormalized sweeps angles across [-4π, 4π] and a set
// of non-degenerate axes (unit and non-unit magnitude) and verifies that the
// derived pair always satisfies |alpha|²+|beta|² = 1 within tolerance.
func TestFromRotation_AlwaysNormalized(t *testing.T) {
	axes := []unitary.Vector{
		{X: 1}, {Y: 1}, {Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: 0.3, Y: -0.4, Z: 12},
		{X: -5, Y: 2, Z: -0.001},
	}
	for angle := -4 * math.Pi; angle <= 4*math.Pi; angle += math.Pi / 7 {
		for _, axis := range axes {
			alpha, beta := unitary.FromRotation(angle, axis)
			if !unitary.IsUnitAlphaBeta(alpha, beta) {
				t.Errorf("FromRotation(%g, %+v): |alpha|²+|beta|² = %g; want 1 within Eps",
					angle, axis, alpha.Abs2()+beta.Abs2())
			}
		}
	}
}

// TestFromRotation_RzPi pins the end-to-end case: a π rotation about z
// yields alpha ≈ (0, -1), beta ≈ (0, 0), and the pair passes validation.
func TestFromRotation_RzPi(t *testing.T) {
	alpha, beta := unitary.FromRotation(math.Pi, unitary.ZAxis)

	require.InDelta(t, 0, alpha.Real, unitary.Eps)
	require.InDelta(t, -1, alpha.Imag, unitary.Eps)
	require.InDelta(t, 0, beta.Real, unitary.Eps)
	require.InDelta(t, 0, beta.Imag, unitary.Eps)
	require.True(t, unitary.IsUnitAlphaBeta(alpha, beta))
}

// TestFromRotation_AxisNormalization verifies that scaling the axis does not
// change the derived parameters.
func TestFromRotation_AxisNormalization(t *testing.T) {
	angle := 1.234
	a1, b1 := unitary.FromRotation(angle, unitary.Vector{X: 1, Y: 2, Z: -3})
	a2, b2 := unitary.FromRotation(angle, unitary.Vector{X: 100, Y: 200, Z: -300})

	require.InDelta(t, a1.Real, a2.Real, unitary.Eps)
	require.InDelta(t, a1.Imag, a2.Imag, unitary.Eps)
	require.InDelta(t, b1.Real, b2.Real, unitary.Eps)
	require.InDelta(t, b1.Imag, b2.Imag, unitary.Eps)
}

// TestFromRotationConj_Involutive checks that conjugating the conjugate
// derivation reproduces the plain derivation exactly: negating both
// imaginary parts twice is the identity.
func TestFromRotationConj_Involutive(t *testing.T) {
	angle, axis := 2.5, unitary.Vector{X: 0.6, Y: 0.8}

	alpha, beta := unitary.FromRotation(angle, axis)
	ac, bc := unitary.FromRotationConj(angle, axis)

	require.Equal(t, alpha, ac.Conj())
	require.Equal(t, beta, bc.Conj())
	require.True(t, unitary.IsUnitAlphaBeta(ac, bc), "conjugate pair must stay normalized")
}

// TestFromRotation_ZeroAxis documents the degenerate-axis contract: the
// derivation itself does not fail, but the non-finite output is rejected by
// the validator.
func TestFromRotation_ZeroAxis(t *testing.T) {
	alpha, beta := unitary.FromRotation(1.0, unitary.Vector{})

	if !math.IsNaN(alpha.Imag) && !math.IsNaN(beta.Real) && !math.IsNaN(beta.Imag) {
		t.Fatalf("expected non-finite components, got alpha=%+v beta=%+v", alpha, beta)
	}
	require.False(t, unitary.IsUnitAlphaBeta(alpha, beta))
}
