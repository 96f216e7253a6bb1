package gates

import (
	"math"

	"github.com/nutchun/QuEST/unitary"
)

// invSqrt2 = 1/√2, the T-gate term's components.
var invSqrt2 = 1 / math.Sqrt(2)

// Fixed phase terms of the diagonal gate family. Each has unit modulus by
// construction.
var (
	// ZTerm is the Pauli-Z phase term (-1, 0).
	ZTerm = unitary.Complex{Real: -1, Imag: 0}
	// STerm is the S-gate phase term (0, 1).
	STerm = unitary.Complex{Real: 0, Imag: 1}
	// TTerm is the T-gate phase term (1/√2, 1/√2).
	TTerm = unitary.Complex{Real: invSqrt2, Imag: invSqrt2}
	// SConjTerm is the S†-gate phase term (0, -1).
	SConjTerm = unitary.Complex{Real: 0, Imag: -1}
	// TConjTerm is the T†-gate phase term (1/√2, -1/√2).
	TConjTerm = unitary.Complex{Real: invSqrt2, Imag: -invSqrt2}
)

// PhaseTerm returns the general phase-shift term (cos θ, sin θ).
func PhaseTerm(angle float64) unitary.Complex {
	sin, cos := math.Sincos(angle)
	return unitary.Complex{Real: cos, Imag: sin}
}

// PhaseShift rotates the target qubit's |1⟩ phase by angle radians.
func PhaseShift(b Backend, target int, angle float64) error {
	if err := checkTarget(b, target, "PhaseShift"); err != nil {
		return err
	}
	return b.ApplyPhaseTerm(target, PhaseTerm(angle))
}

// SigmaZ applies the Pauli-Z gate.
func SigmaZ(b Backend, target int) error {
	if err := checkTarget(b, target, "SigmaZ"); err != nil {
		return err
	}
	return b.ApplyPhaseTerm(target, ZTerm)
}

// SGate applies the S (phase) gate.
func SGate(b Backend, target int) error {
	if err := checkTarget(b, target, "SGate"); err != nil {
		return err
	}
	return b.ApplyPhaseTerm(target, STerm)
}

// TGate applies the T (π/8) gate.
func TGate(b Backend, target int) error {
	if err := checkTarget(b, target, "TGate"); err != nil {
		return err
	}
	return b.ApplyPhaseTerm(target, TTerm)
}

// SGateConj applies S†, the inverse of SGate.
func SGateConj(b Backend, target int) error {
	if err := checkTarget(b, target, "SGateConj"); err != nil {
		return err
	}
	return b.ApplyPhaseTerm(target, SConjTerm)
}

// TGateConj applies T†, the inverse of TGate.
func TGateConj(b Backend, target int) error {
	if err := checkTarget(b, target, "TGateConj"); err != nil {
		return err
	}
	return b.ApplyPhaseTerm(target, TConjTerm)
}
