package gates

import (
	"github.com/nutchun/QuEST/qerr"
	"github.com/nutchun/QuEST/unitary"
)

// Backend is the external simulation engine consuming validated parameters.
// Implementations own the amplitude storage and the kernels that apply a
// gate to it; this package never reads or writes amplitudes itself.
type Backend interface {
	// NumQubits reports the register size, for index-legality checks.
	NumQubits() int

	// ApplyPhaseTerm multiplies the target qubit's |1⟩ amplitudes by the
	// unit-modulus term.
	ApplyPhaseTerm(target int, term unitary.Complex) error

	// ApplyCompactUnitary applies the single-qubit unitary determined by
	// (alpha, beta) to the target qubit.
	ApplyCompactUnitary(target int, alpha, beta unitary.Complex) error

	// ApplyControlledCompactUnitary applies (alpha, beta) to the target
	// qubit conditioned on the control qubit.
	ApplyControlledCompactUnitary(control, target int, alpha, beta unitary.Complex) error
}

// checkTarget certifies 0 ≤ target < NumQubits.
func checkTarget(b Backend, target int, op string) error {
	return qerr.Assert(target >= 0 && target < b.NumQubits(), qerr.InvalidTarget, op)
}

// checkControl certifies the control index range and control ≠ target.
func checkControl(b Backend, control, target int, op string) error {
	if err := qerr.Assert(control >= 0 && control < b.NumQubits(), qerr.InvalidControl, op); err != nil {
		return err
	}
	return qerr.Assert(control != target, qerr.ControlEqualsTarget, op)
}
