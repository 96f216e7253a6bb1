package gates

import (
	"github.com/nutchun/QuEST/qerr"
	"github.com/nutchun/QuEST/unitary"
)

// rotate is the shared single-qubit rotation pipeline:
// derive → certify the derived pair → delegate. conj selects the inverse
// rotation's parameters. The axis is not pre-checked: a degenerate axis
// yields non-finite parameters that fail certification as InvalidRotation.
func rotate(b Backend, target int, angle float64, axis unitary.Vector, conj bool, op string) error {
	if err := checkTarget(b, target, op); err != nil {
		return err
	}
	alpha, beta := deriveRotation(angle, axis, conj)
	if err := qerr.Assert(unitary.IsUnitAlphaBeta(alpha, beta), qerr.InvalidRotation, op); err != nil {
		return err
	}
	return b.ApplyCompactUnitary(target, alpha, beta)
}

// controlledRotate mirrors rotate for the controlled primitive.
func controlledRotate(b Backend, control, target int, angle float64, axis unitary.Vector, conj bool, op string) error {
	if err := checkTarget(b, target, op); err != nil {
		return err
	}
	if err := checkControl(b, control, target, op); err != nil {
		return err
	}
	alpha, beta := deriveRotation(angle, axis, conj)
	if err := qerr.Assert(unitary.IsUnitAlphaBeta(alpha, beta), qerr.InvalidRotation, op); err != nil {
		return err
	}
	return b.ApplyControlledCompactUnitary(control, target, alpha, beta)
}

func deriveRotation(angle float64, axis unitary.Vector, conj bool) (alpha, beta unitary.Complex) {
	if conj {
		return unitary.FromRotationConj(angle, axis)
	}
	return unitary.FromRotation(angle, axis)
}

// RotateAroundAxis rotates the target qubit by angle radians about axis.
// The axis magnitude need not be 1; it is normalized during derivation.
func RotateAroundAxis(b Backend, target int, angle float64, axis unitary.Vector) error {
	return rotate(b, target, angle, axis, false, "RotateAroundAxis")
}

// RotateAroundAxisConj applies the inverse rotation of RotateAroundAxis.
func RotateAroundAxisConj(b Backend, target int, angle float64, axis unitary.Vector) error {
	return rotate(b, target, angle, axis, true, "RotateAroundAxisConj")
}

// RotateX rotates the target qubit about the x-axis.
func RotateX(b Backend, target int, angle float64) error {
	return rotate(b, target, angle, unitary.XAxis, false, "RotateX")
}

// RotateY rotates the target qubit about the y-axis.
func RotateY(b Backend, target int, angle float64) error {
	return rotate(b, target, angle, unitary.YAxis, false, "RotateY")
}

// RotateZ rotates the target qubit about the z-axis.
func RotateZ(b Backend, target int, angle float64) error {
	return rotate(b, target, angle, unitary.ZAxis, false, "RotateZ")
}

// ControlledRotateAroundAxis rotates the target about axis, conditioned on
// the control qubit.
func ControlledRotateAroundAxis(b Backend, control, target int, angle float64, axis unitary.Vector) error {
	return controlledRotate(b, control, target, angle, axis, false, "ControlledRotateAroundAxis")
}

// ControlledRotateAroundAxisConj applies the inverse controlled rotation.
func ControlledRotateAroundAxisConj(b Backend, control, target int, angle float64, axis unitary.Vector) error {
	return controlledRotate(b, control, target, angle, axis, true, "ControlledRotateAroundAxisConj")
}

// ControlledRotateX is RotateX conditioned on the control qubit.
func ControlledRotateX(b Backend, control, target int, angle float64) error {
	return controlledRotate(b, control, target, angle, unitary.XAxis, false, "ControlledRotateX")
}

// ControlledRotateY is RotateY conditioned on the control qubit.
func ControlledRotateY(b Backend, control, target int, angle float64) error {
	return controlledRotate(b, control, target, angle, unitary.YAxis, false, "ControlledRotateY")
}

// ControlledRotateZ is RotateZ conditioned on the control qubit.
func ControlledRotateZ(b Backend, control, target int, angle float64) error {
	return controlledRotate(b, control, target, angle, unitary.ZAxis, false, "ControlledRotateZ")
}

// CompactUnitary applies a caller-supplied (alpha, beta) pair after
// certifying its normalization. This is the direct-parameter entry for
// callers that derived or loaded parameters themselves.
func CompactUnitary(b Backend, target int, alpha, beta unitary.Complex) error {
	const op = "CompactUnitary"
	if err := checkTarget(b, target, op); err != nil {
		return err
	}
	if err := qerr.Assert(unitary.IsUnitAlphaBeta(alpha, beta), qerr.InvalidUnitary, op); err != nil {
		return err
	}
	return b.ApplyCompactUnitary(target, alpha, beta)
}

// ControlledCompactUnitary is CompactUnitary conditioned on a control qubit.
func ControlledCompactUnitary(b Backend, control, target int, alpha, beta unitary.Complex) error {
	const op = "ControlledCompactUnitary"
	if err := checkTarget(b, target, op); err != nil {
		return err
	}
	if err := checkControl(b, control, target, op); err != nil {
		return err
	}
	if err := qerr.Assert(unitary.IsUnitAlphaBeta(alpha, beta), qerr.InvalidUnitary, op); err != nil {
		return err
	}
	return b.ApplyControlledCompactUnitary(control, target, alpha, beta)
}
