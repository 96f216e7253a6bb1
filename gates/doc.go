// Package gates is the derived-gate catalog: named single-qubit operations
// and their controlled variants, each a pure parameter-construction step
// followed by delegation to one of two backend primitives.
//
// What:
//
//   - Phase family: SigmaZ, SGate, TGate, their conjugates, and the general
//     PhaseShift(θ) — all "apply phase term" with a fixed unit-modulus term.
//   - Rotations: RotateX/Y/Z and RotateAroundAxis(+Conj) — the
//     rotation-to-unitary derivation specialized to an axis, delegated to
//     "apply compact unitary".
//   - Controlled variants add a control qubit and delegate to the controlled
//     compact-unitary primitive.
//
// Pipeline:
//
//	physical parameters → derive (alpha, beta) → validate → backend.
//
// Entry points taking raw angles or parameters certify the derived values
// with the unitary predicates and return a typed qerr error on violation;
// the fixed-term phase gates construct constants that cannot fail and stay
// validation-free. Qubit-index legality is checked once at the catalog
// boundary. Nothing here touches amplitude storage: the Backend owns it.
//
// Errors (qerr codes):
//
//   - InvalidTarget / InvalidControl: index outside [0, NumQubits).
//   - ControlEqualsTarget: control and target name the same qubit.
//   - InvalidRotation: derived rotation parameters fail validation
//     (e.g. a zero-magnitude axis producing non-finite values).
//   - InvalidUnitary: caller-supplied (alpha, beta) not normalized.
package gates
