// Package qerr carries the failure taxonomy of the gate-parameterization
// layer: a closed enumeration of error codes with their canonical messages,
// a typed error carrying the originating operation, and the fail-fast
// assertion facility.
//
// Two disciplines coexist:
//
//   - Assert returns a typed *Error up the call stack; the top-level entry
//     point (CLI, host application) decides whether to terminate, log, or
//     propagate. This is the primary API.
//   - Exit and AssertOrExit preserve the historical contract: a fixed
//     three-line banner on stdout and immediate process termination with
//     the code as exit status. Existing tooling parses both the banner and
//     the status, so message text and numbering must not change.
//
// Errors:
//   - *Error wraps a Code; errors.Is(err, Code) matching is supported via
//     the Error.Is method, so callers can test for a specific failure kind.
package qerr

import "fmt"

// Code enumerates every failure kind this layer can detect. The numeric
// values double as process exit statuses, so they are fixed: Success is 0
// and is never used as a failure.
type Code int

const (
	// Success is the reserved zero code; never a failure.
	Success Code = iota
	// InvalidTarget indicates a target qubit index out of range.
	InvalidTarget
	// InvalidControl indicates a control qubit index out of range.
	InvalidControl
	// ControlEqualsTarget indicates control and target name the same qubit.
	ControlEqualsTarget
	// InvalidNumControls indicates an illegal number of control qubits.
	InvalidNumControls
	// InvalidUnitary indicates a matrix or (alpha, beta) pair that is not
	// unitary within tolerance.
	InvalidUnitary
	// InvalidRotation indicates rotation arguments whose derived parameters
	// fail validation (e.g. a degenerate axis).
	InvalidRotation
	// SystemTooLarge indicates a print request for a system above 5 qubits.
	SystemTooLarge
	// ZeroProbCollapse indicates a collapse onto a zero-probability outcome.
	ZeroProbCollapse
	// InvalidNumQubits indicates an illegal qubit count.
	InvalidNumQubits
	// InvalidOutcome indicates a measurement outcome other than 0 or 1.
	InvalidOutcome
	// FileOpenFailed indicates a report file could not be opened.
	FileOpenFailed
	// ExpectedPureState indicates a density matrix where a pure state was required.
	ExpectedPureState
	// DimensionMismatch indicates qubit registers of differing dimensions.
	DimensionMismatch
	// DensityMatrixOnly indicates an operation defined only for density matrices.
	DensityMatrixOnly
	// TwoPureStatesOnly indicates an operation defined only for two pure states.
	TwoPureStatesOnly
	// NonUnitaryPhaseShift indicates a non-unitary internal phase-shift.
	NonUnitaryPhaseShift

	numCodes
)

// messages is the canonical code→message table. The text is parsed by
// external tooling and must be reproduced verbatim.
var messages = [numCodes]string{
	Success:              "Success",
	InvalidTarget:        "Invalid target qubit. Note qubits are zero indexed.",
	InvalidControl:       "Invalid control qubit. Note qubits are zero indexed.",
	ControlEqualsTarget:  "Control qubit cannot equal target qubit.",
	InvalidNumControls:   "Invalid number of control qubits",
	InvalidUnitary:       "Invalid unitary matrix.",
	InvalidRotation:      "Invalid rotation arguments.",
	SystemTooLarge:       "Invalid system size. Cannot print output for systems greater than 5 qubits.",
	ZeroProbCollapse:     "Can't collapse to state with zero probability.",
	InvalidNumQubits:     "Invalid number of qubits.",
	InvalidOutcome:       "Invalid measurement outcome -- must be either 0 or 1.",
	FileOpenFailed:       "Could not open file.",
	ExpectedPureState:    "Second argument must be a pure state, not a density matrix.",
	DimensionMismatch:    "Dimensions of the qubit registers do not match.",
	DensityMatrixOnly:    "This operation is only defined for density matrices.",
	TwoPureStatesOnly:    "This operation is only defined for two pure states.",
	NonUnitaryPhaseShift: "An non-unitary internal operation (phaseShift) occured.",
}

// Message returns the canonical human-readable message for c.
// Unknown codes yield a stable placeholder rather than panicking.
func (c Code) Message() string {
	if c < 0 || c >= numCodes {
		return fmt.Sprintf("Unknown error code %d.", int(c))
	}
	return messages[c]
}

// Error lets a bare Code act as a matching target for errors.Is.
func (c Code) Error() string {
	return fmt.Sprintf("qerr: code %d: %s", int(c), c.Message())
}
