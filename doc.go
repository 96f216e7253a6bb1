// Package quest is the hardware-agnostic correctness layer in front of a
// quantum state-vector simulation engine: it turns physically meaningful
// gate specifications into the canonical two-complex-number form the
// backend consumes, and certifies the mathematical legality of every such
// input before any kernel touches an amplitude.
//
// What lives where:
//
//	unitary/  — complex/matrix/axis value types, the rotation-to-unitary
//	            deriver, and the unitarity/normalization predicates, all
//	            sharing one tolerance constant.
//	qerr/     — the closed failure enumeration with its canonical message
//	            table, typed errors, and the fail-fast assertion facility.
//	seed/     — deterministic seed material (time/pid/hostname or caller
//	            supplied) folded into an explicit pseudo-random generator.
//	gates/    — the derived-gate catalog: phase family, rotations and their
//	            controlled variants, delegating to the external Backend.
//	register/ — read-only introspection and CSV/console reporting over the
//	            externally-owned state handle.
//
// The actual amplitude storage, distribution, and kernels are external
// collaborators behind the gates.Backend and register.State interfaces:
// this module produces the numbers and the go/no-go decision they depend
// on, and never mutates simulation state itself.
//
//	go get github.com/nutchun/QuEST
package quest
