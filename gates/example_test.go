package gates_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/nutchun/QuEST/gates"
	"github.com/nutchun/QuEST/qerr"
	"github.com/nutchun/QuEST/unitary"
)

// printBackend stands in for the simulation engine and prints what it is
// asked to apply.
type printBackend struct{ qubits int }

func (p *printBackend) NumQubits() int { return p.qubits }

func (p *printBackend) ApplyPhaseTerm(target int, term unitary.Complex) error {
	fmt.Printf("phase(q%d, (%.3f, %.3f))\n", target, term.Real, term.Imag)
	return nil
}

func (p *printBackend) ApplyCompactUnitary(target int, alpha, beta unitary.Complex) error {
	fmt.Printf("compact(q%d, |alpha|²+|beta|²=%.3f)\n", target, alpha.Abs2()+beta.Abs2())
	return nil
}

func (p *printBackend) ApplyControlledCompactUnitary(control, target int, alpha, beta unitary.Complex) error {
	fmt.Printf("controlled(q%d→q%d)\n", control, target)
	return nil
}

// Example walks the full pipeline: a legal gate reaches the backend with
// certified parameters, an illegal one surfaces as a typed error and never
// touches amplitude storage.
func Example() {
	b := &printBackend{qubits: 2}

	_ = gates.SGate(b, 0)
	_ = gates.RotateX(b, 1, math.Pi/2)
	_ = gates.ControlledRotateZ(b, 0, 1, math.Pi/4)

	err := gates.RotateAroundAxis(b, 0, 1.0, unitary.Vector{}) // degenerate axis
	fmt.Println("degenerate axis:", errors.Is(err, qerr.InvalidRotation))

	// Output:
	// phase(q0, (0.000, 1.000))
	// compact(q1, |alpha|²+|beta|²=1.000)
	// controlled(q0→q1)
	// degenerate axis: true
}
