package qerr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAssert_Holds verifies the success path returns nil.
func TestAssert_Holds(t *testing.T) {
	require.NoError(t, Assert(true, InvalidUnitary, "CompactUnitary"))
}

// TestAssert_Fails verifies the typed error carries code and operation and
// matches both a bare Code and a same-code *Error via errors.Is.
func TestAssert_Fails(t *testing.T) {
	err := Assert(false, ControlEqualsTarget, "ControlledRotateX")
	require.Error(t, err)

	var e *Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, ControlEqualsTarget, e.Code)
	require.Equal(t, "ControlledRotateX", e.Op)

	require.True(t, errors.Is(err, ControlEqualsTarget))
	require.False(t, errors.Is(err, InvalidUnitary))
	require.True(t, errors.Is(err, &Error{Code: ControlEqualsTarget}))
	require.Contains(t, err.Error(), "Control qubit cannot equal target qubit.")
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns what
// was written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

// TestExit_Banner swaps the exit hook and checks the fixed three-line banner
// plus the chosen status.
func TestExit_Banner(t *testing.T) {
	status := -1
	exit = func(code int) { status = code }
	defer func() { exit = os.Exit }()

	out := captureStdout(t, func() {
		AssertOrExit(false, InvalidRotation, "RotateAroundAxis")
	})

	require.Equal(t, 6, status)
	require.Equal(t,
		"!!!\nQuEST Error in function RotateAroundAxis: Invalid rotation arguments.\n!!!\nexiting..\n",
		out)
}

// TestExit_NilAndSuccessPaths verifies no-ops: nil error and a holding
// assertion must not touch the exit hook.
func TestExit_NilAndSuccessPaths(t *testing.T) {
	exit = func(code int) { t.Fatalf("exit(%d) called", code) }
	defer func() { exit = os.Exit }()

	Exit(nil)
	AssertOrExit(true, InvalidTarget, "SigmaZ")
}

// TestAssertOrExit_Process re-runs the test binary and checks the real
// process contract: a false condition with code 3 terminates with exit
// status 3 and prints the control-equals-target message.
func TestAssertOrExit_Process(t *testing.T) {
	if os.Getenv("QERR_CRASH") == "1" {
		AssertOrExit(false, ControlEqualsTarget, "ControlledRotateZ")
		fmt.Println("unreachable")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestAssertOrExit_Process")
	cmd.Env = append(os.Environ(), "QERR_CRASH=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected a non-zero exit, got err=%v out=%s", err, out)
	require.Equal(t, 3, exitErr.ExitCode())
	require.Contains(t, string(out), "QuEST Error in function ControlledRotateZ: Control qubit cannot equal target qubit.")
	require.False(t, strings.Contains(string(out), "unreachable"), "AssertOrExit must not return")
}
