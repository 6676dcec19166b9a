package test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	gnarktest "github.com/consensys/gnark/test"

	"github.com/PolyhedraZK/sha256-gf2/builder"
)

// Solver checks an assignment against a compiled circuit, such as
// sha256gf2.CompileResult.
type Solver interface {
	IsSolved(assignment frontend.Circuit) error
}

type Assert struct {
	t *testing.T
}

func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t}
}

// SolvingSucceeded runs the circuit on the gnark test engine over BN254.
func (a *Assert) SolvingSucceeded(circuit, assignment frontend.Circuit) {
	a.t.Helper()
	if err := gnarktest.IsSolved(circuit, assignment, ecc.BN254.ScalarField()); err != nil {
		a.t.Fatalf("should succeed: %v", err)
	}
}

func (a *Assert) SolvingFailed(circuit, assignment frontend.Circuit) {
	a.t.Helper()
	if err := gnarktest.IsSolved(circuit, assignment, ecc.BN254.ScalarField()); err == nil {
		a.t.Fatal("should fail")
	}
}

// CheckSucceeded evaluates a recorded circuit and expects every equality
// constraint to hold.
func (a *Assert) CheckSucceeded(r *builder.Root, inputs []bool) {
	a.t.Helper()
	if err := r.Check(inputs); err != nil {
		a.t.Fatalf("should succeed: %v", err)
	}
}

func (a *Assert) CheckFailed(r *builder.Root, inputs []bool) {
	a.t.Helper()
	if err := r.Check(inputs); err == nil {
		a.t.Fatal("should fail")
	}
}

// ProveSucceeded checks an assignment against a compiled constraint system.
func (a *Assert) ProveSucceeded(cr Solver, assignment frontend.Circuit) {
	a.t.Helper()
	if err := cr.IsSolved(assignment); err != nil {
		a.t.Fatalf("should succeed: %v", err)
	}
}

func (a *Assert) ProveFailed(cr Solver, assignment frontend.Circuit) {
	a.t.Helper()
	if err := cr.IsSolved(assignment); err == nil {
		a.t.Fatal("should fail")
	}
}
