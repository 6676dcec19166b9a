// Package sha256gf2 compiles circuits built from the boolean gadgets of this
// module to gnark R1CS and checks assignments against the compiled system.
package sha256gf2

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/logger"
)

// CompileResult holds a compiled constraint system.
type CompileResult struct {
	field *big.Int
	ccs   constraint.ConstraintSystem
}

// Stats summarizes the size of a compiled constraint system.
type Stats struct {
	NbConstraints int
	NbInternal    int
	NbPublic      int
	NbSecret      int
}

// Compile is similar to gnark's frontend.Compile with the R1CS builder. It
// compiles the given circuit and logs the size of the result.
func Compile(field *big.Int, circuit frontend.Circuit, opts ...frontend.CompileOption) (*CompileResult, error) {
	log := logger.Logger()
	log.Info().Msg("compiling circuit")

	ccs, err := frontend.Compile(field, r1cs.NewBuilder, circuit, opts...)
	if err != nil {
		log.Err(err).Msg("compiling circuit")
		return nil, fmt.Errorf("compile circuit: %w", err)
	}
	res := &CompileResult{
		field: field,
		ccs:   ccs,
	}
	stats := res.Stats()
	log.Info().
		Int("nbConstraints", stats.NbConstraints).
		Int("nbInternal", stats.NbInternal).
		Int("nbPublic", stats.NbPublic).
		Int("nbSecret", stats.NbSecret).
		Msg("compiled")
	return res, nil
}

// GetConstraintSystem returns the compiled constraint system.
func (c *CompileResult) GetConstraintSystem() constraint.ConstraintSystem {
	return c.ccs
}

// Stats returns the size of the compiled constraint system.
func (c *CompileResult) Stats() Stats {
	return Stats{
		NbConstraints: c.ccs.GetNbConstraints(),
		NbInternal:    c.ccs.GetNbInternalVariables(),
		NbPublic:      c.ccs.GetNbPublicVariables(),
		NbSecret:      c.ccs.GetNbSecretVariables(),
	}
}

// IsSolved builds the full witness of assignment and checks every constraint.
func (c *CompileResult) IsSolved(assignment frontend.Circuit) error {
	w, err := frontend.NewWitness(assignment, c.field)
	if err != nil {
		return fmt.Errorf("build witness: %w", err)
	}
	if err := c.ccs.IsSolved(w); err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	return nil
}
