package builder

import (
	"errors"
	"fmt"

	"github.com/PolyhedraZK/sha256-gf2/gf2"
)

// ErrInputLength is returned when an assignment does not cover every input.
var ErrInputLength = errors.New("builder: input length mismatch")

// Evaluation holds the value of every recorded signal under one assignment.
type Evaluation struct {
	r      *Root
	values []bool
}

// Eval computes every signal from the given input assignment, in input
// allocation order.
func (r *Root) Eval(inputs []bool) (*Evaluation, error) {
	if len(inputs) != len(r.inputs) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInputLength, len(inputs), len(r.inputs))
	}
	values := make([]bool, len(r.gates))
	for i, id := range r.inputs {
		values[id] = inputs[i]
	}
	// gates are recorded in topological order
	for i, g := range r.gates {
		switch g.op {
		case OpConst:
			values[i] = g.value
		case OpXor:
			values[i] = values[g.in0] != values[g.in1]
		case OpAnd:
			values[i] = values[g.in0] && values[g.in1]
		}
	}
	return &Evaluation{r: r, values: values}, nil
}

// Bit returns the value of v.
func (e *Evaluation) Bit(v gf2.Variable) bool {
	return e.values[e.r.toID(v)]
}

// Bits returns the values of vs.
func (e *Evaluation) Bits(vs []gf2.Variable) []bool {
	res := make([]bool, len(vs))
	for i, v := range vs {
		res[i] = e.Bit(v)
	}
	return res
}

// Uint packs up to 64 signals into an integer, first signal most significant.
func (e *Evaluation) Uint(vs []gf2.Variable) uint64 {
	if len(vs) > 64 {
		panic("builder: too many bits for Uint")
	}
	var res uint64
	for _, v := range vs {
		res <<= 1
		if e.Bit(v) {
			res |= 1
		}
	}
	return res
}

// Outputs returns the values of the marked outputs.
func (e *Evaluation) Outputs() []bool {
	res := make([]bool, len(e.r.outputs))
	for i, id := range e.r.outputs {
		res[i] = e.values[id]
	}
	return res
}

// Check returns an error naming the first violated equality constraint.
func (e *Evaluation) Check() error {
	for i, a := range e.r.asserts {
		if e.values[a[0]] != e.values[a[1]] {
			return fmt.Errorf("builder: assertion %d failed: %v != %v", i, e.values[a[0]], e.values[a[1]])
		}
	}
	return nil
}

// Check evaluates the circuit and verifies all equality constraints.
func (r *Root) Check(inputs []bool) error {
	e, err := r.Eval(inputs)
	if err != nil {
		return err
	}
	return e.Check()
}
