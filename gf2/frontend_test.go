package gf2

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/assert"
)

type xorAndCircuit struct {
	X, Y     frontend.Variable
	Xor, And frontend.Variable
	NotX     frontend.Variable
}

func (c *xorAndCircuit) Define(api frontend.API) error {
	b := NewBinary(api)
	b.AssertIsEqual(b.Xor(c.X, c.Y), c.Xor)
	b.AssertIsEqual(b.And(c.X, c.Y), c.And)
	b.AssertIsEqual(b.Xor(c.X, b.Constant(1)), c.NotX)
	return nil
}

func TestBinary(t *testing.T) {
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			good := &xorAndCircuit{X: x, Y: y, Xor: x ^ y, And: x & y, NotX: 1 - x}
			assert.NoError(t, test.IsSolved(&xorAndCircuit{}, good, ecc.BN254.ScalarField()))

			bad := &xorAndCircuit{X: x, Y: y, Xor: 1 ^ x ^ y, And: x & y, NotX: 1 - x}
			assert.Error(t, test.IsSolved(&xorAndCircuit{}, bad, ecc.BN254.ScalarField()))
		}
	}
}

// recordingAPI records which field operations the GF(2) binding uses.
type recordingAPI struct {
	frontend.API
	calls []string
}

func (r *recordingAPI) Add(i1, i2 frontend.Variable, in ...frontend.Variable) frontend.Variable {
	r.calls = append(r.calls, "add")
	return i1.(int) ^ i2.(int)
}

func (r *recordingAPI) Mul(i1, i2 frontend.Variable, in ...frontend.Variable) frontend.Variable {
	r.calls = append(r.calls, "mul")
	return i1.(int) & i2.(int)
}

func (r *recordingAPI) AssertIsEqual(i1, i2 frontend.Variable) {
	r.calls = append(r.calls, "assert")
}

func TestField(t *testing.T) {
	rec := &recordingAPI{}
	f := NewField(rec)

	assert.Equal(t, 1, f.Xor(1, 0))
	assert.Equal(t, 0, f.Xor(1, 1))
	assert.Equal(t, 1, f.And(1, 1))
	assert.Equal(t, 0, f.And(1, 0))
	f.AssertIsEqual(1, 1)
	assert.Equal(t, []string{"add", "add", "mul", "mul", "assert"}, rec.calls)

	assert.Equal(t, uint(1), f.Constant(3))
	assert.Equal(t, uint(0), f.Constant(2))
}
