package word

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolyhedraZK/sha256-gf2/builder"
	"github.com/PolyhedraZK/sha256-gf2/test"
)

func TestWordOps(t *testing.T) {
	r := builder.NewRoot()
	a := FromBits(r.Inputs(Size))
	b := FromBits(r.Inputs(Size))

	xor := Xor(r, a, b)
	and := And(r, a, b)
	not := Not(r, a)
	rotr := make(map[int]Word)
	shr := make(map[int]Word)
	shl := make(map[int]Word)
	for k := 0; k < Size; k++ {
		rotr[k] = RotateRight(a, k)
		shr[k] = ShiftRight(r, a, k)
		shl[k] = ShiftLeft(r, a, k)
	}
	konst := Const(r, 0x6a09e667)
	rev := a.Reverse()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		x, y := rng.Uint32(), rng.Uint32()
		e, err := r.Eval(test.Uint32sToBools(x, y))
		require.NoError(t, err)
		val := func(w Word) uint32 { return uint32(e.Uint(w.Bits())) }

		assert.Equal(t, x^y, val(xor))
		assert.Equal(t, x&y, val(and))
		assert.Equal(t, ^x, val(not))
		for k := range rotr {
			assert.Equal(t, bits.RotateLeft32(x, -k), val(rotr[k]), "rotr %d", k)
			assert.Equal(t, x>>k, val(shr[k]), "shr %d", k)
			assert.Equal(t, x<<k, val(shl[k]), "shl %d", k)
		}
		assert.Equal(t, uint32(0x6a09e667), val(konst))
		assert.Equal(t, bits.Reverse32(x), val(rev))
	}
}

func TestRotateAllocatesNoGates(t *testing.T) {
	r := builder.NewRoot()
	a := FromBits(r.Inputs(Size))
	before := r.NbGates()
	for k := 0; k < Size; k++ {
		RotateRight(a, k)
	}
	assert.Equal(t, before, r.NbGates())
}

func TestMisuse(t *testing.T) {
	r := builder.NewRoot()
	assert.Panics(t, func() { FromBits(r.Inputs(31)) })
	a := FromBits(r.Inputs(Size))
	assert.Panics(t, func() { RotateRight(a, 32) })
	assert.Panics(t, func() { ShiftRight(r, a, -1) })
	assert.Panics(t, func() { ShiftLeft(r, a, 32) })
}
