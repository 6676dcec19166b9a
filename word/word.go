// Package word implements 32-bit words of boolean signals and the gate-level
// primitives SHA-256 is built from. Index 0 of a Word is the most significant bit.
package word

import (
	"fmt"

	"github.com/PolyhedraZK/sha256-gf2/gf2"
)

// Size is the number of bits in a Word.
const Size = 32

// Word is a big-endian 32-bit word of boolean signals.
type Word [Size]gf2.Variable

// Const returns the big-endian bit decomposition of v as constant signals.
func Const(api gf2.API, v uint32) Word {
	var w Word
	for i := 0; i < Size; i++ {
		w[i] = api.Constant(uint(v>>(Size-1-i)) & 1)
	}
	return w
}

// FromBits copies exactly 32 signals into a Word.
func FromBits(bits []gf2.Variable) Word {
	if len(bits) != Size {
		panic(fmt.Sprintf("word: expected %d bits, got %d", Size, len(bits)))
	}
	var w Word
	copy(w[:], bits)
	return w
}

// Bits returns the signals of w as a slice.
func (w Word) Bits() []gf2.Variable {
	res := make([]gf2.Variable, Size)
	copy(res, w[:])
	return res
}

// Reverse returns w with its bit order reversed.
func (w Word) Reverse() Word {
	var r Word
	for i := 0; i < Size; i++ {
		r[i] = w[Size-1-i]
	}
	return r
}

// Xor returns a ^ b.
func Xor(api gf2.API, a, b Word) Word {
	var res Word
	for i := 0; i < Size; i++ {
		res[i] = api.Xor(a[i], b[i])
	}
	return res
}

// And returns a & b.
func And(api gf2.API, a, b Word) Word {
	var res Word
	for i := 0; i < Size; i++ {
		res[i] = api.And(a[i], b[i])
	}
	return res
}

// Not returns ^a, one XOR with the constant one per bit.
func Not(api gf2.API, a Word) Word {
	one := api.Constant(1)
	var res Word
	for i := 0; i < Size; i++ {
		res[i] = api.Xor(a[i], one)
	}
	return res
}

func checkOffset(k int) {
	if k < 0 || k >= Size {
		panic(fmt.Sprintf("word: offset %d out of range [0,%d)", k, Size))
	}
}

// RotateRight returns ROTR^k(w). It only reorders signals and allocates no gates.
func RotateRight(w Word, k int) Word {
	checkOffset(k)
	var res Word
	for i := 0; i < Size; i++ {
		res[i] = w[(i-k+Size)%Size]
	}
	return res
}

// ShiftRight returns w >> k; the k most significant bits are zero constants.
func ShiftRight(api gf2.API, w Word, k int) Word {
	checkOffset(k)
	var res Word
	for i := 0; i < k; i++ {
		res[i] = api.Constant(0)
	}
	copy(res[k:], w[:Size-k])
	return res
}

// ShiftLeft returns w << k; the k least significant bits are zero constants.
func ShiftLeft(api gf2.API, w Word, k int) Word {
	checkOffset(k)
	var res Word
	copy(res[:Size-k], w[k:])
	for i := Size - k; i < Size; i++ {
		res[i] = api.Constant(0)
	}
	return res
}
