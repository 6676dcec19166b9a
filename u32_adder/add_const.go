package u32adder

import (
	"github.com/PolyhedraZK/sha256-gf2/gf2"
	"github.com/PolyhedraZK/sha256-gf2/word"
)

// AddConst returns (w + k) mod 2^32. It is a ripple adder specialised to a
// known operand: a zero bit of k costs at most one AND and one XOR, a one
// bit at most one AND and two XORs.
func AddConst(api gf2.API, w word.Word, k uint32) word.Word {
	var sum word.Word
	// nil while the carry is known to be zero
	var carry gf2.Variable
	for i := word.Size - 1; i >= 0; i-- {
		bit := k>>(word.Size-1-i)&1 == 1
		needCarry := i > 0
		switch {
		case carry == nil && !bit:
			sum[i] = w[i]
		case carry == nil && bit:
			sum[i] = api.Xor(w[i], api.Constant(1))
			if needCarry {
				carry = w[i]
			}
		case !bit:
			sum[i] = api.Xor(w[i], carry)
			if needCarry {
				carry = api.And(carry, w[i])
			}
		default:
			p := api.Xor(w[i], api.Constant(1))
			sum[i] = api.Xor(p, carry)
			if needCarry {
				carry = api.Xor(api.And(carry, p), w[i])
			}
		}
	}
	return sum
}
