package u32adder

import (
	"github.com/PolyhedraZK/sha256-gf2/gf2"
	"github.com/PolyhedraZK/sha256-gf2/word"
)

// GP is a generate/propagate pair of a bit group.
type GP struct {
	G gf2.Variable
	P gf2.Variable
}

// GeneratePropagate returns g = a&b and p = a^b for every bit, least
// significant bit first.
func GeneratePropagate(api gf2.API, a, b word.Word) [word.Size]GP {
	var res [word.Size]GP
	for i := 0; i < word.Size; i++ {
		j := word.Size - 1 - i
		res[i] = GP{
			G: api.And(a[j], b[j]),
			P: api.Xor(a[j], b[j]),
		}
	}
	return res
}

// Combine merges the pair of a more significant group with the pair of the
// group directly below it. g_hi and p_hi&g_lo never both hold, so XOR
// stands in for OR.
func Combine(api gf2.API, hi, lo GP) GP {
	return GP{
		G: api.Xor(hi.G, api.And(hi.P, lo.G)),
		P: api.And(hi.P, lo.P),
	}
}

// combineG is Combine without the propagate term.
func combineG(api gf2.API, hi, lo GP) GP {
	return GP{
		G: api.Xor(hi.G, api.And(hi.P, lo.G)),
	}
}

// sumBits builds the result word from the bit propagates and the group
// generates, where prefix[i].G covers bits [0, i]. The carry into bit 0 is zero.
func sumBits(api gf2.API, gp, prefix [word.Size]GP) word.Word {
	var res word.Word
	res[word.Size-1] = gp[0].P
	for i := 1; i < word.Size; i++ {
		res[word.Size-1-i] = api.Xor(gp[i].P, prefix[i-1].G)
	}
	return res
}
