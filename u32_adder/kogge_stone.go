package u32adder

import (
	"github.com/PolyhedraZK/sha256-gf2/gf2"
	"github.com/PolyhedraZK/sha256-gf2/word"
)

// KoggeStone is a log-depth prefix adder. Each level combines position i with
// position i-gap and leaves positions below gap untouched.
type KoggeStone struct{}

func (KoggeStone) Name() string { return "kogge-stone" }

func (KoggeStone) Add(api gf2.API, a, b word.Word) word.Word {
	gp := GeneratePropagate(api, a, b)
	prefix := gp
	for gap := 1; gap < word.Size; gap <<= 1 {
		last := gap<<1 >= word.Size
		next := prefix
		for i := gap; i < word.Size; i++ {
			if last {
				next[i] = combineG(api, prefix[i], prefix[i-gap])
			} else {
				next[i] = Combine(api, prefix[i], prefix[i-gap])
			}
		}
		prefix = next
	}
	return sumBits(api, gp, prefix)
}

// KoggeStoneParallel is the Kogge-Stone network applied uniformly to whole
// words: every level shifts G and P by the gap and combines all 32 positions,
// feeding the identity (G=0, P=1) into vacated positions. All gates of a
// level are independent, which maps well onto layered circuits.
type KoggeStoneParallel struct{}

func (KoggeStoneParallel) Name() string { return "kogge-stone-parallel" }

func (KoggeStoneParallel) Add(api gf2.API, a, b word.Word) word.Word {
	g := word.And(api, a, b)
	p := word.Xor(api, a, b)

	G, P := g, p
	for shift := 1; shift < word.Size; shift <<= 1 {
		G, P = prefixStep(api, G, P, shift)
	}
	return word.Xor(api, p, word.ShiftLeft(api, G, 1))
}

func prefixStep(api gf2.API, G, P word.Word, shift int) (word.Word, word.Word) {
	shiftedG := word.ShiftLeft(api, G, shift)
	shiftedP := shiftLeftOnes(api, P, shift)
	nextG := word.Xor(api, G, word.And(api, P, shiftedG))
	nextP := word.And(api, P, shiftedP)
	return nextG, nextP
}

func shiftLeftOnes(api gf2.API, w word.Word, k int) word.Word {
	res := word.ShiftLeft(api, w, k)
	one := api.Constant(1)
	for i := word.Size - k; i < word.Size; i++ {
		res[i] = one
	}
	return res
}
