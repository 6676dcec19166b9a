package u32adder

import (
	"github.com/PolyhedraZK/sha256-gf2/gf2"
	"github.com/PolyhedraZK/sha256-gf2/word"
)

// HanCarlson runs the Kogge-Stone network on even positions only and fixes
// up each odd position with one extra combine at the end.
type HanCarlson struct{}

func (HanCarlson) Name() string { return "han-carlson" }

func (HanCarlson) Add(api gf2.API, a, b word.Word) word.Word {
	gp := GeneratePropagate(api, a, b)
	prefix := gp

	// pair each even position with the odd one below it
	for i := 2; i < word.Size; i += 2 {
		prefix[i] = Combine(api, gp[i], gp[i-1])
	}

	for gap := 2; gap < word.Size; gap <<= 1 {
		last := gap<<1 >= word.Size
		next := prefix
		for i := gap; i < word.Size; i += 2 {
			if last {
				next[i] = combineG(api, prefix[i], prefix[i-gap])
			} else {
				next[i] = Combine(api, prefix[i], prefix[i-gap])
			}
		}
		prefix = next
	}

	// the top position's group generate is the carry out, which is dropped
	for i := 1; i < word.Size-1; i += 2 {
		prefix[i] = combineG(api, gp[i], prefix[i-1])
	}
	return sumBits(api, gp, prefix)
}
