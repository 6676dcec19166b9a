package sha256

import (
	"fmt"

	"github.com/PolyhedraZK/sha256-gf2/gf2"
	u32adder "github.com/PolyhedraZK/sha256-gf2/u32_adder"
	"github.com/PolyhedraZK/sha256-gf2/word"
)

// State is the hash state H0..H7, or the working variables a..h of a block.
type State [8]word.Word

// InitialState returns IV as constant words.
func InitialState(api gf2.API) State {
	var s State
	for i, v := range IV {
		s[i] = word.Const(api, v)
	}
	return s
}

// Schedule expands one block into the 64 message schedule words.
func Schedule(api gf2.API, adder u32adder.Adder, mode Mode, block [16]word.Word) [64]word.Word {
	checkConfig(adder, mode)
	var w [64]word.Word
	copy(w[:16], block[:])
	for i := 16; i < 64; i++ {
		s1 := SmallSigma1(api, w[i-2])
		s0 := SmallSigma0(api, w[i-15])
		switch mode {
		case Direct:
			w[i] = adder.Add(api,
				adder.Add(api, s1, w[i-7]),
				adder.Add(api, s0, w[i-16]))
		case CarrySave:
			sum, carry := u32adder.AddCSA3(api, s1, w[i-7], s0)
			sum, carry = u32adder.AddCSA3(api, sum, carry, w[i-16])
			w[i] = adder.Add(api, sum, carry)
		default:
			panic(fmt.Sprintf("unknown compression mode %v", mode))
		}
	}
	return w
}

// Round applies compression round i to the working variables, with w the
// schedule word of that round.
func Round(api gf2.API, adder u32adder.Adder, mode Mode, s State, w word.Word, i int) State {
	checkConfig(adder, mode)
	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]

	wk := u32adder.AddConst(api, w, K[i])
	sigma1 := BigSigma1(api, e)
	ch := Ch(api, e, f, g)
	sigma0 := BigSigma0(api, a)
	maj := Maj(api, a, b, c)

	var newA, newE word.Word
	switch mode {
	case Direct:
		t1 := u32adder.SumAll(api, adder, []word.Word{h, sigma1, ch, wk})
		t2 := adder.Add(api, sigma0, maj)
		newE = adder.Add(api, d, t1)
		newA = adder.Add(api, t1, t2)
	case CarrySave:
		// h + wk + sigma1 is shared by both outputs
		sum1, carry1 := u32adder.AddCSA3(api, h, wk, sigma1)
		sum2, carry2 := u32adder.AddCSA3(api, ch, sigma0, maj)

		sum3, carry3 := u32adder.AddCSA3(api, sum1, carry1, sum2)
		sum4, carry4 := u32adder.AddCSA3(api, sum3, carry3, carry2)
		newA = adder.Add(api, sum4, carry4)

		sum5, carry5 := u32adder.AddCSA3(api, d, ch, sum1)
		sum6, carry6 := u32adder.AddCSA3(api, carry1, sum5, carry5)
		newE = adder.Add(api, sum6, carry6)
	default:
		panic(fmt.Sprintf("unknown compression mode %v", mode))
	}

	return State{newA, a, b, c, newE, e, f, g}
}

// Compress absorbs one 512-bit block into the state and returns the new state.
func Compress(api gf2.API, adder u32adder.Adder, mode Mode, state State, block [16]word.Word) State {
	checkConfig(adder, mode)
	w := Schedule(api, adder, mode, block)
	s := state
	for i := 0; i < 64; i++ {
		s = Round(api, adder, mode, s, w[i], i)
	}
	for j := range state {
		state[j] = adder.Add(api, state[j], s[j])
	}
	return state
}
