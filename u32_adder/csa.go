package u32adder

import (
	"github.com/PolyhedraZK/sha256-gf2/gf2"
	"github.com/PolyhedraZK/sha256-gf2/word"
)

// AddCSA3 reduces three words to a sum word and a carry word with no carry
// propagation: a + b + c = sum + carry (mod 2^32).
func AddCSA3(api gf2.API, a, b, c word.Word) (sum, carry word.Word) {
	for i := 0; i < word.Size; i++ {
		ab := api.Xor(a[i], b[i])
		sum[i] = api.Xor(ab, c[i])
		// the majority of the top bit would be shifted out
		if i > 0 {
			bc := api.Xor(b[i], c[i])
			carry[i-1] = api.Xor(b[i], api.And(ab, bc))
		}
	}
	carry[word.Size-1] = api.Constant(0)
	return sum, carry
}

// SumAll adds all words by folding the upper half onto the lower half until
// one word remains.
func SumAll(api gf2.API, adder Adder, words []word.Word) word.Word {
	if len(words) == 0 {
		panic("SumAll needs at least one word")
	}
	v := make([]word.Word, len(words))
	copy(v, words)
	for len(v) > 1 {
		half := len(v) / 2
		for i := 0; i < half; i++ {
			v[i] = adder.Add(api, v[i], v[i+half])
		}
		if len(v)%2 == 1 {
			v[half] = v[len(v)-1]
			v = v[:half+1]
		} else {
			v = v[:half]
		}
	}
	return v[0]
}

// Wallace reduces the words with carry-save adders until two remain, then
// performs a single carry-propagating addition.
func Wallace(api gf2.API, adder Adder, words []word.Word) word.Word {
	if len(words) == 0 {
		panic("Wallace needs at least one word")
	}
	v := make([]word.Word, len(words))
	copy(v, words)
	for len(v) > 2 {
		next := make([]word.Word, 0, len(v)*2/3+2)
		i := 0
		for ; i+3 <= len(v); i += 3 {
			s, c := AddCSA3(api, v[i], v[i+1], v[i+2])
			next = append(next, s, c)
		}
		next = append(next, v[i:]...)
		v = next
	}
	if len(v) == 1 {
		return v[0]
	}
	return adder.Add(api, v[0], v[1])
}
