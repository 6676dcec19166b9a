package u32adder

import (
	"github.com/PolyhedraZK/sha256-gf2/gf2"
	"github.com/PolyhedraZK/sha256-gf2/word"
)

// Ripple chains full adders from the least significant bit.
// It has the fewest gates and a depth linear in the word size.
type Ripple struct{}

func (Ripple) Name() string { return "ripple" }

func (Ripple) Add(api gf2.API, a, b word.Word) word.Word {
	var sum word.Word
	last := word.Size - 1

	sum[last] = api.Xor(a[last], b[last])
	carry := api.And(a[last], b[last])
	for i := last - 1; i >= 0; i-- {
		if i == 0 {
			sum[i] = api.Xor(api.Xor(a[i], b[i]), carry)
			break
		}
		sum[i], carry = fullAdder(api, a[i], b[i], carry)
	}
	return sum
}

// fullAdder uses a single AND: cout = cin ^ ((a^cin) & (b^cin)).
func fullAdder(api gf2.API, a, b, cin gf2.Variable) (s, cout gf2.Variable) {
	ac := api.Xor(a, cin)
	bc := api.Xor(b, cin)
	s = api.Xor(ac, b)
	cout = api.Xor(cin, api.And(ac, bc))
	return
}
