package u32adder

import (
	"github.com/PolyhedraZK/sha256-gf2/gf2"
	"github.com/PolyhedraZK/sha256-gf2/word"
)

const blockSize = 4

// BrentKung splits the word into 4-bit blocks with a closed-form local prefix
// and chains the block carries.
type BrentKung struct{}

func (BrentKung) Name() string { return "brent-kung" }

func (BrentKung) Add(api gf2.API, a, b word.Word) word.Word {
	sum, _ := brentKung32(api, a, b, nil)
	return sum
}

// AddWithCarry returns a + b + cin and the carry out of the most significant bit.
func AddWithCarry(api gf2.API, a, b word.Word, cin gf2.Variable) (word.Word, gf2.Variable) {
	if cin == nil {
		panic("carry in must not be nil")
	}
	return brentKung32(api, a, b, cin)
}

// brentKung32 treats a nil carry as a known zero.
func brentKung32(api gf2.API, a, b word.Word, cin gf2.Variable) (word.Word, gf2.Variable) {
	gp := GeneratePropagate(api, a, b)

	var sum word.Word
	carry := cin
	for start := 0; start < word.Size; start += blockSize {
		var block [blockSize]GP
		copy(block[:], gp[start:start+blockSize])

		var s [blockSize]gf2.Variable
		s, carry = brentKung4(api, block, carry)
		for j := 0; j < blockSize; j++ {
			sum[word.Size-1-start-j] = s[j]
		}
	}
	return sum, carry
}

// brentKung4 adds one block, least significant bit first.
func brentKung4(api gf2.API, gp [blockSize]GP, cin gf2.Variable) ([blockSize]gf2.Variable, gf2.Variable) {
	xor := api.Xor
	and := api.And

	g10 := xor(gp[1].G, and(gp[1].P, gp[0].G))
	g20 := xor(gp[2].G, and(gp[2].P, g10))
	g30 := xor(gp[3].G, and(gp[3].P, g20))

	var c [blockSize + 1]gf2.Variable
	if cin == nil {
		c[1], c[2], c[3], c[4] = gp[0].G, g10, g20, g30
	} else {
		p0p1 := and(gp[0].P, gp[1].P)
		p2p3 := and(gp[2].P, gp[3].P)
		c[0] = cin
		c[1] = xor(gp[0].G, and(gp[0].P, cin))
		c[2] = xor(g10, and(p0p1, cin))
		c[3] = xor(g20, and(p0p1, and(gp[2].P, cin)))
		c[4] = xor(g30, and(and(p0p1, p2p3), cin))
	}

	var sum [blockSize]gf2.Variable
	for i := 0; i < blockSize; i++ {
		if c[i] == nil {
			sum[i] = gp[i].P
		} else {
			sum[i] = xor(gp[i].P, c[i])
		}
	}
	return sum, c[blockSize]
}
