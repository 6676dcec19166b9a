package test

import (
	"github.com/consensys/gnark/frontend"
)

// Uint32ToBools returns the bits of v, most significant first.
func Uint32ToBools(v uint32) []bool {
	res := make([]bool, 32)
	for i := range res {
		res[i] = v>>(31-i)&1 == 1
	}
	return res
}

// Uint32sToBools concatenates the bits of every value.
func Uint32sToBools(vs ...uint32) []bool {
	res := make([]bool, 0, 32*len(vs))
	for _, v := range vs {
		res = append(res, Uint32ToBools(v)...)
	}
	return res
}

// BytesToBools returns the bits of b, most significant bit of each byte first.
func BytesToBools(b []byte) []bool {
	res := make([]bool, 0, 8*len(b))
	for _, x := range b {
		for i := 7; i >= 0; i-- {
			res = append(res, x>>i&1 == 1)
		}
	}
	return res
}

// BoolsToBytes packs bits into bytes, most significant bit first. The last
// byte is zero-padded.
func BoolsToBytes(bits []bool) []byte {
	res := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			res[i/8] |= 0x80 >> (i % 8)
		}
	}
	return res
}

// BoolsToVariables converts bits into gnark assignment values.
func BoolsToVariables(bits []bool) []frontend.Variable {
	res := make([]frontend.Variable, len(bits))
	for i, b := range bits {
		if b {
			res[i] = 1
		} else {
			res[i] = 0
		}
	}
	return res
}

// Uint32ToVariables returns the bits of v as gnark assignment values, most
// significant first.
func Uint32ToVariables(v uint32) [32]frontend.Variable {
	var res [32]frontend.Variable
	copy(res[:], BoolsToVariables(Uint32ToBools(v)))
	return res
}
