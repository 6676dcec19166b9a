package sha256

import (
	"github.com/PolyhedraZK/sha256-gf2/gf2"
	"github.com/PolyhedraZK/sha256-gf2/word"
)

// Ch returns (e & f) ^ (^e & g), computed as g ^ (e & (f ^ g)).
func Ch(api gf2.API, e, f, g word.Word) word.Word {
	return word.Xor(api, g, word.And(api, e, word.Xor(api, f, g)))
}

// Maj returns (a & b) ^ (a & c) ^ (b & c), computed as (a & b) ^ (c & (a ^ b)).
func Maj(api gf2.API, a, b, c word.Word) word.Word {
	return word.Xor(api, word.And(api, a, b), word.And(api, c, word.Xor(api, a, b)))
}

func xor3(api gf2.API, x, y, z word.Word) word.Word {
	return word.Xor(api, word.Xor(api, x, y), z)
}

// SmallSigma0 is ROTR7 ^ ROTR18 ^ SHR3.
func SmallSigma0(api gf2.API, x word.Word) word.Word {
	return xor3(api, word.RotateRight(x, 7), word.RotateRight(x, 18), word.ShiftRight(api, x, 3))
}

// SmallSigma1 is ROTR17 ^ ROTR19 ^ SHR10.
func SmallSigma1(api gf2.API, x word.Word) word.Word {
	return xor3(api, word.RotateRight(x, 17), word.RotateRight(x, 19), word.ShiftRight(api, x, 10))
}

// BigSigma0 is ROTR2 ^ ROTR13 ^ ROTR22.
func BigSigma0(api gf2.API, x word.Word) word.Word {
	return xor3(api, word.RotateRight(x, 2), word.RotateRight(x, 13), word.RotateRight(x, 22))
}

// BigSigma1 is ROTR6 ^ ROTR11 ^ ROTR25.
func BigSigma1(api gf2.API, x word.Word) word.Word {
	return xor3(api, word.RotateRight(x, 6), word.RotateRight(x, 11), word.RotateRight(x, 25))
}
