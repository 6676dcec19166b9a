package sha256

import "math/bits"

// referenceSum hashes a message given as bits, for lengths that are not a
// whole number of bytes.
func referenceSum(msg []bool) [8]uint32 {
	n := uint64(len(msg))
	padded := append([]bool{}, msg...)
	padded = append(padded, true)
	for len(padded)%BlockSize != 448 {
		padded = append(padded, false)
	}
	for i := 63; i >= 0; i-- {
		padded = append(padded, n>>i&1 == 1)
	}

	h := IV
	for off := 0; off < len(padded); off += BlockSize {
		var w [64]uint32
		for j := 0; j < 16; j++ {
			for _, b := range padded[off+32*j : off+32*j+32] {
				w[j] <<= 1
				if b {
					w[j] |= 1
				}
			}
		}
		referenceBlock(&h, &w)
	}
	return h
}

func referenceBlock(h *[8]uint32, w *[64]uint32) {
	for i := 16; i < 64; i++ {
		v1 := w[i-2]
		t1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
		v2 := w[i-15]
		t2 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3)
		w[i] = t1 + w[i-7] + t2 + w[i-16]
	}

	s := *h
	for i := 0; i < 64; i++ {
		_, _, s = referenceRound(s, w[i], i)
	}
	for j := range h {
		h[j] += s[j]
	}
}

func referenceRound(s [8]uint32, w uint32, i int) (t1, t2 uint32, next [8]uint32) {
	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]
	t1 = h + (bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
		((e & f) ^ (^e & g)) + K[i] + w
	t2 = (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
		((a & b) ^ (a & c) ^ (b & c))
	next = [8]uint32{t1 + t2, a, b, c, d + t1, e, f, g}
	return
}
