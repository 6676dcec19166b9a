// Package sha256 builds the SHA-256 hash function as a boolean circuit of XOR
// and AND gates.
//
// Messages are sequences of bit signals of any length, not only whole bytes:
//
//	d := sha256.New(api, sha256.WithAdder(u32adder.HanCarlson{}))
//	d.Write(bits...)
//	digest := d.Sum()
//
// The digest is 256 signals, H0 first, each word most significant bit first.
package sha256

import (
	"github.com/PolyhedraZK/sha256-gf2/gf2"
	"github.com/PolyhedraZK/sha256-gf2/word"
)

// Digest accumulates message bits and builds the hash circuit on Sum.
// A Digest is single use.
type Digest struct {
	api  gf2.API
	cfg  config
	data []gf2.Variable
	done bool
}

// New returns an empty Digest building its gates through api.
func New(api gf2.API, opts ...Option) *Digest {
	d := &Digest{
		api: api,
		cfg: defaultConfig(),
	}
	for _, o := range opts {
		o(&d.cfg)
	}
	checkConfig(d.cfg.adder, d.cfg.mode)
	return d
}

// Write appends message bits.
func (d *Digest) Write(bits ...gf2.Variable) {
	if d.done {
		panic("sha256: Write after Sum")
	}
	d.data = append(d.data, bits...)
}

// WriteBytes appends known bytes as constant bits.
func (d *Digest) WriteBytes(b []byte) {
	bits := make([]gf2.Variable, 0, 8*len(b))
	for _, x := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, d.api.Constant(uint(x>>i)&1))
		}
	}
	d.Write(bits...)
}

// Len returns the number of message bits written so far.
func (d *Digest) Len() int {
	return len(d.data)
}

// Sum pads the message, compresses every block and returns the digest bits.
func (d *Digest) Sum() []gf2.Variable {
	if d.done {
		panic("sha256: Sum called twice")
	}
	d.done = true

	msg := pad(d.api, d.data)
	state := InitialState(d.api)
	for off := 0; off < len(msg); off += BlockSize {
		var block [16]word.Word
		for j := range block {
			start := off + j*word.Size
			block[j] = word.FromBits(msg[start : start+word.Size])
		}
		state = Compress(d.api, d.cfg.adder, d.cfg.mode, state, block)
	}

	res := make([]gf2.Variable, 0, Size)
	for _, w := range state {
		res = append(res, w[:]...)
	}
	return res
}

// pad returns msg || 1 || 0* || len64 with a length that is a multiple of BlockSize.
func pad(api gf2.API, msg []gf2.Variable) []gf2.Variable {
	n := len(msg)
	zeros := (BlockSize + 448 - (n+1)%BlockSize) % BlockSize

	res := make([]gf2.Variable, 0, n+1+zeros+64)
	res = append(res, msg...)
	res = append(res, api.Constant(1))
	for i := 0; i < zeros; i++ {
		res = append(res, api.Constant(0))
	}
	length := uint64(n)
	for i := 63; i >= 0; i-- {
		res = append(res, api.Constant(uint(length>>i)&1))
	}
	return res
}
