package sha256gf2

import (
	"fmt"

	"github.com/consensys/gnark/frontend"

	"github.com/PolyhedraZK/sha256-gf2/circuits/sha256"
	"github.com/PolyhedraZK/sha256-gf2/gf2"
)

// HashCircuit proves knowledge of a message with a public SHA-256 digest.
// Message bits and digest bits are most significant bit first.
type HashCircuit struct {
	Message []frontend.Variable
	Digest  [sha256.Size]frontend.Variable `gnark:",public"`

	opts []sha256.Option
}

// NewHashCircuit returns a circuit definition for messages of nbBits bits.
func NewHashCircuit(nbBits int, opts ...sha256.Option) *HashCircuit {
	return &HashCircuit{
		Message: make([]frontend.Variable, nbBits),
		opts:    opts,
	}
}

func (c *HashCircuit) Define(api frontend.API) error {
	d := sha256.New(gf2.NewBinary(api), c.opts...)
	d.Write(c.Message...)
	out := d.Sum()
	for i := range out {
		api.AssertIsEqual(out[i], c.Digest[i])
	}
	return nil
}

// NewHashAssignment returns an assignment of a message and its claimed digest.
func NewHashAssignment(message []byte, digest []byte) (*HashCircuit, error) {
	if len(digest) != sha256.Size/8 {
		return nil, fmt.Errorf("digest must be %d bytes, got %d", sha256.Size/8, len(digest))
	}
	res := &HashCircuit{
		Message: bytesToVariables(message),
	}
	copy(res.Digest[:], bytesToVariables(digest))
	return res, nil
}

func bytesToVariables(b []byte) []frontend.Variable {
	res := make([]frontend.Variable, 0, 8*len(b))
	for _, x := range b {
		for i := 7; i >= 0; i-- {
			res = append(res, x>>i&1)
		}
	}
	return res
}
