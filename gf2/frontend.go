package gf2

import "github.com/consensys/gnark/frontend"

// binaryAPI maps the primitives onto gnark's boolean operations. It is
// correct over any field gnark supports, at the price of one constraint per gate.
type binaryAPI struct {
	api frontend.API
}

// NewBinary wraps a gnark frontend.API using its Xor/And boolean operations.
func NewBinary(api frontend.API) API {
	return &binaryAPI{api: api}
}

func (b *binaryAPI) Constant(v uint) Variable {
	return v & 1
}

func (b *binaryAPI) Xor(x, y Variable) Variable {
	return b.api.Xor(x, y)
}

func (b *binaryAPI) And(x, y Variable) Variable {
	return b.api.And(x, y)
}

func (b *binaryAPI) AssertIsEqual(x, y Variable) {
	b.api.AssertIsEqual(x, y)
}

// fieldAPI maps the primitives onto field arithmetic. In GF(2) addition is XOR
// and multiplication is AND, so this is only sound when the builder's field has
// characteristic two (e.g. the Expander GF2 config).
type fieldAPI struct {
	api frontend.API
}

// NewField wraps a frontend.API whose native field is GF(2).
func NewField(api frontend.API) API {
	return &fieldAPI{api: api}
}

func (f *fieldAPI) Constant(v uint) Variable {
	return v & 1
}

func (f *fieldAPI) Xor(x, y Variable) Variable {
	return f.api.Add(x, y)
}

func (f *fieldAPI) And(x, y Variable) Variable {
	return f.api.Mul(x, y)
}

func (f *fieldAPI) AssertIsEqual(x, y Variable) {
	f.api.AssertIsEqual(x, y)
}
