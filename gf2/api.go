// Package gf2 defines the four primitive capabilities every boolean gadget in
// this module is written against, and binds them to gnark's frontend.API.
package gf2

import "github.com/consensys/gnark/frontend"

// Variable is a single boolean signal owned by the circuit builder.
type Variable = frontend.Variable

// API is the minimal surface a boolean circuit builder has to provide.
// Only XOR and AND gates are ever requested; NOT is expressed as XOR with one.
type API interface {
	// Constant returns a signal fixed to b&1.
	Constant(b uint) Variable
	// Xor returns x ^ y.
	Xor(x, y Variable) Variable
	// And returns x & y.
	And(x, y Variable) Variable
	// AssertIsEqual registers the hard constraint x == y.
	AssertIsEqual(x, y Variable)
}
