// Package builder records boolean circuits made of XOR and AND gates.
//
// It implements gf2.API so every gadget of this module can be built against it,
// then measured (gate counts, layer depth, AND depth) and evaluated on concrete
// bit assignments. It does no witness solving or layering: the compiled form of
// a circuit belongs to the proof system that consumes it.
package builder

import (
	"fmt"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"

	"github.com/PolyhedraZK/sha256-gf2/gf2"
)

// Op is the kind of a recorded gate.
type Op uint8

// Gate kinds. Inputs and constants are gates without operands.
const (
	OpInput Op = iota
	OpConst
	OpXor
	OpAnd
)

func (op Op) String() string {
	switch op {
	case OpInput:
		return "INPUT"
	case OpConst:
		return "CONST"
	case OpXor:
		return "XOR"
	case OpAnd:
		return "AND"
	default:
		return fmt.Sprintf("{Op %d}", op)
	}
}

type variable struct {
	id int
}

type gate struct {
	op       Op
	in0, in1 int
	// constant value for OpConst
	value bool
	// longest path from any input, inputs and constants are layer 0
	layer int
	// number of AND gates on the longest AND path
	andDepth int
}

// Root records one circuit. The zero value is not usable, call NewRoot.
type Root struct {
	gates   []gate
	consts  [2]int
	inputs  []int
	outputs []int
	asserts [][2]int
	log     zerolog.Logger
}

// Option configures a Root.
type Option func(*Root)

// WithLogger sets the logger used by LogStats.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Root) {
		r.log = log
	}
}

// NewRoot returns an empty circuit recorder.
func NewRoot(opts ...Option) *Root {
	r := &Root{
		gates:  make([]gate, 0, 1024),
		consts: [2]int{-1, -1},
		log:    logger.Logger(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

var _ gf2.API = (*Root)(nil)

func (r *Root) addGate(g gate) variable {
	r.gates = append(r.gates, g)
	return variable{id: len(r.gates) - 1}
}

func (r *Root) toID(v gf2.Variable) int {
	switch x := v.(type) {
	case variable:
		if x.id < 0 || x.id >= len(r.gates) {
			panic(fmt.Sprintf("builder: unknown variable %d", x.id))
		}
		return x.id
	case int:
		return r.Constant(uint(x)).(variable).id
	case uint:
		return r.Constant(x).(variable).id
	default:
		panic(fmt.Sprintf("builder: unsupported variable type %T", v))
	}
}

// Input allocates a new input signal.
func (r *Root) Input() gf2.Variable {
	v := r.addGate(gate{op: OpInput})
	r.inputs = append(r.inputs, v.id)
	return v
}

// Inputs allocates n input signals.
func (r *Root) Inputs(n int) []gf2.Variable {
	res := make([]gf2.Variable, n)
	for i := range res {
		res[i] = r.Input()
	}
	return res
}

// Constant returns the shared signal fixed to b&1.
func (r *Root) Constant(b uint) gf2.Variable {
	b &= 1
	if r.consts[b] < 0 {
		v := r.addGate(gate{op: OpConst, value: b == 1})
		r.consts[b] = v.id
	}
	return variable{id: r.consts[b]}
}

func (r *Root) binary(op Op, x, y gf2.Variable) gf2.Variable {
	a := r.toID(x)
	b := r.toID(y)
	ga, gb := &r.gates[a], &r.gates[b]

	layer := max(ga.layer, gb.layer) + 1
	andDepth := max(ga.andDepth, gb.andDepth)
	if op == OpAnd {
		andDepth++
	}
	return r.addGate(gate{
		op:       op,
		in0:      a,
		in1:      b,
		layer:    layer,
		andDepth: andDepth,
	})
}

// Xor records x ^ y.
func (r *Root) Xor(x, y gf2.Variable) gf2.Variable {
	return r.binary(OpXor, x, y)
}

// And records x & y.
func (r *Root) And(x, y gf2.Variable) gf2.Variable {
	return r.binary(OpAnd, x, y)
}

// AssertIsEqual records the constraint x == y, checked by Evaluation.Check.
func (r *Root) AssertIsEqual(x, y gf2.Variable) {
	r.asserts = append(r.asserts, [2]int{r.toID(x), r.toID(y)})
}

// Output marks signals as circuit outputs, in order.
func (r *Root) Output(vs ...gf2.Variable) {
	for _, v := range vs {
		r.outputs = append(r.outputs, r.toID(v))
	}
}

// LayerOf returns the length of the longest gate path from the inputs to v.
func (r *Root) LayerOf(v gf2.Variable) int {
	return r.gates[r.toID(v)].layer
}

// AndDepthOf returns the number of AND gates on the longest AND path to v.
func (r *Root) AndDepthOf(v gf2.Variable) int {
	return r.gates[r.toID(v)].andDepth
}

// MaxLayer returns the deepest layer among vs.
func (r *Root) MaxLayer(vs ...gf2.Variable) int {
	res := 0
	for _, v := range vs {
		res = max(res, r.LayerOf(v))
	}
	return res
}

// NbInputs returns the number of allocated inputs.
func (r *Root) NbInputs() int {
	return len(r.inputs)
}

// NbGates returns the number of recorded XOR and AND gates.
func (r *Root) NbGates() int {
	n := 0
	for _, g := range r.gates {
		if g.op == OpXor || g.op == OpAnd {
			n++
		}
	}
	return n
}
