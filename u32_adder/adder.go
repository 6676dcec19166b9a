// Package u32adder implements modular addition of 32-bit words as XOR/AND
// circuits, with several carry network topologies trading depth for gates.
package u32adder

import (
	"errors"
	"fmt"

	"github.com/PolyhedraZK/sha256-gf2/gf2"
	"github.com/PolyhedraZK/sha256-gf2/word"
)

// Adder computes (a + b) mod 2^32.
type Adder interface {
	Name() string
	Add(api gf2.API, a, b word.Word) word.Word
}

// Default is the strategy used when none is selected.
var Default Adder = KoggeStoneParallel{}

// ErrUnknownAdder is returned by Lookup for names no strategy carries.
var ErrUnknownAdder = errors.New("unknown adder")

// Strategies returns every available adder, cheapest in gates first.
func Strategies() []Adder {
	return []Adder{
		Ripple{},
		BrentKung{},
		HanCarlson{},
		KoggeStone{},
		KoggeStoneParallel{},
	}
}

// Lookup returns the adder with the given name.
func Lookup(name string) (Adder, error) {
	for _, a := range Strategies() {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAdder, name)
}
