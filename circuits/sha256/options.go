package sha256

import (
	"fmt"

	u32adder "github.com/PolyhedraZK/sha256-gf2/u32_adder"
)

// Mode selects how the multi-operand sums of a round are built.
type Mode int

const (
	// Direct adds operands pairwise with carry-propagating adders.
	Direct Mode = iota
	// CarrySave reduces operands with carry-save adders and propagates
	// carries once per output word.
	CarrySave
)

func (m Mode) String() string {
	switch m {
	case Direct:
		return "direct"
	case CarrySave:
		return "carry-save"
	default:
		return fmt.Sprintf("{Mode %d}", int(m))
	}
}

func checkConfig(adder u32adder.Adder, mode Mode) {
	if adder == nil {
		panic("sha256: nil adder")
	}
	if mode != Direct && mode != CarrySave {
		panic(fmt.Sprintf("sha256: unknown compression mode %v", mode))
	}
}

type config struct {
	adder u32adder.Adder
	mode  Mode
}

func defaultConfig() config {
	return config{
		adder: u32adder.Default,
		mode:  CarrySave,
	}
}

// Option configures a Digest.
type Option func(*config)

// WithAdder selects the carry-propagating adder.
func WithAdder(adder u32adder.Adder) Option {
	return func(c *config) {
		c.adder = adder
	}
}

// WithCompression selects the round formulation.
func WithCompression(mode Mode) Option {
	return func(c *config) {
		c.mode = mode
	}
}
