package builder

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"

	"github.com/PolyhedraZK/sha256-gf2/utils"
)

// Stats holds gate counts and depths of a recorded circuit.
type Stats struct {
	// number of allocated inputs
	NbInput int
	// number of distinct constant signals (at most 2)
	NbConst int
	// number of xor/and gates
	NbXor int
	NbAnd int
	// number of recorded equality constraints
	NbAssert int
	// number of marked outputs
	NbOutput int
	// longest gate path from the inputs
	NbLayer int
	// largest number of AND gates on a single path
	AndDepth int
	// total cost according to utils.TotalCost
	TotalCost int
}

// GetStats collects gate counts and depths of the recorded circuit.
// Depths are taken over the whole circuit, not only over marked outputs.
func (r *Root) GetStats() Stats {
	s := Stats{
		NbInput:  len(r.inputs),
		NbAssert: len(r.asserts),
		NbOutput: len(r.outputs),
	}
	for _, g := range r.gates {
		switch g.op {
		case OpConst:
			s.NbConst++
		case OpXor:
			s.NbXor++
		case OpAnd:
			s.NbAnd++
		}
		s.NbLayer = max(s.NbLayer, g.layer)
		s.AndDepth = max(s.AndDepth, g.andDepth)
	}
	s.TotalCost = utils.TotalCost(s.NbInput, s.NbConst, s.NbXor, s.NbAnd)
	return s
}

// LogStats writes the statistics of the circuit to the root logger.
func (r *Root) LogStats(name string) Stats {
	s := r.GetStats()
	r.log.Info().
		Str("circuit", name).
		Int("nbInput", s.NbInput).
		Int("nbXor", s.NbXor).
		Int("nbAnd", s.NbAnd).
		Int("nbLayer", s.NbLayer).
		Int("andDepth", s.AndDepth).
		Int("totalCost", s.TotalCost).
		Msg("built")
	return s
}

// NamedStats pairs statistics with a label for PrintStats.
type NamedStats struct {
	Name string
	Stats
}

// PrintStats renders a comparison table of several circuits.
func PrintStats(w io.Writer, rows ...NamedStats) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Circuit").SetAlign(tabulate.ML)
	tab.Header("XOR").SetAlign(tabulate.MR)
	tab.Header("AND").SetAlign(tabulate.MR)
	tab.Header("Layers").SetAlign(tabulate.MR)
	tab.Header("AND depth").SetAlign(tabulate.MR)
	tab.Header("Cost").SetAlign(tabulate.MR)

	for _, s := range rows {
		row := tab.Row()
		row.Column(s.Name)
		row.Column(fmt.Sprintf("%d", s.NbXor))
		row.Column(fmt.Sprintf("%d", s.NbAnd))
		row.Column(fmt.Sprintf("%d", s.NbLayer))
		row.Column(fmt.Sprintf("%d", s.AndDepth))
		row.Column(fmt.Sprintf("%d", s.TotalCost))
	}
	tab.Print(w)
}
