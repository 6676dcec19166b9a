// Package utils holds the gate cost model shared by the statistics and the
// adder comparison tooling.
package utils

const CostOfInput = 1000
const CostOfVariable = 100
const CostOfMulGate = 10
const CostOfAddGate = 3
const CostOfCstGate = 3

// TotalCost weighs a boolean circuit: AND gates are multiplication gates and
// XOR gates are addition gates over GF(2). Every gate output is a variable.
func TotalCost(nbInput, nbConst, nbXor, nbAnd int) int {
	cost := nbInput * CostOfInput
	cost += (nbXor + nbAnd) * CostOfVariable
	cost += nbAnd * CostOfMulGate
	cost += nbXor * CostOfAddGate
	cost += nbConst * CostOfCstGate
	return cost
}
