package utils

import "testing"

func TestTotalCost(t *testing.T) {
	if c := TotalCost(0, 0, 0, 0); c != 0 {
		t.Errorf("empty circuit cost %d", c)
	}
	if c := TotalCost(1, 0, 0, 0); c != CostOfInput {
		t.Errorf("single input cost %d", c)
	}
	xor := TotalCost(0, 0, 1, 0)
	and := TotalCost(0, 0, 0, 1)
	if and <= xor {
		t.Errorf("AND (%d) should cost more than XOR (%d)", and, xor)
	}
	if c := TotalCost(2, 1, 3, 4); c != 2*CostOfInput+7*CostOfVariable+4*CostOfMulGate+3*CostOfAddGate+CostOfCstGate {
		t.Errorf("unexpected cost %d", c)
	}
}
