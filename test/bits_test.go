package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint32ToBools(t *testing.T) {
	bits := Uint32ToBools(0x80000001)
	assert.True(t, bits[0])
	assert.True(t, bits[31])
	for _, b := range bits[1:31] {
		assert.False(t, b)
	}
	assert.Len(t, Uint32sToBools(1, 2, 3), 96)
}

func TestBytesRoundTrip(t *testing.T) {
	msg := []byte("abc")
	bits := BytesToBools(msg)
	assert.Len(t, bits, 24)
	// 'a' = 0x61
	assert.Equal(t, []bool{false, true, true, false, false, false, false, true}, bits[:8])
	assert.Equal(t, msg, BoolsToBytes(bits))
	assert.Equal(t, []byte{0x80}, BoolsToBytes([]bool{true}))
}

func TestUint32ToVariables(t *testing.T) {
	vars := Uint32ToVariables(5)
	assert.Equal(t, 1, vars[31])
	assert.Equal(t, 0, vars[30])
	assert.Equal(t, 1, vars[29])
	assert.Equal(t, 0, vars[0])
}
