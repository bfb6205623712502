package canary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_HexIsZeroPaddedTo16Digits(t *testing.T) {
	assert.Equal(t, "00000000000000ff", Value(0xff).Hex())
	assert.Equal(t, "0000000000000000", Value(0).Hex())
	assert.Equal(t, "deadbeefcafef00d", Value(0xdeadbeefcafef00d).Hex())
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "0x00000000000000ff", Value(0xff).String())
}

func TestValue_BytesAreLittleEndian(t *testing.T) {
	got := Value(0x0102030405060708).Bytes()
	assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, got)
}
