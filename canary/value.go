// Package canary reads this process' stack-protector canary from the
// thread control block and represents it as an opaque search pattern.
package canary

import (
	"encoding/binary"
	"fmt"
)

// Value is the process' canary word. It is read once at startup and is
// treated as an opaque 64-bit pattern, never interpreted.
type Value uint64

// Hex returns the value as 16 zero-padded hex digits, no prefix.
func (v Value) Hex() string {
	return fmt.Sprintf("%016x", uint64(v))
}

func (v Value) String() string {
	return "0x" + v.Hex()
}

// Bytes returns the value in memory order (little-endian).
func (v Value) Bytes() []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return b[:]
}
