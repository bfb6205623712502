// Package memory_map parses the process' self-reported memory map into
// a structured list of regions.
package memory_map

import (
	"errors"
	"fmt"
)

// ErrRegionBounds is returned when a map entry's end address precedes its
// start address. A well-formed maps listing never produces this; it signals
// a parser/environment mismatch and is treated as fatal.
var ErrRegionBounds = errors.New("region end precedes start")

// Region represents one contiguous mapping in the process' address space.
type Region struct {
	Start  uint64 // Starting address (first column of the maps listing)
	Size   uint64 // End - Start of the address range
	Perms  string // Permission string, verbatim (e.g. "r-xp")
	Offset uint64 // Offset into the backing object (third column)
}

// End returns the exclusive upper bound of the region.
func (r Region) End() uint64 {
	return r.Start + r.Size
}

// IsReadable reports whether the region's permissions allow reads.
func (r Region) IsReadable() bool {
	return len(r.Perms) > 0 && r.Perms[0] == 'r'
}

// String returns a string representation of the region.
func (r Region) String() string {
	return fmt.Sprintf("0x%x (%d size) (perms: %s)", r.Start, r.Size, r.Perms)
}
