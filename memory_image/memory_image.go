//go:build linux

// Package memory_image provides positioned word reads against the
// process' own memory image.
package memory_image

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const selfMemPath = "/proc/self/mem"

// WordSize is the machine word size used for positioned reads.
const WordSize = 8

// Image is a byte-addressable view of the process' memory, keyed by
// virtual address. For /proc/self/mem the file offset is the virtual
// address, so plain positioned reads walk the address space directly.
type Image struct {
	file *os.File
}

// Open opens the given file as a memory image.
func Open(path string) (*Image, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	return &Image{file: file}, nil
}

// OpenSelf opens the calling process' own memory image.
func OpenSelf() (*Image, error) {
	return Open(selfMemPath)
}

// ReadWordAt reads one little-endian word at the given address. A failed
// or short read is not an error, it reports false: the page may simply
// not be backed at that address.
func (im *Image) ReadWordAt(addr uint64) (uint64, bool) {
	var buf [WordSize]byte
	n, err := unix.Pread(int(im.file.Fd()), buf[:], int64(addr))
	if err != nil || n < WordSize {
		return 0, false
	}
	return binary.LittleEndian.Uint64(buf[:]), true
}

// ReadAt reads n bytes starting at the given address, for dumping the
// context around a hit. Reports false on any failed or short read.
func (im *Image) ReadAt(addr uint64, n int) ([]byte, bool) {
	buf := make([]byte, n)
	got, err := unix.Pread(int(im.file.Fd()), buf, int64(addr))
	if err != nil || got < n {
		return nil, false
	}
	return buf, true
}

// Close releases the underlying descriptor.
func (im *Image) Close() error {
	if err := im.file.Close(); err != nil {
		return fmt.Errorf("failed to close memory image: %w", err)
	}
	return nil
}
