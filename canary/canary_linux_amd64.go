//go:build linux && amd64

package canary

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ARCH_GET_FS from asm/prctl.h; returns the FS segment base, which on
// x86-64 Linux is the thread control block.
const archGetFS = 0x1003

// Offset of the stack guard slot within the TCB (tcbhead_t.stack_guard).
const stackGuardOffset = 0x28

// Read returns the canary word stored at offset 0x28 from the thread
// control base. The slot is read exactly once per process; later calls
// return the cached value.
var Read = sync.OnceValue(read)

func read() Value {
	var fsbase uintptr
	_, _, errno := unix.Syscall(unix.SYS_ARCH_PRCTL, archGetFS, uintptr(unsafe.Pointer(&fsbase)), 0)
	if errno != 0 {
		// arch_prctl(ARCH_GET_FS) cannot fail with valid arguments on
		// amd64; treat a failure as a broken environment.
		panic(fmt.Sprintf("canary: arch_prctl(ARCH_GET_FS): %v", errno))
	}

	return Value(*(*uint64)(unsafe.Pointer(fsbase + stackGuardOffset)))
}
