//go:build linux && amd64

// Command canaryscan scans this process' memory map looking for copies
// of its own stack-protector canary. The canary is generated at load
// time and lives in the thread control block; any other address holding
// the same word is a leak worth knowing about.
//
// Scanning other processes is out of scope: that requires ptrace-level
// privileges and a different attach protocol.
package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"canaryscan/canary"
	"canaryscan/hexdump"
	"canaryscan/memory_image"
	"canaryscan/memory_map"
	"canaryscan/scan"
)

// Bytes shown before a hit in the context dump.
const contextBefore = 16

// Total context dump size.
const contextSize = 48

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v.  See usage: '-h'\n", err)
		os.Exit(1)
	}

	if opts.help {
		usage(os.Stdout, os.Args[0])
		return
	}

	value := canary.Read()

	// Quiet mode. (Avoid printing the [+] status ascii icon.)
	if opts.quiet {
		fmt.Printf("Canary: %s\n", value)
		return
	}

	fmt.Printf("[+] Canary: %s\n", value)

	image, err := memory_image.OpenSelf()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[-] Error opening memory image: %v\n", err)
		os.Exit(exitCode(err))
	}
	defer image.Close()

	regions, err := memory_map.NewLinuxMemoryMap().ReadSelfRegions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[-] Error reading memory map: %v\n", err)
		os.Exit(1)
	}

	reports := scan.New(image).Scan(regions, value)
	for _, hit := range scan.Hits(reports) {
		fmt.Printf("[*] Found canary at: 0x%x\n", hit.Address)
		printContext(image, hit.Address, value)
	}
}

// printContext dumps the bytes around a hit so the caller can see what
// kind of data is caching the canary.
func printContext(image *memory_image.Image, addr uint64, value canary.Value) {
	start := addr - contextBefore
	if addr < contextBefore {
		start = 0
	}
	if data, ok := image.ReadAt(start, contextSize); ok {
		fmt.Print(hexdump.Dump(data, start, value.Bytes()))
	}
}

// exitCode maps a failed memory image open to the underlying OS error
// value, matching the documented exit contract.
func exitCode(err error) int {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 1
}
