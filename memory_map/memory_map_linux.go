//go:build linux

package memory_map

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

const selfMapsPath = "/proc/self/maps"

// LinuxMemoryMap reads memory regions from the /proc/self/maps listing.
type LinuxMemoryMap struct {
	log *logger.Logger
}

// NewLinuxMemoryMap creates a new LinuxMemoryMap instance.
func NewLinuxMemoryMap() *LinuxMemoryMap {
	return &LinuxMemoryMap{
		log: logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "memory-map")),
	}
}

// ReadSelfRegions reads and parses the memory map of the calling process.
// Regions are re-parsed on every call; nothing is cached.
func (l *LinuxMemoryMap) ReadSelfRegions() ([]Region, error) {
	file, err := os.Open(selfMapsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open memory map listing: %w", err)
	}
	defer file.Close()

	return l.ParseRegions(file)
}

// ParseRegions parses a maps listing, one region per line. The returned
// slice is in reverse-encounter order: the last line parsed comes first.
//
// A line whose end address precedes its start address fails the whole
// parse with ErrRegionBounds. A read error after at least one line is
// reported as a warning and the regions parsed so far are returned.
func (l *LinuxMemoryMap) ParseRegions(r io.Reader) ([]Region, error) {
	var regions []Region
	var line string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line = scanner.Text()
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}

		// The upper bit is 1 for kernel space memory, which we cannot
		// touch. Since the address comes from an ascii string, just check
		// the most significant nybble is F. Not entirely correct as a
		// kernel/user boundary test, but it suffices.
		if fields[0][0] == 'f' || fields[0][0] == 'F' {
			l.log.Infoln("Skipping potential kernel space memory:", fields[0])
			continue
		}

		addrRange := strings.Split(fields[0], "-")
		if len(addrRange) != 2 {
			continue
		}

		start, err := strconv.ParseUint(addrRange[0], 16, 64)
		if err != nil {
			continue
		}

		end, err := strconv.ParseUint(addrRange[1], 16, 64)
		if err != nil {
			continue
		}

		if end < start {
			return nil, fmt.Errorf("%w: %s", ErrRegionBounds, fields[0])
		}

		offset, err := strconv.ParseUint(fields[2], 16, 64)
		if err != nil {
			continue
		}

		region := Region{
			Start:  start,
			Size:   end - start,
			Perms:  fields[1],
			Offset: offset,
		}
		l.log.Debugln("Parsed region:", region.String())

		// Prepend, so the listing's last entry ends up first.
		regions = append([]Region{region}, regions...)
	}

	if err := scanner.Err(); err != nil {
		// Best effort: keep what was parsed, attach the warning to the
		// last line seen.
		l.log.Warn("Error reading memory map listing: ", err, " [", line, "]")
	}

	return regions, nil
}
