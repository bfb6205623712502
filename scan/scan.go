// Package scan walks readable memory regions looking for exact
// word-aligned matches of the process' canary value.
package scan

import (
	"fmt"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"

	"canaryscan/canary"
	"canaryscan/memory_map"
)

// WordSize is the scan stride in bytes.
const WordSize = 8

// Regions whose start address carries this pattern in the top bits are
// special mappings (vsyscall and friends) that are unsafe or meaningless
// to read even when marked readable.
const reservedHighMask = 0x7ff0000000000000

// WordReader reads one word of the process' memory at a virtual address.
// A false result means the word could not be read; that is never an error.
type WordReader interface {
	ReadWordAt(addr uint64) (uint64, bool)
}

// Hit records one address holding a copy of the canary.
type Hit struct {
	Address uint64
	Region  memory_map.Region
}

// RegionReport is the per-region outcome of a scan. Regions that failed
// the eligibility check are reported with Scanned false and no hits.
type RegionReport struct {
	Region  memory_map.Region
	Scanned bool
	Hits    []Hit
}

// Scanner scans memory regions through a WordReader.
type Scanner struct {
	mem WordReader
	log *logger.Logger
}

// New creates a Scanner reading through mem.
func New(mem WordReader) *Scanner {
	return &Scanner{
		mem: mem,
		log: logger.NewLogger(coloransi.Color(coloransi.Cyan, coloransi.ColorOrange, "scan")),
	}
}

// IsScannable reports whether a region is eligible for scanning: it must
// be readable and must not sit in the reserved high address range.
func IsScannable(r memory_map.Region) bool {
	return r.IsReadable() && (r.Start&reservedHighMask) != reservedHighMask
}

// Scan checks every word-aligned slot of each eligible region for an
// exact match of the canary value. One report is returned per region, in
// the order the regions were given.
func (s *Scanner) Scan(regions []memory_map.Region, value canary.Value) []RegionReport {
	reports := make([]RegionReport, 0, len(regions))

	for _, region := range regions {
		if !IsScannable(region) {
			s.log.Infoln("Ignoring (not-readable range):", region.String())
			reports = append(reports, RegionReport{Region: region})
			continue
		}

		s.log.Infoln("Scanning:", region.String(), "...")
		report := RegionReport{Region: region, Scanned: true}
		for offset := uint64(0); offset < region.Size; offset += WordSize {
			addr := region.Start + offset
			word, ok := s.mem.ReadWordAt(addr)
			if !ok {
				// Unreadable word, not an error. Keep walking.
				continue
			}
			if word == uint64(value) {
				s.log.Infoln("Found canary at:", fmt.Sprintf("0x%x", addr))
				report.Hits = append(report.Hits, Hit{Address: addr, Region: region})
			}
		}
		reports = append(reports, report)
	}

	return reports
}

// Hits flattens the reports into the discovered hit sequence.
func Hits(reports []RegionReport) []Hit {
	var hits []Hit
	for _, report := range reports {
		hits = append(hits, report.Hits...)
	}
	return hits
}
