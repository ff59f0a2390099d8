// Package idgen produces globally unique, time-ordered transaction IDs.
//
// Format: YYYYMMDD-HHMMSS-SSSS-XXXX where SSSS is the issuing station
// code and XXXX a randomized hex suffix. An internal counter, reset
// whenever the second-resolution timestamp changes, feeds the suffix so
// IDs generated within the same second stay distinct.
package idgen

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	dateLayout = "20060102"
	timeLayout = "150405"
)

type Generator struct {
	stationCode string
	location    *time.Location

	mu            sync.Mutex
	counter       uint32
	seed          uint32
	lastTimestamp string
	now           func() time.Time
}

// New creates a Generator for the given station. The station ID is
// normalized to exactly 4 upper-case characters, zero-padded or
// truncated. Timestamps use the given location.
func New(stationID string, location *time.Location) *Generator {
	code := strings.ToUpper(stationID)
	if len(code) > 4 {
		code = code[:4]
	}
	for len(code) < 4 {
		code += "0"
	}

	return &Generator{
		stationCode: code,
		location:    location,
		now:         time.Now,
	}
}

// Generate returns a fresh transaction ID. Safe for concurrent use.
func (g *Generator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now().In(g.location)
	timestamp := now.Format(dateLayout) + "-" + now.Format(timeLayout)

	if timestamp != g.lastTimestamp {
		g.counter = 0
		g.seed = rand.Uint32()
		g.lastTimestamp = timestamp
	}
	g.counter++

	// Offsetting a per-second random seed by the counter keeps the
	// suffix injective within one second from this process while still
	// decorrelating generators in other processes.
	suffix := (g.seed + g.counter) & 0xFFFF

	return fmt.Sprintf("%s-%s-%04X", timestamp, g.stationCode, suffix)
}

// Validate checks structural shape only: four dash-separated segments
// with parseable date and time parts. It does not verify the issuing
// station or uniqueness; that is the consumer's job.
func Validate(transactionID string) bool {
	if transactionID == "" {
		return false
	}

	parts := strings.Split(transactionID, "-")
	if len(parts) != 4 {
		return false
	}

	if _, err := time.Parse(dateLayout, parts[0]); err != nil {
		return false
	}
	if _, err := time.Parse(timeLayout, parts[1]); err != nil {
		return false
	}

	return true
}
