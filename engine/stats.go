package engine

import (
	"go.uber.org/atomic"

	"github.com/ahratul/inx-chronicle/ledger"
)

// Stats is ambient telemetry the engine exposes alongside its measurement
// output: counters a metrics endpoint or health check can read without
// touching analytic internals.
type Stats struct {
	milestonesProcessed atomic.Uint64
	measurementsWritten atomic.Uint64
	milestoneErrors     atomic.Uint64
	lastIndex           atomic.Uint32
}

func (s *Stats) onMilestoneProcessed(idx ledger.MilestoneIndex, measurementsWritten int) {
	s.milestonesProcessed.Inc()
	s.measurementsWritten.Add(uint64(measurementsWritten))
	s.lastIndex.Store(uint32(idx))
}

func (s *Stats) onMilestoneError() {
	s.milestoneErrors.Inc()
}

// primeLastIndex seeds lastIndex without touching the other counters, for
// MilestoneDriver.ResumeAt restoring persisted state at startup.
func (s *Stats) primeLastIndex(idx ledger.MilestoneIndex) {
	s.lastIndex.Store(uint32(idx))
}

// Snapshot is a point-in-time copy of the counters, safe to log or export.
type Snapshot struct {
	MilestonesProcessed uint64
	MeasurementsWritten uint64
	MilestoneErrors     uint64
	LastIndex           ledger.MilestoneIndex
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		MilestonesProcessed: s.milestonesProcessed.Load(),
		MeasurementsWritten: s.measurementsWritten.Load(),
		MilestoneErrors:     s.milestoneErrors.Load(),
		LastIndex:           ledger.MilestoneIndex(s.lastIndex.Load()),
	}
}
