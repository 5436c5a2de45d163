package analytics

import (
	"time"

	"github.com/ahratul/inx-chronicle/ledger"
)

// FieldSet is what every concrete measurement type implements: its values
// laid out as sink-ready fields. This is the "erased" shape the Measurement
// Sink Adapter (C7) writes, letting the driver hold a list of
// heterogeneous measurement types behind one interface (spec §9).
type FieldSet interface {
	Fields() map[string]any
}

// MilestoneMeasurement tags a FieldSet with the milestone stamp it was
// computed at (spec §3).
type MilestoneMeasurement struct {
	Kind    Kind
	Stamp   ledger.MilestoneStamp
	Measure FieldSet
}

// IntervalMeasurement tags a FieldSet with the calendar slot it was
// computed for (spec §3).
type IntervalMeasurement struct {
	Kind     Kind
	Start    time.Time
	Interval IntervalKind
	Measure  FieldSet
}
