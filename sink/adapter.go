package sink

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ledger"
)

// Adapter is the Measurement Sink Adapter (C7): it converts the engine's
// typed MilestoneMeasurement/IntervalMeasurement envelopes into sink-ready
// Points and writes them through an underlying Sink.
type Adapter struct {
	sink Sink
}

// NewAdapter wraps sink with the measurement-to-point conversion.
func NewAdapter(sink Sink) *Adapter {
	return &Adapter{sink: sink}
}

// WriteMilestone converts and writes a MilestoneMeasurement, tagged with
// its milestone index and timestamp (spec §6).
func (a *Adapter) WriteMilestone(ctx context.Context, m analytics.MilestoneMeasurement) error {
	p := Point{
		Measurement: string(m.Kind),
		Tags: map[string]string{
			"milestone_index":     strconv.FormatUint(uint64(m.Stamp.Index), 10),
			"milestone_timestamp": strconv.FormatUint(uint64(m.Stamp.Timestamp), 10),
		},
		Fields: m.Measure.Fields(),
		Time:   milestoneTime(m.Stamp),
	}
	if err := a.sink.InsertMeasurement(ctx, p); err != nil {
		return fmt.Errorf("sink: write milestone measurement %s at %s: %w", m.Kind, m.Stamp, err)
	}
	return nil
}

// WriteInterval converts and writes an IntervalMeasurement, tagged with its
// calendar slot (spec §6).
func (a *Adapter) WriteInterval(ctx context.Context, m analytics.IntervalMeasurement) error {
	p := Point{
		Measurement: string(m.Kind),
		Tags: map[string]string{
			"start_date": m.Start.UTC().Format("2006-01-02"),
			"interval":   string(m.Interval),
		},
		Fields: m.Measure.Fields(),
		Time:   m.Start,
	}
	if err := a.sink.InsertMeasurement(ctx, p); err != nil {
		return fmt.Errorf("sink: write interval measurement %s at %s: %w", m.Kind, m.Start, err)
	}
	return nil
}

func milestoneTime(stamp ledger.MilestoneStamp) time.Time {
	return time.Unix(int64(stamp.Timestamp), 0).UTC()
}
