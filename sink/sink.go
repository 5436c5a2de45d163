// Package sink describes the time-series sink collaborator (spec §6) and
// the Measurement Sink Adapter (C7) that converts typed measurements into
// the sink's record format.
package sink

import (
	"context"
	"time"
)

// Point is one time-series record: a measurement name, its tags (the
// stamping — milestone index/timestamp, or interval start/kind) and its
// typed fields.
type Point struct {
	Measurement string
	Tags        map[string]string
	Fields      map[string]any
	Time        time.Time
}

// Sink accepts prepared measurement points (spec §6). Implementations are
// write-only and accessed one measurement at a time (spec §5).
type Sink interface {
	InsertMeasurement(ctx context.Context, p Point) error
}
