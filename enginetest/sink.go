package enginetest

import (
	"context"
	"sync"

	"github.com/ahratul/inx-chronicle/sink"
)

// Sink is an in-memory sink.Sink that records every point it is handed, in
// order, for assertions in tests.
type Sink struct {
	mu     sync.Mutex
	points []sink.Point
}

// NewSink builds an empty recording sink.
func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) InsertMeasurement(_ context.Context, p sink.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, p)
	return nil
}

// Points returns a copy of every point recorded so far.
func (s *Sink) Points() []sink.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sink.Point, len(s.points))
	copy(out, s.points)
	return out
}

// ByMeasurement returns the fields of the last point recorded with the
// given measurement name, or nil if none was.
func (s *Sink) ByMeasurement(name string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.points) - 1; i >= 0; i-- {
		if s.points[i].Measurement == name {
			return s.points[i].Fields
		}
	}
	return nil
}
