package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/docstore"
	"github.com/ahratul/inx-chronicle/global"
	"github.com/ahratul/inx-chronicle/sink"
	"github.com/ahratul/inx-chronicle/util/consumer"
)

// Slot is one aligned calendar window an IntervalDriver evaluates an
// analytic over (spec §4.3).
type Slot struct {
	Start    time.Time
	Interval analytics.IntervalKind
}

// IntervalDriver is the Interval Driver (C6): a query-driven loop,
// independent of the Milestone Driver's clock, that evaluates one
// IntervalAnalytic over calendar slots pulled from a queue. It is
// idempotently restartable — re-enqueuing the same slot re-runs the same
// read-only query (spec §9).
type IntervalDriver struct {
	analytic analytics.IntervalAnalytic
	store    docstore.Store
	sink     *sink.Adapter
	log      *zap.SugaredLogger

	queue *consumer.Queue[Slot]
}

// NewIntervalDriver constructs a driver for analytic. bufSize sets the
// buffer size of the slot queue's internal channels; the queue itself is
// unbounded at any bufSize, since overflow is held in its deque.
func NewIntervalDriver(intervalAnalytic analytics.IntervalAnalytic, store docstore.Store, sinkAdapter *sink.Adapter, log *zap.SugaredLogger, bufSize int) *IntervalDriver {
	if log == nil {
		log = global.NopLogger()
	}
	return &IntervalDriver{
		analytic: intervalAnalytic,
		store:    store,
		sink:     sinkAdapter,
		log:      log,
		queue:    consumer.New[Slot](bufSize),
	}
}

// Enqueue schedules one calendar slot for evaluation.
func (d *IntervalDriver) Enqueue(start time.Time, interval analytics.IntervalKind) {
	global.TraceInterval(d.log, "enqueue slot start=%s interval=%s", start, interval)
	d.queue.Push(Slot{Start: start, Interval: interval})
}

// Close signals no further slots will be enqueued; Run's consume loop
// drains whatever remains and then returns.
func (d *IntervalDriver) Close() {
	d.queue.Close()
}

// Run drains the slot queue until Close is called and the queue empties,
// evaluating and emitting each slot's measurement in order. It keeps
// draining past a failing slot (logging the error) rather than stalling
// the queue for the slots behind it; the last error seen, if any, is
// returned once the queue is exhausted.
func (d *IntervalDriver) Run(ctx context.Context) error {
	var lastErr error
	d.queue.Consume(func(slot Slot) {
		if err := d.processSlot(ctx, slot); err != nil {
			d.log.Errorw("interval slot failed", "start", slot.Start, "interval", slot.Interval, "error", err)
			lastErr = err
		}
	})
	return lastErr
}

func (d *IntervalDriver) processSlot(ctx context.Context, slot Slot) error {
	measure, err := d.analytic.HandleDateRange(ctx, slot.Start, slot.Interval, d.store)
	if err != nil {
		return err
	}
	im := analytics.IntervalMeasurement{
		Kind:     d.analytic.Kind(),
		Start:    slot.Start,
		Interval: slot.Interval,
		Measure:  measure,
	}
	if err := d.sink.WriteInterval(ctx, im); err != nil {
		return &SinkWriteFailureError{Kind: string(d.analytic.Kind()), Err: err}
	}
	global.TraceInterval(d.log, "wrote slot start=%s interval=%s", slot.Start, slot.Interval)
	return nil
}
