package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/analytics/interval"
	"github.com/ahratul/inx-chronicle/analytics/milestone"
	"github.com/ahratul/inx-chronicle/docstore/badgerstore"
	"github.com/ahratul/inx-chronicle/engine"
	"github.com/ahratul/inx-chronicle/enginetest"
	"github.com/ahratul/inx-chronicle/ledger"
	"github.com/ahratul/inx-chronicle/sink"
)

func initReplayCmd(root *cobra.Command) {
	replayCmd := &cobra.Command{
		Use:   "replay",
		Short: "run the engine in-process against the built-in reference fixture",
		Args:  cobra.NoArgs,
		RunE:  runReplayCmd,
	}
	root.AddCommand(replayCmd)
}

func runReplayCmd(_ *cobra.Command, _ []string) error {
	cfg, log := loadConfig()
	if len(cfg.MilestoneAnalytics) == 0 {
		cfg.MilestoneAnalytics = analytics.AllMilestoneKinds()
	}
	if len(cfg.IntervalKinds) == 0 {
		cfg.IntervalKinds = []analytics.IntervalKind{analytics.IntervalDay}
	}

	ctx := context.Background()
	params := enginetest.DemoNetwork

	milestoneAnalytics, err := milestone.NewAll(cfg.MilestoneAnalytics, params, enginetest.DemoM0)
	if err != nil {
		return err
	}

	snapshotIt := ledger.NewSliceUnspentOutputIterator(enginetest.DemoM0, enginetest.DemoSnapshot())
	if err := engine.Bootstrap(snapshotIt, enginetest.DemoM0, milestoneAnalytics); err != nil {
		return err
	}

	recordingSink := enginetest.NewSink()
	adapter := sink.NewAdapter(recordingSink)
	stats := &engine.Stats{}
	driver := engine.NewMilestoneDriver(milestoneAnalytics, adapter, log, stats)

	// The snapshot is the only persisted state so far: prime the driver at
	// M0 and verify the ingestion node's reported tip agrees with it before
	// replaying anything past it (spec §7 resume check).
	driver.ResumeAt(enginetest.DemoM0)
	if err := driver.VerifySync(enginetest.DemoM0); err != nil {
		return err
	}

	ingestion := enginetest.NewIngestion(enginetest.DemoFixtures())
	stream, err := ingestion.MilestoneStream(ctx, enginetest.DemoM0+1)
	if err != nil {
		return err
	}
	if err := driver.Run(ctx, stream); err != nil {
		return err
	}

	log.Infow("replay complete", "stats", stats.Snapshot())
	for _, p := range recordingSink.Points() {
		log.Infow("measurement", "name", p.Measurement, "tags", p.Tags, "fields", p.Fields)
	}

	return runIntervalReplay(ctx, cfg.IntervalKinds, adapter, log)
}

// runIntervalReplay drives the Interval Driver against an in-memory
// badger-backed document store seeded with the demo transactions, one
// calendar slot per configured interval kind. The store and driver are torn
// down before returning.
func runIntervalReplay(ctx context.Context, kinds []analytics.IntervalKind, adapter *sink.Adapter, log interface {
	Infow(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}) error {
	store, err := badgerstore.OpenInMemory()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, rec := range enginetest.DemoTransactionRecords() {
		if err := store.PutTransaction(enginetest.DemoIntervalTimestamp(), rec); err != nil {
			return err
		}
	}

	addressActivity := interval.NewAddressActivity()
	intervalDriver := engine.NewIntervalDriver(addressActivity, store, adapter, nil, 0)

	for _, kind := range kinds {
		intervalDriver.Enqueue(enginetest.DemoIntervalSlotStartFor(kind), kind)
	}
	intervalDriver.Close()

	if err := intervalDriver.Run(ctx); err != nil {
		return err
	}

	log.Infow("interval replay complete", "analytic", addressActivity.Kind(), "slots", len(kinds))
	return nil
}
