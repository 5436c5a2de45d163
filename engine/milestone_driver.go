package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/global"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
	"github.com/ahratul/inx-chronicle/sink"
)

// resolvedBlock is one cone block together with the consumed/created
// records its transaction (if any) resolved to. Buffering the whole cone
// into these before touching any analytic is what lets MilestoneDriver
// honor spec §7's "leave analytics state as it was before this milestone
// began" without snapshotting every analytic's internal state: resolution
// errors can only occur before mutation starts.
type resolvedBlock struct {
	blk      *ingest.BlockData
	consumed []*ledger.LedgerSpent
	created  []*ledger.LedgerOutput
}

// MilestoneDriver is the Milestone Driver (C5): it walks one milestone's
// block cone, resolves transactions against the ledger-update index, drives
// every registered milestone analytic, and forwards the resulting
// measurements to the sink (spec §4.4).
type MilestoneDriver struct {
	analytics []analytics.MilestoneAnalytic
	sink      *sink.Adapter
	log       *zap.SugaredLogger
	stats     *Stats

	lastIndex   ledger.MilestoneIndex
	haveLastIdx bool
	networkName string
	haveNetwork bool
}

// NewMilestoneDriver constructs a driver over the given analytics, which
// must already be bootstrapped (see Bootstrap) before the first call to
// ProcessMilestone.
func NewMilestoneDriver(milestoneAnalytics []analytics.MilestoneAnalytic, sinkAdapter *sink.Adapter, log *zap.SugaredLogger, stats *Stats) *MilestoneDriver {
	if log == nil {
		log = global.NopLogger()
	}
	if stats == nil {
		stats = &Stats{}
	}
	return &MilestoneDriver{analytics: milestoneAnalytics, sink: sinkAdapter, log: log, stats: stats}
}

// Stats returns the driver's telemetry counters.
func (d *MilestoneDriver) Stats() *Stats { return d.stats }

// ResumeAt primes the driver's last-processed index from persisted state
// (e.g. engine.Stats read back after a restart), so the first
// ProcessMilestone call enforces contiguity against that boundary instead
// of treating the next milestone as an unconstrained start.
func (d *MilestoneDriver) ResumeAt(idx ledger.MilestoneIndex) {
	d.lastIndex, d.haveLastIdx = idx, true
	d.stats.primeLastIndex(idx)
}

// VerifySync compares the ingestion node's reported current milestone
// index against the driver's own last-processed index (spec §7's
// resume-state check), returning SyncMilestoneIndexMismatchError if they
// disagree. Call once at startup, after ResumeAt and before Run, so a node
// that fell behind — or got ahead of — the persisted analytics state is
// caught before any milestone is processed. A driver with no persisted
// state yet (never ResumeAt'd, never processed a milestone) has nothing to
// verify against and always succeeds.
func (d *MilestoneDriver) VerifySync(nodeIndex ledger.MilestoneIndex) error {
	if d.haveLastIdx && nodeIndex != d.lastIndex {
		return &SyncMilestoneIndexMismatchError{Node: nodeIndex, DB: d.lastIndex}
	}
	return nil
}

// ProcessMilestone implements process_milestone(M, analytics[], ingestion,
// ledger_updates, sink) (spec §4.4). It validates monotonic milestone
// progression and network stability, then resolves and replays the cone.
func (d *MilestoneDriver) ProcessMilestone(ctx context.Context, m ingest.Milestone) error {
	stamp := m.Stamp()
	params := m.ProtocolParams()

	if d.haveLastIdx && stamp.Index != d.lastIndex+1 {
		d.stats.onMilestoneError()
		return &SyncMilestoneGapError{Start: d.lastIndex, End: stamp.Index}
	}
	if d.haveNetwork && params.NetworkName != d.networkName {
		d.stats.onMilestoneError()
		return &NetworkChangedError{Old: d.networkName, New: params.NetworkName}
	}

	global.TraceMilestone(d.log, "processing milestone %s", stamp.String)

	resolved, err := d.resolveCone(ctx, m, stamp.Index)
	if err != nil {
		d.stats.onMilestoneError()
		return err
	}

	actx := analytics.Context{Stamp: stamp, ProtocolParams: params}
	for _, rb := range resolved {
		if rb.consumed != nil || rb.created != nil {
			for _, a := range d.analytics {
				a.HandleTransaction(rb.consumed, rb.created, actx)
			}
		}
		for _, a := range d.analytics {
			a.HandleBlock(rb.blk, actx)
		}
	}

	written, err := d.emit(ctx, actx)
	if err != nil {
		d.stats.onMilestoneError()
		return err
	}

	d.lastIndex, d.haveLastIdx = stamp.Index, true
	d.networkName, d.haveNetwork = params.NetworkName, true
	d.stats.onMilestoneProcessed(stamp.Index, written)
	return nil
}

func (d *MilestoneDriver) resolveCone(ctx context.Context, m ingest.Milestone, idx ledger.MilestoneIndex) ([]resolvedBlock, error) {
	stream := m.ConeStream()
	updates := m.LedgerUpdates()

	var out []resolvedBlock
	for {
		blk, ok, err := stream.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}

		rb := resolvedBlock{blk: blk}
		if blk.Metadata.InclusionState == ingest.InclusionIncluded {
			if tx, isTx := blk.Block.Payload.(*ingest.TransactionPayload); isTx {
				consumed := make([]*ledger.LedgerSpent, len(tx.Inputs))
				for i, id := range tx.Inputs {
					spent, ok := updates.GetConsumed(id)
					if !ok {
						return nil, &MissingLedgerSpentError{OutputID: id, MilestoneIndex: idx}
					}
					consumed[i] = spent
				}

				created := make([]*ledger.LedgerOutput, len(tx.Outputs))
				for j := range tx.Outputs {
					id := ledger.NewOutputID(tx.TransactionID, uint16(j))
					out2, ok := updates.GetCreated(id)
					if !ok {
						return nil, &MissingLedgerOutputError{OutputID: id, MilestoneIndex: idx}
					}
					created[j] = out2
				}

				rb.consumed, rb.created = consumed, created
			}
		}
		out = append(out, rb)
	}
}

func (d *MilestoneDriver) emit(ctx context.Context, actx analytics.Context) (int, error) {
	written := 0
	for _, a := range d.analytics {
		measure, ok := a.EndMilestone(actx)
		if !ok {
			continue
		}
		mm := analytics.MilestoneMeasurement{Kind: a.Kind(), Stamp: actx.Stamp, Measure: measure}
		if err := d.sink.WriteMilestone(ctx, mm); err != nil {
			return written, &SinkWriteFailureError{Kind: string(a.Kind()), Err: err}
		}
		written++
	}
	return written, nil
}

// Run drives stream to completion, calling ProcessMilestone for every
// milestone it yields. The first error aborts the run (spec §4.4's
// per-milestone failures are recoverable by re-invoking ProcessMilestone
// for the same index once the underlying defect is fixed; Run itself does
// not retry).
func (d *MilestoneDriver) Run(ctx context.Context, stream ingest.MilestoneStream) error {
	for {
		m, ok, err := stream.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := d.ProcessMilestone(ctx, m); err != nil {
			return err
		}
	}
}
