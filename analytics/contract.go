package analytics

import (
	"context"
	"time"

	"github.com/ahratul/inx-chronicle/docstore"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
)

// MilestoneAnalytic is the per-milestone analytic contract (spec §4.2).
// handle_block is called once per block in cone order; handle_transaction
// once per included transaction, before handle_block for that transaction's
// block; end_milestone once after all blocks have been processed.
//
// Implementations must not retain consumed/created slices beyond the call,
// and arithmetic on internal counters must saturate rather than panic on
// overflow (spec §7).
type MilestoneAnalytic interface {
	Kind() Kind

	// Bootstrap is called once per unspent output in the M0 snapshot,
	// before any milestone event is delivered. The snapshot iterator is
	// walked exactly once by the caller and fanned out to every
	// registered analytic's Bootstrap call (spec §9) — together with the
	// analytic's constructor (which receives the protocol parameters),
	// this plays the role of spec §4.2's per-analytic
	// "init(protocol_params, unspent_outputs_snapshot) -> Self".
	Bootstrap(o *ledger.LedgerOutput)

	HandleBlock(blk *ingest.BlockData, ctx Context)
	HandleTransaction(consumed []*ledger.LedgerSpent, created []*ledger.LedgerOutput, ctx Context)

	// EndMilestone returns the measurement for this milestone, or
	// ok=false to suppress emission.
	EndMilestone(ctx Context) (measure FieldSet, ok bool)
}

// IntervalAnalytic is the per-interval analytic contract (spec §4.3): a
// single read-only query against the document store per aligned calendar
// slot.
type IntervalAnalytic interface {
	Kind() Kind

	HandleDateRange(ctx context.Context, start time.Time, interval IntervalKind, store docstore.Store) (FieldSet, error)
}

// EndDate returns the exclusive end of the calendar slot starting at start
// with the given interval kind (spec §4.3).
func EndDate(start time.Time, interval IntervalKind) time.Time {
	switch interval {
	case IntervalDay:
		return start.AddDate(0, 0, 1)
	case IntervalWeek:
		return start.AddDate(0, 0, 7)
	case IntervalMonth:
		return start.AddDate(0, 1, 0)
	case IntervalYear:
		return start.AddDate(1, 0, 0)
	default:
		return start
	}
}
