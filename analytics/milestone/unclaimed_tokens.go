package milestone

import (
	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
	"github.com/ahratul/inx-chronicle/util"
)

// UnclaimedTokens tracks the (count, amount) of outputs that were created
// exactly at the M0 snapshot milestone and have never been consumed since —
// tokens that entered the ledger at the bootstrap point and have sat
// unclaimed ever since, as opposed to any output merely present in the
// snapshot regardless of how much older it is. Only Bootstrap adds to the
// set; HandleTransaction only ever removes from it. Never reset between
// milestones.
type UnclaimedTokens struct {
	m0 ledger.MilestoneIndex

	unclaimed map[ledger.OutputID]uint64

	count  uint64
	amount uint64
}

// NewUnclaimedTokens constructs an UnclaimedTokens analytic scoped to m0,
// the milestone the bootstrap snapshot was taken at. Bootstrap ignores any
// snapshot output whose own Booked.Index predates m0.
func NewUnclaimedTokens(_ ledger.ProtocolParameters, m0 ledger.MilestoneIndex) *UnclaimedTokens {
	return &UnclaimedTokens{m0: m0, unclaimed: make(map[ledger.OutputID]uint64)}
}

func (a *UnclaimedTokens) Kind() analytics.Kind { return analytics.KindUnclaimedTokens }

func (a *UnclaimedTokens) Bootstrap(o *ledger.LedgerOutput) {
	if o.Booked.Index != a.m0 {
		return
	}
	a.unclaimed[o.OutputID] = o.Output.Amount
	a.count++
	a.amount = util.SaturatingAddUint64(a.amount, o.Output.Amount)
}

func (a *UnclaimedTokens) HandleBlock(*ingest.BlockData, analytics.Context) {}

func (a *UnclaimedTokens) HandleTransaction(consumed []*ledger.LedgerSpent, _ []*ledger.LedgerOutput, _ analytics.Context) {
	for _, c := range consumed {
		amt, ok := a.unclaimed[c.OutputID]
		if !ok {
			continue
		}
		delete(a.unclaimed, c.OutputID)
		if a.count > 0 {
			a.count--
		}
		a.amount = util.SaturatingSubUint64(a.amount, amt)
	}
}

func (a *UnclaimedTokens) EndMilestone(analytics.Context) (analytics.FieldSet, bool) {
	return &UnclaimedTokensMeasurement{Count: a.count, Amount: a.amount}, true
}

// UnclaimedTokensMeasurement is the fields UnclaimedTokens emits.
type UnclaimedTokensMeasurement struct {
	Count  uint64
	Amount uint64
}

func (m *UnclaimedTokensMeasurement) Fields() map[string]any {
	return map[string]any{
		"unclaimed_count":  m.Count,
		"unclaimed_amount": m.Amount,
	}
}
