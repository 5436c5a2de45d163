package milestone

import (
	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
	"github.com/ahratul/inx-chronicle/util"
)

// BaseTokenActivity tracks how many base tokens moved during one
// milestone: the total amount newly booked, and the amount that actually
// changed hands. State resets every milestone (it is a flow, not a ledger
// snapshot).
type BaseTokenActivity struct {
	bookedAmount      uint64
	transferredAmount uint64
}

func NewBaseTokenActivity(ledger.ProtocolParameters) *BaseTokenActivity {
	return &BaseTokenActivity{}
}

func (a *BaseTokenActivity) Kind() analytics.Kind { return analytics.KindBaseTokenActivity }

func (a *BaseTokenActivity) Bootstrap(*ledger.LedgerOutput) {}

func (a *BaseTokenActivity) HandleBlock(*ingest.BlockData, analytics.Context) {}

func (a *BaseTokenActivity) HandleTransaction(consumed []*ledger.LedgerSpent, created []*ledger.LedgerOutput, _ analytics.Context) {
	for _, c := range created {
		a.bookedAmount = util.SaturatingAddUint64(a.bookedAmount, c.Output.Amount)
	}

	n := len(consumed)
	if len(created) < n {
		n = len(created)
	}
	for i := 0; i < n; i++ {
		if !sameOwner(consumed[i].Output, created[i].Output) {
			a.transferredAmount = util.SaturatingAddUint64(a.transferredAmount, created[i].Output.Amount)
		}
	}
}

func sameOwner(a, b *ledger.Output) bool {
	if a.OwningAddress == nil || b.OwningAddress == nil {
		return a.OwningAddress == b.OwningAddress
	}
	return *a.OwningAddress == *b.OwningAddress
}

func (a *BaseTokenActivity) EndMilestone(analytics.Context) (analytics.FieldSet, bool) {
	m := &BaseTokenActivityMeasurement{BookedAmount: a.bookedAmount, TransferredAmount: a.transferredAmount}
	a.bookedAmount, a.transferredAmount = 0, 0
	return m, true
}

// BaseTokenActivityMeasurement is the fields BaseTokenActivity emits.
type BaseTokenActivityMeasurement struct {
	BookedAmount      uint64
	TransferredAmount uint64
}

func (m *BaseTokenActivityMeasurement) Fields() map[string]any {
	return map[string]any{
		"booked_amount":      m.BookedAmount,
		"transferred_amount": m.TransferredAmount,
	}
}
