package milestone

import (
	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
)

// ActiveAddresses counts the distinct addresses touched, as sender or
// receiver, by any transaction within one milestone. State resets every
// milestone.
type ActiveAddresses struct {
	seen map[ledger.Address]struct{}
}

func NewActiveAddresses(ledger.ProtocolParameters) *ActiveAddresses {
	return &ActiveAddresses{seen: make(map[ledger.Address]struct{})}
}

func (a *ActiveAddresses) Kind() analytics.Kind { return analytics.KindActiveAddresses }

func (a *ActiveAddresses) Bootstrap(*ledger.LedgerOutput) {}

func (a *ActiveAddresses) HandleBlock(*ingest.BlockData, analytics.Context) {}

func (a *ActiveAddresses) HandleTransaction(consumed []*ledger.LedgerSpent, created []*ledger.LedgerOutput, _ analytics.Context) {
	for _, c := range consumed {
		if c.Output.OwningAddress != nil {
			a.seen[*c.Output.OwningAddress] = struct{}{}
		}
	}
	for _, n := range created {
		if n.Output.OwningAddress != nil {
			a.seen[*n.Output.OwningAddress] = struct{}{}
		}
	}
}

func (a *ActiveAddresses) EndMilestone(analytics.Context) (analytics.FieldSet, bool) {
	m := &ActiveAddressesMeasurement{Count: uint64(len(a.seen))}
	a.seen = make(map[ledger.Address]struct{})
	return m, true
}

// ActiveAddressesMeasurement is the fields ActiveAddresses emits.
type ActiveAddressesMeasurement struct {
	Count uint64
}

func (m *ActiveAddressesMeasurement) Fields() map[string]any {
	return map[string]any{"active_address_count": m.Count}
}
