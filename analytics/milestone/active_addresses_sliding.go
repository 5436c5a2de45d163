package milestone

import (
	"time"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
)

// ActiveAddressesSliding is the sliding-interval special case of
// ActiveAddresses (spec §4.2): instead of resetting on every milestone
// boundary, it tracks a single duration-bounded window of wall-clock time,
// rolling the window forward as milestone timestamps advance past it.
//
// Bootstrap seeds the window from outputs booked within
// [startTime, startTime+interval). Each subsequent call rolls the window:
// if the current milestone's timestamp has advanced past the window's end,
// the window's address count is latched into a single pending-flush slot,
// the set is cleared, and the window advances by one interval — possibly
// more than once if the gap spans multiple intervals, in which case only
// the latest crossing's count survives (spec §9 open question). EndMilestone
// returns and clears the pending slot, so at most one emission happens per
// boundary crossing; repeated calls between crossings return ok=false.
type ActiveAddressesSliding struct {
	interval uint32 // seconds

	windowStart    uint32
	windowStartSet bool

	seen map[ledger.Address]struct{}

	pending    uint64
	hasPending bool

	previousCount uint64
	havePrevious  bool
}

func NewActiveAddressesSliding(_ ledger.ProtocolParameters, interval time.Duration) *ActiveAddressesSliding {
	return &ActiveAddressesSliding{
		interval: uint32(interval / time.Second),
		seen:     make(map[ledger.Address]struct{}),
	}
}

func (a *ActiveAddressesSliding) Kind() analytics.Kind { return analytics.KindActiveAddressesSliding }

func (a *ActiveAddressesSliding) rollIfNeeded(now uint32) {
	if !a.windowStartSet {
		a.windowStart = now
		a.windowStartSet = true
		return
	}
	for a.interval > 0 && now > a.windowStart+a.interval {
		a.pending = uint64(len(a.seen))
		a.hasPending = true
		a.seen = make(map[ledger.Address]struct{})
		a.windowStart += a.interval
	}
}

func (a *ActiveAddressesSliding) Bootstrap(o *ledger.LedgerOutput) {
	a.rollIfNeeded(o.Booked.Timestamp)
	if o.Booked.Timestamp < a.windowStart || o.Booked.Timestamp >= a.windowStart+a.interval {
		return
	}
	if o.Output.OwningAddress != nil {
		a.seen[*o.Output.OwningAddress] = struct{}{}
	}
}

func (a *ActiveAddressesSliding) HandleBlock(*ingest.BlockData, analytics.Context) {}

func (a *ActiveAddressesSliding) HandleTransaction(consumed []*ledger.LedgerSpent, created []*ledger.LedgerOutput, ctx analytics.Context) {
	a.rollIfNeeded(ctx.Stamp.Timestamp)
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

func (a *ActiveAddressesSliding) EndMilestone(ctx analytics.Context) (analytics.FieldSet, bool) {
	a.rollIfNeeded(ctx.Stamp.Timestamp)
	if !a.hasPending {
		return nil, false
	}
	m := &ActiveAddressesSlidingMeasurement{Count: a.pending, PreviousCount: a.previousCount, HavePrevious: a.havePrevious}
	a.previousCount, a.havePrevious = a.pending, true
	a.hasPending = false
	return m, true
}

// ActiveAddressesSlidingMeasurement is the fields ActiveAddressesSliding
// emits, once per crossed window boundary. PreviousCount/HavePrevious carry
// the prior window's count alongside the current one, the way the original
// active-addresses table reports window start and count pairs for
// delta analysis — informational only, not part of Fields().
type ActiveAddressesSlidingMeasurement struct {
	Count         uint64
	PreviousCount uint64
	HavePrevious  bool
}

func (m *ActiveAddressesSlidingMeasurement) Fields() map[string]any {
	return map[string]any{"active_address_count": m.Count}
}
