// Package interval implements the interval analytic catalogue (spec
// §4.3): read-only queries against the document store, run once per
// aligned calendar slot by the Interval Driver.
package interval

import (
	"context"
	"time"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/docstore"
	"github.com/ahratul/inx-chronicle/ledger"
)

// AddressActivity counts the distinct addresses appearing as input or
// output on any transaction within [start, end) (spec §4.3). It is the
// only interval analytic in scope.
type AddressActivity struct{}

func NewAddressActivity() *AddressActivity { return &AddressActivity{} }

func (AddressActivity) Kind() analytics.Kind { return analytics.KindAddressActivity }

func (AddressActivity) HandleDateRange(ctx context.Context, start time.Time, kind analytics.IntervalKind, store docstore.Store) (analytics.FieldSet, error) {
	end := analytics.EndDate(start, kind)

	records, err := store.TransactionsInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	seen := make(map[ledger.Address]struct{})
	for _, r := range records {
		for _, a := range r.InputAddresses {
			seen[a] = struct{}{}
		}
		for _, a := range r.OutputAddresses {
			seen[a] = struct{}{}
		}
	}

	return &AddressActivityMeasurement{
		Start:    start,
		Interval: kind,
		Count:    uint64(len(seen)),
	}, nil
}

// AddressActivityMeasurement is the fields AddressActivity emits.
type AddressActivityMeasurement struct {
	Start    time.Time
	Interval analytics.IntervalKind
	Count    uint64
}

func (m *AddressActivityMeasurement) Fields() map[string]any {
	return map[string]any{
		"active_address_count": m.Count,
	}
}
