package interval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/docstore"
	"github.com/ahratul/inx-chronicle/ledger"
)

type fakeStore struct {
	records []docstore.TransactionRecord
}

func (s *fakeStore) TransactionsInRange(context.Context, time.Time, time.Time) ([]docstore.TransactionRecord, error) {
	return s.records, nil
}

func (s *fakeStore) OutputsAtLedgerIndex(context.Context, ledger.MilestoneIndex, docstore.IndexerQuery) ([]ledger.LedgerOutput, error) {
	return nil, nil
}

func (s *fakeStore) BalanceOfAddress(context.Context, ledger.Address, ledger.MilestoneIndex) (uint64, error) {
	return 0, nil
}

func TestAddressActivityCountsDistinctAddresses(t *testing.T) {
	a1 := ledger.NewEd25519Address([]byte("a1"))
	a2 := ledger.NewEd25519Address([]byte("a2"))
	a3 := ledger.NewEd25519Address([]byte("a3"))

	store := &fakeStore{records: []docstore.TransactionRecord{
		{InputAddresses: []ledger.Address{a1}, OutputAddresses: []ledger.Address{a2}},
		{InputAddresses: []ledger.Address{a2}, OutputAddresses: []ledger.Address{a3}},
	}}

	a := NewAddressActivity()
	require.Equal(t, analytics.KindAddressActivity, a.Kind())

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	measure, err := a.HandleDateRange(context.Background(), start, analytics.IntervalDay, store)
	require.NoError(t, err)

	m := measure.(*AddressActivityMeasurement)
	require.EqualValues(t, 3, m.Count)
	require.Equal(t, analytics.IntervalDay, m.Interval)
	require.True(t, m.Start.Equal(start))
	require.EqualValues(t, 3, m.Fields()["active_address_count"])
}

func TestAddressActivityEmptyRange(t *testing.T) {
	store := &fakeStore{}
	a := NewAddressActivity()

	measure, err := a.HandleDateRange(context.Background(), time.Now(), analytics.IntervalWeek, store)
	require.NoError(t, err)
	require.Zero(t, measure.(*AddressActivityMeasurement).Count)
}
