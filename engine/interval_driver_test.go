package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/analytics/interval"
	"github.com/ahratul/inx-chronicle/docstore"
	"github.com/ahratul/inx-chronicle/enginetest"
	"github.com/ahratul/inx-chronicle/ledger"
	"github.com/ahratul/inx-chronicle/sink"
)

type fakeIntervalStore struct {
	records []docstore.TransactionRecord
}

func (s *fakeIntervalStore) TransactionsInRange(context.Context, time.Time, time.Time) ([]docstore.TransactionRecord, error) {
	return s.records, nil
}

func (s *fakeIntervalStore) OutputsAtLedgerIndex(context.Context, ledger.MilestoneIndex, docstore.IndexerQuery) ([]ledger.LedgerOutput, error) {
	return nil, nil
}

func (s *fakeIntervalStore) BalanceOfAddress(context.Context, ledger.Address, ledger.MilestoneIndex) (uint64, error) {
	return 0, nil
}

func TestIntervalDriverRunWritesEnqueuedSlot(t *testing.T) {
	a1 := ledger.NewEd25519Address([]byte("addr-1"))
	a2 := ledger.NewEd25519Address([]byte("addr-2"))
	store := &fakeIntervalStore{records: []docstore.TransactionRecord{
		{InputAddresses: []ledger.Address{a1}, OutputAddresses: []ledger.Address{a2}},
	}}

	recordingSink := enginetest.NewSink()
	adapter := sink.NewAdapter(recordingSink)
	driver := NewIntervalDriver(interval.NewAddressActivity(), store, adapter, nil, 0)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	driver.Enqueue(start, analytics.IntervalDay)
	driver.Close()

	require.NoError(t, driver.Run(context.Background()))

	fields := recordingSink.ByMeasurement(string(analytics.KindAddressActivity))
	require.NotNil(t, fields)
	require.EqualValues(t, 2, fields["active_address_count"])
}

// failingAnalytic errors for one specific slot start and succeeds for any
// other, to exercise IntervalDriver.Run draining past a failing slot
// instead of stalling on it.
type failingAnalytic struct {
	failAt time.Time
}

func (a *failingAnalytic) Kind() analytics.Kind { return analytics.KindAddressActivity }

func (a *failingAnalytic) HandleDateRange(_ context.Context, start time.Time, kind analytics.IntervalKind, _ docstore.Store) (analytics.FieldSet, error) {
	if start.Equal(a.failAt) {
		return nil, errors.New("boom")
	}
	return &interval.AddressActivityMeasurement{Start: start, Interval: kind, Count: 1}, nil
}

func TestIntervalDriverRunContinuesPastFailingSlot(t *testing.T) {
	badSlot := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	goodSlot := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	recordingSink := enginetest.NewSink()
	adapter := sink.NewAdapter(recordingSink)
	driver := NewIntervalDriver(&failingAnalytic{failAt: badSlot}, &fakeIntervalStore{}, adapter, nil, 0)

	driver.Enqueue(badSlot, analytics.IntervalDay)
	driver.Enqueue(goodSlot, analytics.IntervalDay)
	driver.Close()

	err := driver.Run(context.Background())
	require.Error(t, err)

	points := recordingSink.Points()
	require.Len(t, points, 1)
	require.True(t, points[0].Time.Equal(goodSlot))
}

func TestIntervalDriverCloseDrainsWithoutEnqueue(t *testing.T) {
	recordingSink := enginetest.NewSink()
	adapter := sink.NewAdapter(recordingSink)
	driver := NewIntervalDriver(interval.NewAddressActivity(), &fakeIntervalStore{}, adapter, nil, 0)

	driver.Close()
	require.NoError(t, driver.Run(context.Background()))
	require.Empty(t, recordingSink.Points())
}
