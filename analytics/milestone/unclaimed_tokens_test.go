package milestone

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ledger"
)

func TestUnclaimedTokensOnlyKeepsOutputsCreatedAtM0(t *testing.T) {
	const m0 = ledger.MilestoneIndex(100)
	a := NewUnclaimedTokens(ledger.ProtocolParameters{}, m0)

	atM0 := ledger.NewOutputID(ledger.TransactionID{1}, 0)
	olderThanM0 := ledger.NewOutputID(ledger.TransactionID{2}, 0)

	a.Bootstrap(&ledger.LedgerOutput{
		OutputID: atM0,
		Output:   &ledger.Output{Amount: 1_000},
		Booked:   ledger.MilestoneStamp{Index: m0},
	})
	a.Bootstrap(&ledger.LedgerOutput{
		OutputID: olderThanM0,
		Output:   &ledger.Output{Amount: 2_000},
		Booked:   ledger.MilestoneStamp{Index: m0 - 10},
	})

	measure, ok := a.EndMilestone(analytics.Context{})
	require.True(t, ok)
	m := measure.(*UnclaimedTokensMeasurement)
	require.EqualValues(t, 1, m.Count)
	require.EqualValues(t, 1_000, m.Amount)
}

func TestUnclaimedTokensConsumptionRemovesFromSet(t *testing.T) {
	const m0 = ledger.MilestoneIndex(100)
	a := NewUnclaimedTokens(ledger.ProtocolParameters{}, m0)

	id := ledger.NewOutputID(ledger.TransactionID{7}, 0)
	a.Bootstrap(&ledger.LedgerOutput{
		OutputID: id,
		Output:   &ledger.Output{Amount: 500},
		Booked:   ledger.MilestoneStamp{Index: m0},
	})

	a.HandleTransaction([]*ledger.LedgerSpent{
		{LedgerOutput: ledger.LedgerOutput{OutputID: id, Output: &ledger.Output{Amount: 500}}},
	}, nil, analytics.Context{})

	measure, ok := a.EndMilestone(analytics.Context{})
	require.True(t, ok)
	m := measure.(*UnclaimedTokensMeasurement)
	require.Zero(t, m.Count)
	require.Zero(t, m.Amount)

	// consuming an output that was never in the unclaimed set (or already
	// removed) must not underflow the counters.
	a.HandleTransaction([]*ledger.LedgerSpent{
		{LedgerOutput: ledger.LedgerOutput{OutputID: id, Output: &ledger.Output{Amount: 500}}},
	}, nil, analytics.Context{})
	measure2, ok := a.EndMilestone(analytics.Context{})
	require.True(t, ok)
	require.Zero(t, measure2.(*UnclaimedTokensMeasurement).Count)
}
