package milestone

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ledger"
)

func basicOutput(addr ledger.Address, amount uint64) *ledger.Output {
	return &ledger.Output{Kind: ledger.OutputBasic, OwningAddress: &addr, Amount: amount}
}

func TestLedgerOutputsCumulative(t *testing.T) {
	a := NewLedgerOutputs(ledger.ProtocolParameters{})
	addr := ledger.NewEd25519Address([]byte("k1"))

	a.Bootstrap(&ledger.LedgerOutput{OutputID: ledger.NewOutputID(ledger.TransactionID{}, 0), Output: basicOutput(addr, 100)})
	a.Bootstrap(&ledger.LedgerOutput{OutputID: ledger.NewOutputID(ledger.TransactionID{}, 1), Output: basicOutput(addr, 200)})

	ctx := analytics.Context{}
	m1, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	bo := m1.(*LedgerOutputsMeasurement).Basic
	require.EqualValues(t, 2, bo.count)
	require.EqualValues(t, 300, bo.amount)

	// a transaction consumes one and creates two — state must not reset
	// between milestones (cumulative).
	consumed := []*ledger.LedgerSpent{{
		LedgerOutput: ledger.LedgerOutput{OutputID: ledger.NewOutputID(ledger.TransactionID{}, 0), Output: basicOutput(addr, 100)},
	}}
	created := []*ledger.LedgerOutput{
		{OutputID: ledger.NewOutputID(ledger.TransactionID{1}, 0), Output: basicOutput(addr, 60)},
		{OutputID: ledger.NewOutputID(ledger.TransactionID{1}, 1), Output: basicOutput(addr, 40)},
	}
	a.HandleTransaction(consumed, created, ctx)

	m2, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	bo2 := m2.(*LedgerOutputsMeasurement).Basic
	require.EqualValues(t, 3, bo2.count)
	require.EqualValues(t, 300, bo2.amount)
}
