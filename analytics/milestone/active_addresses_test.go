package milestone

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ledger"
)

func TestActiveAddressesCountsDistinctAndResets(t *testing.T) {
	a := NewActiveAddresses(ledger.ProtocolParameters{})
	ctx := analytics.Context{}

	addr1 := ledger.NewEd25519Address([]byte("addr-1"))
	addr2 := ledger.NewEd25519Address([]byte("addr-2"))

	a.HandleTransaction(
		[]*ledger.LedgerSpent{{LedgerOutput: ledger.LedgerOutput{Output: &ledger.Output{OwningAddress: &addr1}}}},
		[]*ledger.LedgerOutput{{Output: &ledger.Output{OwningAddress: &addr2}}},
		ctx,
	)
	// a repeat of addr1 in the same milestone must not double-count.
	a.HandleTransaction(
		[]*ledger.LedgerSpent{{LedgerOutput: ledger.LedgerOutput{Output: &ledger.Output{OwningAddress: &addr1}}}},
		nil,
		ctx,
	)

	measure, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	require.EqualValues(t, 2, measure.(*ActiveAddressesMeasurement).Count)

	// state resets every milestone
	measure2, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	require.Zero(t, measure2.(*ActiveAddressesMeasurement).Count)
}

func TestActiveAddressesIgnoresNilOwner(t *testing.T) {
	a := NewActiveAddresses(ledger.ProtocolParameters{})
	ctx := analytics.Context{}

	a.HandleTransaction(
		[]*ledger.LedgerSpent{{LedgerOutput: ledger.LedgerOutput{Output: &ledger.Output{}}}},
		nil,
		ctx,
	)
	measure, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	require.Zero(t, measure.(*ActiveAddressesMeasurement).Count)
}
