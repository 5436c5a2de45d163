package milestone

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ledger"
)

func TestAddressBalanceTracksBootstrapAndTransfers(t *testing.T) {
	a := NewAddressBalance(ledger.ProtocolParameters{})
	ctx := analytics.Context{}

	addr1 := ledger.NewEd25519Address([]byte("addr-1"))
	addr2 := ledger.NewEd25519Address([]byte("addr-2"))

	a.Bootstrap(&ledger.LedgerOutput{Output: &ledger.Output{OwningAddress: &addr1, Amount: 50}})
	a.Bootstrap(&ledger.LedgerOutput{Output: &ledger.Output{OwningAddress: &addr2, Amount: 5_000}})

	measure, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	m := measure.(*AddressBalanceMeasurement)
	require.EqualValues(t, 2, m.AddressWithBalanceCount)

	// moving addr1's whole balance to addr2 should drop addr1 out of the
	// balance map entirely and add its amount to addr2's balance.
	a.HandleTransaction(
		[]*ledger.LedgerSpent{{LedgerOutput: ledger.LedgerOutput{Output: &ledger.Output{OwningAddress: &addr1, Amount: 50}}}},
		[]*ledger.LedgerOutput{{Output: &ledger.Output{OwningAddress: &addr2, Amount: 50}}},
		ctx,
	)

	measure2, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	m2 := measure2.(*AddressBalanceMeasurement)
	require.EqualValues(t, 1, m2.AddressWithBalanceCount)
	require.EqualValues(t, 5_050, a.balances[addr2])
	_, stillPresent := a.balances[addr1]
	require.False(t, stillPresent)
}

func TestBalanceBucketIndex(t *testing.T) {
	require.Equal(t, 0, balanceBucketIndex(0))
	require.Equal(t, 0, balanceBucketIndex(1))
	require.Equal(t, 1, balanceBucketIndex(10))
	require.Equal(t, len(balanceBucketThresholds)-1, balanceBucketIndex(50_000_000))
}
