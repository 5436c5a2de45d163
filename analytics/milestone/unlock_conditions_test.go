package milestone

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ledger"
)

func TestUnlockConditionsStorageDepositReturnInnerAmount(t *testing.T) {
	a := NewUnlockConditions(ledger.ProtocolParameters{})
	addr := ledger.NewEd25519Address([]byte("owner"))
	ret := ledger.NewEd25519Address([]byte("returnee"))

	out := &ledger.Output{
		Kind:          ledger.OutputBasic,
		OwningAddress: &addr,
		Amount:        500,
		Unlocks: ledger.UnlockConditions{
			StorageDepositReturn: &ledger.StorageDepositReturnUnlockCondition{ReturnAddress: ret, Amount: 50},
		},
	}
	a.Bootstrap(&ledger.LedgerOutput{OutputID: ledger.NewOutputID(ledger.TransactionID{}, 0), Output: out})

	ctx := analytics.Context{}
	measure, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	m := measure.(*UnlockConditionsMeasurement)
	require.EqualValues(t, 1, m.StorageDepositReturn.count)
	require.EqualValues(t, 500, m.StorageDepositReturn.amount)
	require.EqualValues(t, 50, m.StorageDepositReturnInnerAmount)

	// consuming the output removes both the outer total and the inner total.
	a.HandleTransaction([]*ledger.LedgerSpent{{
		LedgerOutput: ledger.LedgerOutput{OutputID: ledger.NewOutputID(ledger.TransactionID{}, 0), Output: out},
	}}, nil, ctx)

	measure2, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	m2 := measure2.(*UnlockConditionsMeasurement)
	require.Zero(t, m2.StorageDepositReturn.count)
	require.Zero(t, m2.StorageDepositReturnInnerAmount)
}
