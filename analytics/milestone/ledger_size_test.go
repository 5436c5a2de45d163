package milestone

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ledger"
)

func demoRentParams() ledger.ProtocolParameters {
	return ledger.ProtocolParameters{
		Rent: ledger.RentStructure{VByteCost: 500, VByteFactorKey: 10, VByteFactorData: 1},
	}
}

func TestLedgerSizeAccumulatesBootstrapDeposit(t *testing.T) {
	params := demoRentParams()
	a := NewLedgerSize(params)

	addr := ledger.NewEd25519Address([]byte("addr"))
	out := &ledger.Output{OwningAddress: &addr, Amount: 1_000}
	keyBytes, dataBytes, deposit := params.Rent.StorageDeposit(out)

	a.Bootstrap(&ledger.LedgerOutput{Output: out})

	measure, ok := a.EndMilestone(analytics.Context{})
	require.True(t, ok)
	m := measure.(*LedgerSizeMeasurement)
	require.EqualValues(t, keyBytes, m.TotalKeyBytes)
	require.EqualValues(t, dataBytes, m.TotalDataBytes)
	require.EqualValues(t, deposit, m.TotalStorageDepositAmount)
}

func TestLedgerSizeConsumedSubtractsCreatedAdds(t *testing.T) {
	params := demoRentParams()
	a := NewLedgerSize(params)

	addr := ledger.NewEd25519Address([]byte("addr"))
	consumedOut := &ledger.Output{OwningAddress: &addr, Amount: 1_000}
	a.Bootstrap(&ledger.LedgerOutput{Output: consumedOut})

	createdOut := &ledger.Output{OwningAddress: &addr, Amount: 2_000}
	ctx := analytics.Context{ProtocolParams: params}
	a.HandleTransaction(
		[]*ledger.LedgerSpent{{LedgerOutput: ledger.LedgerOutput{Output: consumedOut}}},
		[]*ledger.LedgerOutput{{Output: createdOut}},
		ctx,
	)

	_, _, createdDeposit := params.Rent.StorageDeposit(createdOut)
	measure, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	m := measure.(*LedgerSizeMeasurement)
	require.EqualValues(t, createdDeposit, m.TotalStorageDepositAmount)
}

func TestLedgerSizeNeverResetsBetweenMilestones(t *testing.T) {
	params := demoRentParams()
	a := NewLedgerSize(params)

	addr := ledger.NewEd25519Address([]byte("addr"))
	a.Bootstrap(&ledger.LedgerOutput{Output: &ledger.Output{OwningAddress: &addr, Amount: 1_000}})

	measure1, _ := a.EndMilestone(analytics.Context{ProtocolParams: params})
	measure2, _ := a.EndMilestone(analytics.Context{ProtocolParams: params})
	require.Equal(t, measure1.(*LedgerSizeMeasurement).TotalStorageDepositAmount, measure2.(*LedgerSizeMeasurement).TotalStorageDepositAmount)
}
