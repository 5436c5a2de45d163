package milestone

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ledger"
)

func TestOutputActivityAliasStateChangeTakesPrecedence(t *testing.T) {
	a := NewOutputActivity(ledger.ProtocolParameters{})
	chainID := ledger.ChainID{1, 2, 3}
	addr := ledger.NewEd25519Address([]byte("governor-old"))
	addr2 := ledger.NewEd25519Address([]byte("governor-new"))

	oldState := uint32(4)
	newState := uint32(5)

	consumed := []*ledger.LedgerSpent{{
		LedgerOutput: ledger.LedgerOutput{
			OutputID: ledger.NewOutputID(ledger.TransactionID{}, 0),
			Output: &ledger.Output{
				Kind: ledger.OutputAlias, ChainID: &chainID,
				AliasStateIndex: &oldState, GovernorAddress: &addr,
			},
		},
	}}
	created := []*ledger.LedgerOutput{{
		OutputID: ledger.NewOutputID(ledger.TransactionID{1}, 0),
		Output: &ledger.Output{
			Kind: ledger.OutputAlias, ChainID: &chainID,
			AliasStateIndex: &newState, GovernorAddress: &addr2,
		},
	}}

	ctx := analytics.Context{}
	a.HandleTransaction(consumed, created, ctx)

	measure, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	m := measure.(*OutputActivityMeasurement)
	require.EqualValues(t, 1, m.Alias.stateChanged)
	require.Zero(t, m.Alias.governorChanged)
	require.Zero(t, m.Alias.created)
	require.Zero(t, m.Alias.destroyed)
}

func TestOutputActivityAliasGovernorOnlyChange(t *testing.T) {
	a := NewOutputActivity(ledger.ProtocolParameters{})
	chainID := ledger.ChainID{4, 5, 6}
	addr := ledger.NewEd25519Address([]byte("governor-old"))
	addr2 := ledger.NewEd25519Address([]byte("governor-new"))
	state := uint32(7)

	consumed := []*ledger.LedgerSpent{{
		LedgerOutput: ledger.LedgerOutput{
			OutputID: ledger.NewOutputID(ledger.TransactionID{}, 0),
			Output: &ledger.Output{
				Kind: ledger.OutputAlias, ChainID: &chainID,
				AliasStateIndex: &state, GovernorAddress: &addr,
			},
		},
	}}
	created := []*ledger.LedgerOutput{{
		OutputID: ledger.NewOutputID(ledger.TransactionID{1}, 0),
		Output: &ledger.Output{
			Kind: ledger.OutputAlias, ChainID: &chainID,
			AliasStateIndex: &state, GovernorAddress: &addr2,
		},
	}}

	ctx := analytics.Context{}
	a.HandleTransaction(consumed, created, ctx)

	measure, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	m := measure.(*OutputActivityMeasurement)
	require.EqualValues(t, 1, m.Alias.governorChanged)
	require.Zero(t, m.Alias.stateChanged)
}

func TestOutputActivityFoundryTransferredNotStateChanged(t *testing.T) {
	a := NewOutputActivity(ledger.ProtocolParameters{})
	chainID := ledger.ChainID{2}

	consumed := []*ledger.LedgerSpent{{
		LedgerOutput: ledger.LedgerOutput{
			OutputID: ledger.NewOutputID(ledger.TransactionID{}, 0),
			Output:   &ledger.Output{Kind: ledger.OutputFoundry, ChainID: &chainID},
		},
	}}
	created := []*ledger.LedgerOutput{{
		OutputID: ledger.NewOutputID(ledger.TransactionID{1}, 0),
		Output:   &ledger.Output{Kind: ledger.OutputFoundry, ChainID: &chainID},
	}}

	ctx := analytics.Context{}
	a.HandleTransaction(consumed, created, ctx)

	measure, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	m := measure.(*OutputActivityMeasurement)
	require.EqualValues(t, 1, m.Foundry.transferred)
	require.Zero(t, m.Foundry.created)
	require.Zero(t, m.Foundry.destroyed)
}

func TestOutputActivityDestroyedAndCreated(t *testing.T) {
	a := NewOutputActivity(ledger.ProtocolParameters{})
	oldChain := ledger.ChainID{9}
	newChain := ledger.ChainID{8}

	consumed := []*ledger.LedgerSpent{{
		LedgerOutput: ledger.LedgerOutput{
			OutputID: ledger.NewOutputID(ledger.TransactionID{}, 0),
			Output:   &ledger.Output{Kind: ledger.OutputNFT, ChainID: &oldChain},
		},
	}}
	created := []*ledger.LedgerOutput{{
		OutputID: ledger.NewOutputID(ledger.TransactionID{1}, 0),
		Output:   &ledger.Output{Kind: ledger.OutputNFT, ChainID: &newChain},
	}}

	ctx := analytics.Context{}
	a.HandleTransaction(consumed, created, ctx)

	measure, _ := a.EndMilestone(ctx)
	m := measure.(*OutputActivityMeasurement)
	require.EqualValues(t, 1, m.NFT.destroyed)
	require.EqualValues(t, 1, m.NFT.created)
	require.Zero(t, m.NFT.transferred)
}
