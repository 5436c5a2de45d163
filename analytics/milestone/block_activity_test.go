package milestone

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
)

func TestBlockActivityBoundaryScenario1(t *testing.T) {
	a := NewBlockActivity(ledger.ProtocolParameters{})
	ctx := analytics.Context{}

	a.HandleBlock(&ingest.BlockData{
		Block:    ingest.Block{Payload: ingest.MilestonePayload{}},
		Metadata: ingest.BlockMetadata{InclusionState: ingest.InclusionNoTransaction},
	}, ctx)
	for i := 0; i < 32; i++ {
		a.HandleBlock(&ingest.BlockData{
			Block:    ingest.Block{Payload: ingest.TaggedDataPayload{}},
			Metadata: ingest.BlockMetadata{InclusionState: ingest.InclusionNoTransaction},
		}, ctx)
	}
	for i := 0; i < 5; i++ {
		a.HandleBlock(&ingest.BlockData{
			Block:    ingest.Block{Payload: &ingest.TransactionPayload{}},
			Metadata: ingest.BlockMetadata{InclusionState: ingest.InclusionIncluded},
		}, ctx)
	}

	measure, ok := a.EndMilestone(ctx)
	require.True(t, ok)

	m := measure.(*BlockActivityMeasurement)
	require.EqualValues(t, 1, m.MilestoneCount)
	require.EqualValues(t, 0, m.NoPayloadCount)
	require.EqualValues(t, 32, m.TaggedDataCount)
	require.EqualValues(t, 5, m.TransactionCount)
	require.EqualValues(t, 0, m.TreasuryTransactionCount)
	require.EqualValues(t, 5, m.ConfirmedCount)
	require.EqualValues(t, 0, m.ConflictingCount)
	require.EqualValues(t, 33, m.NoTransactionCount)

	// state resets after EndMilestone
	measure2, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	require.Zero(t, measure2.(*BlockActivityMeasurement).MilestoneCount)
}
