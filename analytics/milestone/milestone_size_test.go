package milestone

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
)

func TestMilestoneSizeSplitsByPayloadKind(t *testing.T) {
	a := NewMilestoneSize(ledger.ProtocolParameters{})
	ctx := analytics.Context{}

	a.HandleBlock(&ingest.BlockData{Block: ingest.Block{Payload: ingest.MilestonePayload{}, SizeBytes: 256}}, ctx)
	a.HandleBlock(&ingest.BlockData{Block: ingest.Block{Payload: ingest.TaggedDataPayload{}, SizeBytes: 100}}, ctx)
	a.HandleBlock(&ingest.BlockData{Block: ingest.Block{Payload: ingest.TaggedDataPayload{}, SizeBytes: 50}}, ctx)
	a.HandleBlock(&ingest.BlockData{Block: ingest.Block{Payload: &ingest.TransactionPayload{}, SizeBytes: 400}}, ctx)
	a.HandleBlock(&ingest.BlockData{Block: ingest.Block{Payload: ingest.TreasuryTransactionPayload{}, SizeBytes: 64}}, ctx)
	a.HandleBlock(&ingest.BlockData{Block: ingest.Block{Payload: nil, SizeBytes: 10}}, ctx)

	measure, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	m := measure.(*MilestoneSizeMeasurement)
	require.EqualValues(t, 256, m.MilestoneBytes)
	require.EqualValues(t, 150, m.TaggedDataBytes)
	require.EqualValues(t, 400, m.TransactionBytes)
	require.EqualValues(t, 64, m.TreasuryTransactionBytes)
	require.EqualValues(t, 10, m.NoPayloadBytes)
	require.EqualValues(t, 256+150+400+64+10, m.TotalBytes)

	// state resets every milestone
	measure2, ok := a.EndMilestone(ctx)
	require.True(t, ok)
	require.Zero(t, measure2.(*MilestoneSizeMeasurement).TotalBytes)
}
