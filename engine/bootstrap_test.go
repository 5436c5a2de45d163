package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/analytics/milestone"
	"github.com/ahratul/inx-chronicle/enginetest"
	"github.com/ahratul/inx-chronicle/ledger"
)

func TestBootstrapFansOutToEveryAnalytic(t *testing.T) {
	params := enginetest.DemoNetwork
	ledgerOutputs := milestone.NewLedgerOutputs(params)
	unclaimed := milestone.NewUnclaimedTokens(params, enginetest.DemoM0)
	analyticsSet := []analytics.MilestoneAnalytic{ledgerOutputs, unclaimed}

	snapshot := enginetest.DemoSnapshot()
	it := ledger.NewSliceUnspentOutputIterator(enginetest.DemoM0, snapshot)

	require.NoError(t, Bootstrap(it, enginetest.DemoM0, analyticsSet))

	measure, ok := ledgerOutputs.EndMilestone(analytics.Context{})
	require.True(t, ok)
	fields := measure.(*milestone.LedgerOutputsMeasurement).Fields()
	require.EqualValues(t, len(snapshot), fields["basic_count"])

	// Bootstrap fans out every snapshot output regardless of its own
	// Booked.Index, but UnclaimedTokens only keeps the ones created exactly
	// at M0: two of the five demo outputs predate the snapshot.
	um, ok := unclaimed.EndMilestone(analytics.Context{})
	require.True(t, ok)
	require.EqualValues(t, len(snapshot)-2, um.Fields()["unclaimed_count"])
}

func TestBootstrapRejectsWrongSnapshotIndex(t *testing.T) {
	snapshot := enginetest.DemoSnapshot()
	it := ledger.NewSliceUnspentOutputIterator(enginetest.DemoM0, snapshot)

	err := Bootstrap(it, 999, nil)
	require.Error(t, err)
	var idxErr *InvalidUnspentOutputIndexError
	require.ErrorAs(t, err, &idxErr)
	require.EqualValues(t, enginetest.DemoM0, idxErr.Found)
	require.EqualValues(t, 999, idxErr.Expected)
}

// TestBootstrapToleratesOutputsOlderThanSnapshot guards against
// regressing to a per-output index check: long-lived outputs booked before
// M0 must still be fanned out, not rejected.
func TestBootstrapToleratesOutputsOlderThanSnapshot(t *testing.T) {
	snapshot := enginetest.DemoSnapshot()

	var sawOlderThanM0 bool
	for _, o := range snapshot {
		if o.Booked.Index < enginetest.DemoM0 {
			sawOlderThanM0 = true
		}
	}
	require.True(t, sawOlderThanM0, "fixture must contain at least one output older than M0")

	it := ledger.NewSliceUnspentOutputIterator(enginetest.DemoM0, snapshot)
	ledgerOutputs := milestone.NewLedgerOutputs(enginetest.DemoNetwork)
	require.NoError(t, Bootstrap(it, enginetest.DemoM0, []analytics.MilestoneAnalytic{ledgerOutputs}))

	measure, ok := ledgerOutputs.EndMilestone(analytics.Context{})
	require.True(t, ok)
	require.EqualValues(t, len(snapshot), measure.Fields()["basic_count"])
}
