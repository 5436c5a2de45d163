package enginetest

import (
	"time"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/docstore"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
)

// DemoNetwork is the protocol parameters the demo fixture runs under.
var DemoNetwork = ledger.ProtocolParameters{
	NetworkName: "demo-1",
	TokenSupply: 1_000_000_000,
	Rent: ledger.RentStructure{
		VByteCost:       500,
		VByteFactorKey:  10,
		VByteFactorData: 1,
	},
}

// DemoM0 is the milestone index the demo snapshot was taken at.
const DemoM0 ledger.MilestoneIndex = 100

const demoM0 = DemoM0

func demoAddress(b byte) ledger.Address {
	var id [32]byte
	id[0] = b
	return ledger.Address{Kind: ledger.AddressEd25519, ID: id}
}

func demoTxID(b byte) ledger.TransactionID {
	var id [32]byte
	id[0] = b
	return id
}

// demoBookedIndex varies Booked.Index across the snapshot so fixtures
// exercise the distinction between the snapshot's own M0 and each output's
// own creation milestone: outputs 1 and 2 are long-lived, created well
// before the snapshot was taken; the rest were created exactly at M0.
func demoBookedIndex(i byte) ledger.MilestoneIndex {
	switch i {
	case 1:
		return demoM0 - 20
	case 2:
		return demoM0 - 5
	default:
		return demoM0
	}
}

// DemoSnapshot builds a small M0 unspent-output snapshot: five basic
// outputs locked to five distinct addresses.
func DemoSnapshot() []*ledger.LedgerOutput {
	var out []*ledger.LedgerOutput
	for i := byte(1); i <= 5; i++ {
		addr := demoAddress(i)
		out = append(out, &ledger.LedgerOutput{
			OutputID: ledger.NewOutputID(demoTxID(0), uint16(i)),
			Output: &ledger.Output{
				Kind:          ledger.OutputBasic,
				OwningAddress: &addr,
				Amount:        1_000_000 * uint64(i),
			},
			Booked: ledger.MilestoneStamp{Index: demoBookedIndex(i), Timestamp: 1_600_000_000},
		})
	}
	return out
}

// DemoFixtures builds one milestone (M0+1) reproducing the reference
// replay's BlockActivity counts exactly: 1 milestone block, 32 tagged-data
// blocks, 5 transaction blocks, of which all 5 are confirmed and the
// remaining 33 blocks carry no transaction.
func DemoFixtures() []MilestoneFixture {
	updates := NewLedgerUpdateIndex()
	snapshot := DemoSnapshot()
	for _, o := range snapshot {
		updates.PutCreated(o)
	}

	stamp := ledger.MilestoneStamp{Index: demoM0 + 1, Timestamp: 1_600_000_100}

	var blocks []BlockFixture
	blocks = append(blocks, BlockFixture{
		Block:    ingest.Block{Payload: ingest.MilestonePayload{}, SizeBytes: 256},
		Metadata: ingest.BlockMetadata{InclusionState: ingest.InclusionNoTransaction, ReferencedByMilestoneIndex: stamp.Index},
	})
	for i := 0; i < 32; i++ {
		blocks = append(blocks, BlockFixture{
			Block:    ingest.Block{Payload: ingest.TaggedDataPayload{}, SizeBytes: 128},
			Metadata: ingest.BlockMetadata{InclusionState: ingest.InclusionNoTransaction, ReferencedByMilestoneIndex: stamp.Index},
			Parents:  []int{0},
		})
	}

	for i := byte(0); i < 5; i++ {
		txID := demoTxID(i + 1)
		consumed := snapshot[i]
		createdAddr := demoAddress(i + 1)
		created := &ledger.Output{
			Kind:          ledger.OutputBasic,
			OwningAddress: &createdAddr,
			Amount:        consumed.Output.Amount,
		}

		spent := &ledger.LedgerSpent{LedgerOutput: *consumed, SpentAt: stamp}
		updates.PutConsumed(spent)
		createdOut := &ledger.LedgerOutput{
			OutputID: ledger.NewOutputID(txID, 0),
			Output:   created,
			Booked:   stamp,
		}
		updates.PutCreated(createdOut)

		blocks = append(blocks, BlockFixture{
			Block: ingest.Block{
				Payload: &ingest.TransactionPayload{
					TransactionID: txID,
					Inputs:        []ledger.OutputID{consumed.OutputID},
					Outputs:       []*ledger.Output{created},
				},
				SizeBytes: 512,
			},
			Metadata: ingest.BlockMetadata{InclusionState: ingest.InclusionIncluded, ReferencedByMilestoneIndex: stamp.Index},
			Parents:  []int{1},
		})
	}

	return []MilestoneFixture{{
		Stamp:   stamp,
		Params:  DemoNetwork,
		Blocks:  blocks,
		Updates: updates,
	}}
}

// DemoIntervalTimestamp is the moment DemoFixtures' one milestone
// confirmed at, as a time.Time, for Interval Driver demos that need a
// calendar slot to query against.
func DemoIntervalTimestamp() time.Time {
	return time.Unix(1_600_000_100, 0).UTC()
}

// DemoIntervalSlotStart is the start of the calendar day containing
// DemoIntervalTimestamp.
func DemoIntervalSlotStart() time.Time {
	return DemoIntervalSlotStartFor(analytics.IntervalDay)
}

// DemoIntervalSlotStartFor aligns DemoIntervalTimestamp to the start of
// the calendar slot for the given interval kind.
func DemoIntervalSlotStartFor(kind analytics.IntervalKind) time.Time {
	t := DemoIntervalTimestamp()
	switch kind {
	case analytics.IntervalWeek:
		offset := (int(t.Weekday()) + 6) % 7 // Monday-aligned
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return d.AddDate(0, 0, -offset)
	case analytics.IntervalMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case analytics.IntervalYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// DemoTransactionRecords derives the document-store records the five demo
// transactions would have produced: each consumes one snapshot output and
// creates a new output at the same address, so every demo address appears
// as both input and output.
func DemoTransactionRecords() []docstore.TransactionRecord {
	snapshot := DemoSnapshot()
	out := make([]docstore.TransactionRecord, 0, len(snapshot))
	for _, o := range snapshot {
		out = append(out, docstore.TransactionRecord{
			InputAddresses:  []ledger.Address{*o.Output.OwningAddress},
			OutputAddresses: []ledger.Address{*o.Output.OwningAddress},
		})
	}
	return out
}
