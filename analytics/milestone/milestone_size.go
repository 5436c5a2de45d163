package milestone

import (
	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
	"github.com/ahratul/inx-chronicle/util"
)

// MilestoneSize tracks the total block-cone byte footprint of one
// milestone, split by payload kind. State resets every milestone.
type MilestoneSize struct {
	totalBytes             uint64
	taggedDataBytes        uint64
	transactionBytes       uint64
	milestoneBytes         uint64
	treasuryTransactionBytes uint64
	noPayloadBytes         uint64
}

func NewMilestoneSize(ledger.ProtocolParameters) *MilestoneSize {
	return &MilestoneSize{}
}

func (a *MilestoneSize) Kind() analytics.Kind { return analytics.KindMilestoneSize }

func (a *MilestoneSize) Bootstrap(*ledger.LedgerOutput) {}

func (a *MilestoneSize) HandleBlock(blk *ingest.BlockData, _ analytics.Context) {
	size := uint64(blk.Block.SizeBytes)
	a.totalBytes = util.SaturatingAddUint64(a.totalBytes, size)

	switch ingest.PayloadKindOf(blk.Block.Payload) {
	case ingest.PayloadNone:
		a.noPayloadBytes = util.SaturatingAddUint64(a.noPayloadBytes, size)
	case ingest.PayloadTaggedData:
		a.taggedDataBytes = util.SaturatingAddUint64(a.taggedDataBytes, size)
	case ingest.PayloadTransaction:
		a.transactionBytes = util.SaturatingAddUint64(a.transactionBytes, size)
	case ingest.PayloadTreasuryTransaction:
		a.treasuryTransactionBytes = util.SaturatingAddUint64(a.treasuryTransactionBytes, size)
	case ingest.PayloadMilestone:
		a.milestoneBytes = util.SaturatingAddUint64(a.milestoneBytes, size)
	}
}

func (a *MilestoneSize) HandleTransaction([]*ledger.LedgerSpent, []*ledger.LedgerOutput, analytics.Context) {}

func (a *MilestoneSize) EndMilestone(analytics.Context) (analytics.FieldSet, bool) {
	m := &MilestoneSizeMeasurement{
		TotalBytes:               a.totalBytes,
		TaggedDataBytes:          a.taggedDataBytes,
		TransactionBytes:         a.transactionBytes,
		MilestoneBytes:           a.milestoneBytes,
		TreasuryTransactionBytes: a.treasuryTransactionBytes,
		NoPayloadBytes:           a.noPayloadBytes,
	}
	*a = MilestoneSize{}
	return m, true
}

// MilestoneSizeMeasurement is the fields MilestoneSize emits.
type MilestoneSizeMeasurement struct {
	TotalBytes               uint64
	TaggedDataBytes          uint64
	TransactionBytes         uint64
	MilestoneBytes           uint64
	TreasuryTransactionBytes uint64
	NoPayloadBytes           uint64
}

func (m *MilestoneSizeMeasurement) Fields() map[string]any {
	return map[string]any{
		"total_bytes":               m.TotalBytes,
		"tagged_data_bytes":         m.TaggedDataBytes,
		"transaction_bytes":         m.TransactionBytes,
		"milestone_bytes":           m.MilestoneBytes,
		"treasury_transaction_bytes": m.TreasuryTransactionBytes,
		"no_payload_bytes":          m.NoPayloadBytes,
	}
}
