package milestone

import (
	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
	"github.com/ahratul/inx-chronicle/util"
)

// BlockActivity counts blocks per payload kind and per ledger-inclusion
// verdict within one milestone. State resets every milestone.
type BlockActivity struct {
	noPayloadCount           uint32
	taggedDataCount          uint32
	transactionCount         uint32
	treasuryTransactionCount uint32
	milestoneCount           uint32

	confirmedCount     uint32
	conflictingCount   uint32
	noTransactionCount uint32
}

func NewBlockActivity(ledger.ProtocolParameters) *BlockActivity {
	return &BlockActivity{}
}

func (a *BlockActivity) Kind() analytics.Kind { return analytics.KindBlockActivity }

func (a *BlockActivity) Bootstrap(*ledger.LedgerOutput) {}

func (a *BlockActivity) HandleBlock(blk *ingest.BlockData, _ analytics.Context) {
	switch ingest.PayloadKindOf(blk.Block.Payload) {
	case ingest.PayloadNone:
		a.noPayloadCount = util.SaturatingIncUint32(a.noPayloadCount)
	case ingest.PayloadTaggedData:
		a.taggedDataCount = util.SaturatingIncUint32(a.taggedDataCount)
	case ingest.PayloadTransaction:
		a.transactionCount = util.SaturatingIncUint32(a.transactionCount)
	case ingest.PayloadTreasuryTransaction:
		a.treasuryTransactionCount = util.SaturatingIncUint32(a.treasuryTransactionCount)
	case ingest.PayloadMilestone:
		a.milestoneCount = util.SaturatingIncUint32(a.milestoneCount)
	}

	switch blk.Metadata.InclusionState {
	case ingest.InclusionIncluded:
		a.confirmedCount = util.SaturatingIncUint32(a.confirmedCount)
	case ingest.InclusionConflicting:
		a.conflictingCount = util.SaturatingIncUint32(a.conflictingCount)
	case ingest.InclusionNoTransaction:
		a.noTransactionCount = util.SaturatingIncUint32(a.noTransactionCount)
	}
}

func (a *BlockActivity) HandleTransaction([]*ledger.LedgerSpent, []*ledger.LedgerOutput, analytics.Context) {}

func (a *BlockActivity) EndMilestone(analytics.Context) (analytics.FieldSet, bool) {
	m := &BlockActivityMeasurement{
		NoPayloadCount:           a.noPayloadCount,
		TaggedDataCount:          a.taggedDataCount,
		TransactionCount:         a.transactionCount,
		TreasuryTransactionCount: a.treasuryTransactionCount,
		MilestoneCount:           a.milestoneCount,
		ConfirmedCount:           a.confirmedCount,
		ConflictingCount:         a.conflictingCount,
		NoTransactionCount:       a.noTransactionCount,
	}
	*a = BlockActivity{}
	return m, true
}

// BlockActivityMeasurement is the fields BlockActivity emits (spec §8
// boundary scenario 1 pins down its exact field names).
type BlockActivityMeasurement struct {
	NoPayloadCount           uint32
	TaggedDataCount          uint32
	TransactionCount         uint32
	TreasuryTransactionCount uint32
	MilestoneCount           uint32
	ConfirmedCount           uint32
	ConflictingCount         uint32
	NoTransactionCount       uint32
}

func (m *BlockActivityMeasurement) Fields() map[string]any {
	return map[string]any{
		"no_payload_count":           m.NoPayloadCount,
		"tagged_data_count":          m.TaggedDataCount,
		"transaction_count":          m.TransactionCount,
		"treasury_transaction_count": m.TreasuryTransactionCount,
		"milestone_count":            m.MilestoneCount,
		"confirmed_count":            m.ConfirmedCount,
		"conflicting_count":          m.ConflictingCount,
		"no_transaction_count":       m.NoTransactionCount,
	}
}
