package milestone

import (
	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
	"github.com/ahratul/inx-chronicle/util"
)

// LedgerSize maintains cumulative ledger-wide byte and storage-deposit
// totals, derived from each output via the protocol's rent structure
// (spec §4.2). Never reset between milestones.
type LedgerSize struct {
	rent ledger.RentStructure

	totalKeyBytes            uint64
	totalDataBytes            uint64
	totalStorageDepositAmount uint64
}

func NewLedgerSize(params ledger.ProtocolParameters) *LedgerSize {
	return &LedgerSize{rent: params.Rent}
}

func (a *LedgerSize) Kind() analytics.Kind { return analytics.KindLedgerSize }

func (a *LedgerSize) Bootstrap(o *ledger.LedgerOutput) {
	keyBytes, dataBytes, deposit := a.rent.StorageDeposit(o.Output)
	a.totalKeyBytes = util.SaturatingAddUint64(a.totalKeyBytes, keyBytes)
	a.totalDataBytes = util.SaturatingAddUint64(a.totalDataBytes, dataBytes)
	a.totalStorageDepositAmount = util.SaturatingAddUint64(a.totalStorageDepositAmount, deposit)
}

func (a *LedgerSize) HandleBlock(*ingest.BlockData, analytics.Context) {}

func (a *LedgerSize) HandleTransaction(consumed []*ledger.LedgerSpent, created []*ledger.LedgerOutput, ctx analytics.Context) {
	a.rent = ctx.ProtocolParams.Rent
	for _, c := range consumed {
		keyBytes, dataBytes, deposit := a.rent.StorageDeposit(c.Output)
		a.totalKeyBytes = util.SaturatingSubUint64(a.totalKeyBytes, keyBytes)
		a.totalDataBytes = util.SaturatingSubUint64(a.totalDataBytes, dataBytes)
		a.totalStorageDepositAmount = util.SaturatingSubUint64(a.totalStorageDepositAmount, deposit)
	}
	for _, n := range created {
		keyBytes, dataBytes, deposit := a.rent.StorageDeposit(n.Output)
		a.totalKeyBytes = util.SaturatingAddUint64(a.totalKeyBytes, keyBytes)
		a.totalDataBytes = util.SaturatingAddUint64(a.totalDataBytes, dataBytes)
		a.totalStorageDepositAmount = util.SaturatingAddUint64(a.totalStorageDepositAmount, deposit)
	}
}

func (a *LedgerSize) EndMilestone(analytics.Context) (analytics.FieldSet, bool) {
	return &LedgerSizeMeasurement{
		TotalKeyBytes:             a.totalKeyBytes,
		TotalDataBytes:            a.totalDataBytes,
		TotalStorageDepositAmount: a.totalStorageDepositAmount,
	}, true
}

// LedgerSizeMeasurement is the fields LedgerSize emits (spec §8 boundary
// scenario 3 pins down exact values for the reference replay).
type LedgerSizeMeasurement struct {
	TotalKeyBytes             uint64
	TotalDataBytes            uint64
	TotalStorageDepositAmount uint64
}

func (m *LedgerSizeMeasurement) Fields() map[string]any {
	return map[string]any{
		"total_key_bytes":             m.TotalKeyBytes,
		"total_data_bytes":            m.TotalDataBytes,
		"total_storage_deposit_amount": m.TotalStorageDepositAmount,
	}
}
