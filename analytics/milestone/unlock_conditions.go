package milestone

import (
	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
	"github.com/ahratul/inx-chronicle/util"
)

// UnlockConditions maintains ledger-wide (count, amount) per unlock
// condition kind, plus the cumulative storage-deposit-return inner amount
// (distinct from the outer output amount, spec §9). Never reset between
// milestones.
type UnlockConditions struct {
	timelock             outputKindTotals
	expiration           outputKindTotals
	storageDepositReturn outputKindTotals

	storageDepositReturnInnerAmount uint64
}

func NewUnlockConditions(ledger.ProtocolParameters) *UnlockConditions {
	return &UnlockConditions{}
}

func (a *UnlockConditions) Kind() analytics.Kind { return analytics.KindUnlockConditions }

func (a *UnlockConditions) apply(o *ledger.Output, add bool) {
	if c := o.Unlocks.Timelock; c != nil {
		if add {
			a.timelock.add(o.Amount)
		} else {
			a.timelock.remove(o.Amount)
		}
	}
	if c := o.Unlocks.Expiration; c != nil {
		if add {
			a.expiration.add(o.Amount)
		} else {
			a.expiration.remove(o.Amount)
		}
	}
	if c := o.Unlocks.StorageDepositReturn; c != nil {
		if add {
			a.storageDepositReturn.add(o.Amount)
			a.storageDepositReturnInnerAmount = util.SaturatingAddUint64(a.storageDepositReturnInnerAmount, c.Amount)
		} else {
			a.storageDepositReturn.remove(o.Amount)
			a.storageDepositReturnInnerAmount = util.SaturatingSubUint64(a.storageDepositReturnInnerAmount, c.Amount)
		}
	}
}

func (a *UnlockConditions) Bootstrap(o *ledger.LedgerOutput) {
	a.apply(o.Output, true)
}

func (a *UnlockConditions) HandleBlock(*ingest.BlockData, analytics.Context) {}

func (a *UnlockConditions) HandleTransaction(consumed []*ledger.LedgerSpent, created []*ledger.LedgerOutput, _ analytics.Context) {
	for _, c := range consumed {
		a.apply(c.Output, false)
	}
	for _, n := range created {
		a.apply(n.Output, true)
	}
}

func (a *UnlockConditions) EndMilestone(analytics.Context) (analytics.FieldSet, bool) {
	return &UnlockConditionsMeasurement{
		Timelock:                        a.timelock,
		Expiration:                      a.expiration,
		StorageDepositReturn:            a.storageDepositReturn,
		StorageDepositReturnInnerAmount: a.storageDepositReturnInnerAmount,
	}, true
}

// UnlockConditionsMeasurement is the fields UnlockConditions emits.
type UnlockConditionsMeasurement struct {
	Timelock                        outputKindTotals
	Expiration                      outputKindTotals
	StorageDepositReturn            outputKindTotals
	StorageDepositReturnInnerAmount uint64
}

func (m *UnlockConditionsMeasurement) Fields() map[string]any {
	f := map[string]any{"storage_deposit_return_inner_amount": m.StorageDepositReturnInnerAmount}
	for prefix, t := range map[string]outputKindTotals{
		"timelock":               m.Timelock,
		"expiration":             m.Expiration,
		"storage_deposit_return": m.StorageDepositReturn,
	} {
		for k, v := range t.fields(prefix) {
			f[k] = v
		}
	}
	return f
}
