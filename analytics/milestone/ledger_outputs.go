package milestone

import (
	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
	"github.com/ahratul/inx-chronicle/util"
)

// outputKindTotals is (count, amount) for one output kind.
type outputKindTotals struct {
	count  uint64
	amount uint64
}

func (t *outputKindTotals) add(amount uint64) {
	t.count++
	t.amount = util.SaturatingAddUint64(t.amount, amount)
}

func (t *outputKindTotals) remove(amount uint64) {
	if t.count > 0 {
		t.count--
	}
	t.amount = util.SaturatingSubUint64(t.amount, amount)
}

func (t *outputKindTotals) fields(prefix string) map[string]any {
	return map[string]any{
		prefix + "_count":  t.count,
		prefix + "_amount": t.amount,
	}
}

// LedgerOutputs maintains ledger-wide (count, sum(amount)) per output kind,
// incrementally. Never reset between milestones — it is the current ledger
// state.
type LedgerOutputs struct {
	basic   outputKindTotals
	alias   outputKindTotals
	nft     outputKindTotals
	foundry outputKindTotals
}

func NewLedgerOutputs(ledger.ProtocolParameters) *LedgerOutputs {
	return &LedgerOutputs{}
}

func (a *LedgerOutputs) Kind() analytics.Kind { return analytics.KindLedgerOutputs }

func (a *LedgerOutputs) totalsFor(kind ledger.OutputKind) *outputKindTotals {
	switch kind {
	case ledger.OutputBasic:
		return &a.basic
	case ledger.OutputAlias:
		return &a.alias
	case ledger.OutputNFT:
		return &a.nft
	case ledger.OutputFoundry:
		return &a.foundry
	default:
		return nil
	}
}

func (a *LedgerOutputs) Bootstrap(o *ledger.LedgerOutput) {
	if t := a.totalsFor(o.Output.Kind); t != nil {
		t.add(o.Output.Amount)
	}
}

func (a *LedgerOutputs) HandleBlock(*ingest.BlockData, analytics.Context) {}

func (a *LedgerOutputs) HandleTransaction(consumed []*ledger.LedgerSpent, created []*ledger.LedgerOutput, _ analytics.Context) {
	for _, c := range consumed {
		if t := a.totalsFor(c.Output.Kind); t != nil {
			t.remove(c.Output.Amount)
		}
	}
	for _, n := range created {
		if t := a.totalsFor(n.Output.Kind); t != nil {
			t.add(n.Output.Amount)
		}
	}
}

func (a *LedgerOutputs) EndMilestone(analytics.Context) (analytics.FieldSet, bool) {
	return &LedgerOutputsMeasurement{Basic: a.basic, Alias: a.alias, NFT: a.nft, Foundry: a.foundry}, true
}

// LedgerOutputsMeasurement is the fields LedgerOutputs emits (spec §8
// boundary scenario 2 pins down exact values for the reference replay).
type LedgerOutputsMeasurement struct {
	Basic, Alias, NFT, Foundry outputKindTotals
}

func (m *LedgerOutputsMeasurement) Fields() map[string]any {
	f := map[string]any{}
	for k, t := range map[string]outputKindTotals{"basic": m.Basic, "alias": m.Alias, "nft": m.NFT, "foundry": m.Foundry} {
		for key, v := range t.fields(k) {
			f[key] = v
		}
	}
	return f
}
