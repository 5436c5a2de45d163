package milestone

import (
	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
	"github.com/ahratul/inx-chronicle/util"
)

// chainActivity is the created/transferred/destroyed counters a
// chain-constrained non-alias output kind (foundry, nft) accumulates within
// one milestone, matched by chain ID across a transaction's consumed and
// created outputs (spec §4.2).
type chainActivity struct {
	created     uint32
	transferred uint32
	destroyed   uint32
}

func (c *chainActivity) fields(prefix string) map[string]any {
	return map[string]any{
		prefix + "_created_count":     c.created,
		prefix + "_transferred_count": c.transferred,
		prefix + "_destroyed_count":   c.destroyed,
	}
}

// aliasActivity is OutputActivity's alias-specific breakdown: alias outputs
// additionally distinguish a governor-only update from one that also
// changed the alias's committed state (spec §4.2).
type aliasActivity struct {
	created         uint32
	governorChanged uint32
	stateChanged    uint32
	destroyed       uint32
}

func (c *aliasActivity) fields(prefix string) map[string]any {
	return map[string]any{
		prefix + "_created_count":          c.created,
		prefix + "_governor_changed_count": c.governorChanged,
		prefix + "_state_changed_count":    c.stateChanged,
		prefix + "_destroyed_count":        c.destroyed,
	}
}

// OutputActivity classifies chain-constrained outputs (alias, foundry, nft)
// within one milestone as created, transferred (or, for alias,
// governor-changed/state-changed) or destroyed, matched by chain ID across a
// transaction's consumed and created outputs. State resets every milestone.
//
// An alias output can be updated by its state controller or its governor
// independently; when both the state index and the governor address change
// in the same transition this engine counts it once as state-changed —
// spec §9 leaves the tie-break undocumented and directs implementers to
// default to state-changed. When a same-chain match carries no detected
// change in either field, it is counted as governor-changed: the chain
// persisted across the transaction, so some unlock condition must have
// been re-signed even if this engine can't see which.
type OutputActivity struct {
	alias   aliasActivity
	foundry chainActivity
	nft     chainActivity
}

func NewOutputActivity(ledger.ProtocolParameters) *OutputActivity {
	return &OutputActivity{}
}

func (a *OutputActivity) Kind() analytics.Kind { return analytics.KindOutputActivity }

func (a *OutputActivity) Bootstrap(*ledger.LedgerOutput) {}

func (a *OutputActivity) HandleBlock(*ingest.BlockData, analytics.Context) {}

func (a *OutputActivity) nonAliasActivityFor(kind ledger.OutputKind) *chainActivity {
	switch kind {
	case ledger.OutputFoundry:
		return &a.foundry
	case ledger.OutputNFT:
		return &a.nft
	default:
		return nil
	}
}

func aliasStateChanged(consumed, created *ledger.Output) bool {
	if consumed.AliasStateIndex == nil || created.AliasStateIndex == nil {
		return consumed.AliasStateIndex != created.AliasStateIndex
	}
	return *consumed.AliasStateIndex != *created.AliasStateIndex
}

func aliasGovernorChanged(consumed, created *ledger.Output) bool {
	if consumed.GovernorAddress == nil || created.GovernorAddress == nil {
		return consumed.GovernorAddress != created.GovernorAddress
	}
	return *consumed.GovernorAddress != *created.GovernorAddress
}

func (a *OutputActivity) HandleTransaction(consumed []*ledger.LedgerSpent, created []*ledger.LedgerOutput, _ analytics.Context) {
	matchedConsumed := make([]bool, len(consumed))
	matchedCreated := make([]bool, len(created))

	for ci, c := range consumed {
		if !c.Output.HasChain() {
			continue
		}
		for ni, n := range created {
			if matchedCreated[ni] || !n.Output.SameChain(c.Output) {
				continue
			}
			matchedConsumed[ci], matchedCreated[ni] = true, true

			if c.Output.Kind == ledger.OutputAlias {
				switch {
				case aliasStateChanged(c.Output, n.Output):
					a.alias.stateChanged = util.SaturatingIncUint32(a.alias.stateChanged)
				case aliasGovernorChanged(c.Output, n.Output):
					a.alias.governorChanged = util.SaturatingIncUint32(a.alias.governorChanged)
				default:
					a.alias.governorChanged = util.SaturatingIncUint32(a.alias.governorChanged)
				}
			} else if act := a.nonAliasActivityFor(c.Output.Kind); act != nil {
				act.transferred = util.SaturatingIncUint32(act.transferred)
			}
			break
		}
	}

	for ci, c := range consumed {
		if matchedConsumed[ci] || !c.Output.HasChain() {
			continue
		}
		if c.Output.Kind == ledger.OutputAlias {
			a.alias.destroyed = util.SaturatingIncUint32(a.alias.destroyed)
		} else if act := a.nonAliasActivityFor(c.Output.Kind); act != nil {
			act.destroyed = util.SaturatingIncUint32(act.destroyed)
		}
	}

	for ni, n := range created {
		if matchedCreated[ni] || !n.Output.HasChain() {
			continue
		}
		if n.Output.Kind == ledger.OutputAlias {
			a.alias.created = util.SaturatingIncUint32(a.alias.created)
		} else if act := a.nonAliasActivityFor(n.Output.Kind); act != nil {
			act.created = util.SaturatingIncUint32(act.created)
		}
	}
}

func (a *OutputActivity) EndMilestone(analytics.Context) (analytics.FieldSet, bool) {
	m := &OutputActivityMeasurement{Alias: a.alias, Foundry: a.foundry, NFT: a.nft}
	*a = OutputActivity{}
	return m, true
}

// OutputActivityMeasurement is the fields OutputActivity emits.
type OutputActivityMeasurement struct {
	Alias        aliasActivity
	Foundry, NFT chainActivity
}

func (m *OutputActivityMeasurement) Fields() map[string]any {
	f := map[string]any{}
	for k, v := range m.Alias.fields("alias") {
		f[k] = v
	}
	for k, v := range m.Foundry.fields("foundry") {
		f[k] = v
	}
	for k, v := range m.NFT.fields("nft") {
		f[k] = v
	}
	return f
}
