package milestone

import (
	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
)

// ProtocolParameters tracks the network's current protocol parameters and
// emits a measurement only for the milestone at which they changed (spec
// §4.2) — distinct from most other analytics, which emit every milestone.
// State (the last-seen parameters) is never reset.
type ProtocolParameters struct {
	last     ledger.ProtocolParameters
	lastSet  bool
	current  ledger.ProtocolParameters
}

func NewProtocolParameters(params ledger.ProtocolParameters) *ProtocolParameters {
	return &ProtocolParameters{current: params}
}

func (a *ProtocolParameters) Kind() analytics.Kind { return analytics.KindProtocolParameters }

func (a *ProtocolParameters) Bootstrap(*ledger.LedgerOutput) {}

func (a *ProtocolParameters) HandleBlock(*ingest.BlockData, analytics.Context) {}

func (a *ProtocolParameters) HandleTransaction([]*ledger.LedgerSpent, []*ledger.LedgerOutput, ctx analytics.Context) {
	a.current = ctx.ProtocolParams
}

func (a *ProtocolParameters) EndMilestone(ctx analytics.Context) (analytics.FieldSet, bool) {
	a.current = ctx.ProtocolParams
	if a.lastSet && a.last.Equal(a.current) {
		return nil, false
	}
	a.last, a.lastSet = a.current, true
	return &ProtocolParametersMeasurement{Params: a.current}, true
}

// ProtocolParametersMeasurement is the fields ProtocolParameters emits.
type ProtocolParametersMeasurement struct {
	Params ledger.ProtocolParameters
}

func (m *ProtocolParametersMeasurement) Fields() map[string]any {
	return map[string]any{
		"network_name":       m.Params.NetworkName,
		"token_supply":       m.Params.TokenSupply,
		"rent_byte_cost":     m.Params.Rent.VByteCost,
		"rent_factor_key":    m.Params.Rent.VByteFactorKey,
		"rent_factor_data":   m.Params.Rent.VByteFactorData,
	}
}
