package ledger

// ProtocolParameters are the network-wide constants stable within a run
// (spec §3). A change of NetworkName mid-run is a hard error (see
// engine.NetworkChangedError).
type ProtocolParameters struct {
	NetworkName string
	TokenSupply uint64
	Rent        RentStructure
}

// Equal reports whether p and other carry the same parameter values. Used
// by the ProtocolParameters analytic to suppress emission when nothing
// changed (spec §4.2).
func (p ProtocolParameters) Equal(other ProtocolParameters) bool {
	return p == other
}
