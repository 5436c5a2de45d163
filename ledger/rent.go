package ledger

// RentStructure is the cost model mapping an output's size to a minimum
// storage-deposit amount (spec §3, GLOSSARY "Rent structure").
type RentStructure struct {
	VByteCost       uint32
	VByteFactorKey  uint8
	VByteFactorData uint8
}

// outputIDKeyBytes is the fixed key size every output occupies in the UTXO
// index: a 34-byte output_id used as the lookup key.
const outputIDKeyBytes = 34

// KeyBytes is the number of bytes an output contributes to the "key" side
// of the rent calculation: the fixed-size output_id used to address it.
func (o *Output) KeyBytes() uint64 {
	return outputIDKeyBytes
}

// DataBytes estimates the serialized size of the output's own fields: kind
// tag, amount, owning address, native tokens, unlock conditions and any
// chain/state fields. The exact byte count is an internal accounting
// convention of this engine (determinism across replay is what spec §8
// requires, not bit-compatibility with a wire encoder the engine never
// reconstructs from raw blocks).
func (o *Output) DataBytes() uint64 {
	const (
		kindBytes        = 1
		amountBytes      = 8
		addressBytes     = 33 // address-kind tag + 32-byte canonical ID
		nativeTokenBytes = 46 // NativeTokenID (38) + amount (8)
		chainIDBytes     = 32
		timestampBytes   = 4
		milestoneBytes   = 4
		stateIndexBytes  = 4
	)

	size := uint64(kindBytes + amountBytes)
	if o.OwningAddress != nil {
		size += addressBytes
	}
	size += uint64(len(o.NativeTokens)) * nativeTokenBytes

	if tl := o.Unlocks.Timelock; tl != nil {
		size += milestoneBytes + timestampBytes
	}
	if exp := o.Unlocks.Expiration; exp != nil {
		size += addressBytes + milestoneBytes + timestampBytes
	}
	if sdr := o.Unlocks.StorageDepositReturn; sdr != nil {
		size += addressBytes + amountBytes
	}
	if o.ChainID != nil {
		size += chainIDBytes
	}
	if o.Kind == OutputAlias {
		size += stateIndexBytes
		if o.GovernorAddress != nil {
			size += addressBytes
		}
	}
	return size
}

// StorageDeposit returns the minimum storage-deposit amount this output
// must carry under rs, and the key/data byte counts that produced it. Used
// by the LedgerSize analytic (spec §4.2).
func (rs RentStructure) StorageDeposit(o *Output) (keyBytes, dataBytes, deposit uint64) {
	keyBytes = o.KeyBytes()
	dataBytes = o.DataBytes()
	vBytes := uint64(rs.VByteFactorKey)*keyBytes + uint64(rs.VByteFactorData)*dataBytes
	deposit = vBytes * uint64(rs.VByteCost)
	return
}
