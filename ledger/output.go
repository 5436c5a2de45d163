package ledger

// OutputKind tags the Output variant (spec §3).
type OutputKind byte

const (
	OutputBasic OutputKind = iota
	OutputAlias
	OutputFoundry
	OutputNFT
	OutputTreasury
)

func (k OutputKind) String() string {
	switch k {
	case OutputBasic:
		return "basic"
	case OutputAlias:
		return "alias"
	case OutputFoundry:
		return "foundry"
	case OutputNFT:
		return "nft"
	case OutputTreasury:
		return "treasury"
	default:
		return "unknown"
	}
}

// NativeTokenID identifies a native token's minting foundry.
type NativeTokenID [38]byte

// NativeTokenAmount is one native token balance carried by an output.
type NativeTokenAmount struct {
	ID     NativeTokenID
	Amount uint64
}

// TimelockUnlockCondition makes an output unspendable before a point in time.
type TimelockUnlockCondition struct {
	MilestoneIndex MilestoneIndex
	UnixTime       uint32
}

// ExpirationUnlockCondition hands an output back to ReturnAddress after a
// point in time if it has not been spent by its owner.
type ExpirationUnlockCondition struct {
	ReturnAddress  Address
	MilestoneIndex MilestoneIndex
	UnixTime       uint32
}

// StorageDepositReturnUnlockCondition requires Amount (the "inner amount",
// distinct from the output's own Amount) to be returned to ReturnAddress
// on spend (spec §9: implementers must distinguish outer vs inner amount).
type StorageDepositReturnUnlockCondition struct {
	ReturnAddress Address
	Amount        uint64
}

// UnlockConditions holds the optional conditions an output may carry.
// A nil field means the condition is absent.
type UnlockConditions struct {
	Timelock             *TimelockUnlockCondition
	Expiration           *ExpirationUnlockCondition
	StorageDepositReturn *StorageDepositReturnUnlockCondition
}

// ChainID identifies an Alias, Foundry or NFT output across its lifetime of
// state transitions; Basic and Treasury outputs have none.
type ChainID [32]byte

// Output is the tagged variant over the five Stardust output kinds (spec §3).
type Output struct {
	Kind OutputKind

	// OwningAddress is nil only for Treasury outputs.
	OwningAddress *Address

	Amount       uint64
	NativeTokens []NativeTokenAmount
	Unlocks      UnlockConditions

	// ChainID is set for Alias, Foundry and NFT outputs; nil for Basic and
	// Treasury.
	ChainID *ChainID

	// Alias-specific fields, used by the OutputActivity analytic to tell a
	// governor-only update from a state-changing one (spec §4.2).
	AliasStateIndex *uint32
	GovernorAddress *Address
}

// HasChain reports whether o carries a chain ID (Alias/Foundry/NFT).
func (o *Output) HasChain() bool {
	return o.ChainID != nil
}

// SameChain reports whether o and other share a chain ID. Two outputs with
// no chain ID at all are never considered the same chain.
func (o *Output) SameChain(other *Output) bool {
	if o.ChainID == nil || other.ChainID == nil {
		return false
	}
	return *o.ChainID == *other.ChainID
}

// StorageDepositReturnInnerAmount returns the inner amount carried by the
// storage-deposit-return condition, or 0 if absent.
func (o *Output) StorageDepositReturnInnerAmount() uint64 {
	if o.Unlocks.StorageDepositReturn == nil {
		return 0
	}
	return o.Unlocks.StorageDepositReturn.Amount
}
