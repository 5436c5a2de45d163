package ledger

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// AddressKind tags the variant carried by Address.
type AddressKind byte

const (
	AddressEd25519 AddressKind = iota
	AddressAlias
	AddressNFT
)

func (k AddressKind) String() string {
	switch k {
	case AddressEd25519:
		return "ed25519"
	case AddressAlias:
		return "alias"
	case AddressNFT:
		return "nft"
	default:
		return "unknown"
	}
}

// Address is a tagged variant over signature-lock (Ed25519), alias and NFT
// addresses (spec §3). Equality is by canonical bytes, so Address is safe
// to use as a map key.
type Address struct {
	Kind AddressKind
	// ID is the canonical 32-byte identifier: an Ed25519 public-key hash
	// for AddressEd25519, an AliasID for AddressAlias, an NFTID for
	// AddressNFT.
	ID [32]byte
}

// NewEd25519Address derives a signature-lock address from a raw Ed25519
// public key the way the teacher derives AddressED25519 from a private
// key: blake2b-256 of the public key gives canonical, fixed-size bytes.
func NewEd25519Address(pubKey []byte) Address {
	return Address{Kind: AddressEd25519, ID: blake2b.Sum256(pubKey)}
}

// NewAliasAddress wraps an existing 32-byte alias ID as an address.
func NewAliasAddress(aliasID [32]byte) Address {
	return Address{Kind: AddressAlias, ID: aliasID}
}

// NewNFTAddress wraps an existing 32-byte NFT ID as an address.
func NewNFTAddress(nftID [32]byte) Address {
	return Address{Kind: AddressNFT, ID: nftID}
}

// String renders the address as kind-prefixed hex, e.g. "ed25519:ab12..".
func (a Address) String() string {
	return a.Kind.String() + ":" + hex.EncodeToString(a.ID[:])
}
