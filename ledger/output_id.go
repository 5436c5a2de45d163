package ledger

import (
	"encoding/hex"
	"strconv"
)

// TransactionID identifies a transaction.
type TransactionID [32]byte

func (id TransactionID) String() string {
	return hex.EncodeToString(id[:])
}

// OutputID identifies an output by the transaction that created it and its
// index within that transaction's outputs (spec §3).
type OutputID struct {
	TransactionID TransactionID
	Index         uint16
}

func (id OutputID) String() string {
	return id.TransactionID.String() + ":" + strconv.Itoa(int(id.Index))
}

// NewOutputID synthesises the output_id = (transaction_id, index) pair the
// Milestone Driver uses to resolve a transaction's created outputs (spec §4.4).
func NewOutputID(txID TransactionID, index uint16) OutputID {
	return OutputID{TransactionID: txID, Index: index}
}
