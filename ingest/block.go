// Package ingest describes the ingestion collaborator's wire shapes (spec
// §6): block payloads, inclusion metadata and the lazy, restartable block
// cone stream a milestone exposes. Nothing in this package reconstructs
// ledger state — it is the already-resolved record the node-protocol
// ingestion client (out of scope, §1) hands to the engine.
package ingest

import (
	"context"

	"github.com/ahratul/inx-chronicle/ledger"
)

// PayloadKind tags the variant carried by a Block.
type PayloadKind byte

const (
	PayloadNone PayloadKind = iota
	PayloadTaggedData
	PayloadTransaction
	PayloadMilestone
	PayloadTreasuryTransaction
)

// Payload is the tagged variant over a block's payload (spec §6).
type Payload interface {
	Kind() PayloadKind
}

// TaggedDataPayload carries arbitrary indexed data, no ledger effect.
type TaggedDataPayload struct{}

func (TaggedDataPayload) Kind() PayloadKind { return PayloadTaggedData }

// MilestonePayload marks a block as the milestone itself.
type MilestonePayload struct{}

func (MilestonePayload) Kind() PayloadKind { return PayloadMilestone }

// TreasuryTransactionPayload moves funds out of the protocol treasury.
type TreasuryTransactionPayload struct{}

func (TreasuryTransactionPayload) Kind() PayloadKind { return PayloadTreasuryTransaction }

// TransactionPayload carries a regular transaction essence: the inputs it
// consumes (by output_id) and the outputs it produces, in order.
type TransactionPayload struct {
	TransactionID ledger.TransactionID
	Inputs        []ledger.OutputID
	Outputs       []*ledger.Output
}

func (*TransactionPayload) Kind() PayloadKind { return PayloadTransaction }

// PayloadKindOf returns p's kind, or PayloadNone for a nil payload.
func PayloadKindOf(p Payload) PayloadKind {
	if p == nil {
		return PayloadNone
	}
	return p.Kind()
}

// InclusionState is a block's ledger-inclusion verdict.
type InclusionState byte

const (
	InclusionIncluded InclusionState = iota
	InclusionConflicting
	InclusionNoTransaction
)

// Block is the minimal shape the analytics engine needs from a confirmed
// block: its payload and serialized size (for MilestoneSize).
type Block struct {
	Payload   Payload
	SizeBytes uint32
}

// BlockMetadata is the confirmation metadata attached to a Block (spec §6).
type BlockMetadata struct {
	InclusionState             InclusionState
	ReferencedByMilestoneIndex ledger.MilestoneIndex
}

// BlockData pairs a Block with its metadata, the unit the Milestone Driver
// iterates over the cone (spec §6).
type BlockData struct {
	Block    Block
	Metadata BlockMetadata
}

// ConeStream is a lazy, restartable stream of a milestone's block cone in
// topological (cone) order.
type ConeStream interface {
	// Next returns the next block in cone order, or ok=false once the cone
	// is exhausted. A non-nil error aborts the milestone (spec §4.4).
	Next(ctx context.Context) (blk *BlockData, ok bool, err error)
}
