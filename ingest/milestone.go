package ingest

import (
	"context"

	"github.com/ahratul/inx-chronicle/ledger"
)

// LedgerUpdateIndex resolves the output records a transaction references
// (spec §6). Both lookups are read-only.
type LedgerUpdateIndex interface {
	GetConsumed(id ledger.OutputID) (*ledger.LedgerSpent, bool)
	GetCreated(id ledger.OutputID) (*ledger.LedgerOutput, bool)
}

// Milestone is one confirmed checkpoint the ingestion collaborator delivers
// (spec §6).
type Milestone interface {
	Stamp() ledger.MilestoneStamp
	ProtocolParams() ledger.ProtocolParameters
	ConeStream() ConeStream
	LedgerUpdates() LedgerUpdateIndex
}

// MilestoneStream delivers milestones in strictly monotonic order.
type MilestoneStream interface {
	// Next returns the next milestone, or ok=false once the requested
	// range is exhausted.
	Next(ctx context.Context) (m Milestone, ok bool, err error)
}

// Ingestion is the node-protocol ingestion client collaborator (out of
// scope to implement in production here, spec §1; this is its contract).
type Ingestion interface {
	MilestoneStream(ctx context.Context, from ledger.MilestoneIndex) (MilestoneStream, error)
}
