// Package engine implements the Milestone Driver (C5) and Interval Driver
// (C6): the two scheduling loops that walk ingestion/document-store
// collaborators, drive the analytic catalogue, and forward measurements to
// the sink (spec §4.4, §4.5).
package engine

import (
	"fmt"

	"github.com/ahratul/inx-chronicle/ledger"
)

// MissingLedgerOutputError is returned when a transaction's created output
// could not be resolved via the ledger-update index. Fatal for the
// milestone (spec §7).
type MissingLedgerOutputError struct {
	OutputID       ledger.OutputID
	MilestoneIndex ledger.MilestoneIndex
}

func (e *MissingLedgerOutputError) Error() string {
	return fmt.Sprintf("missing ledger output %s at milestone %d", e.OutputID, e.MilestoneIndex)
}

// MissingLedgerSpentError is returned when a transaction's consumed output
// could not be resolved. Fatal for the milestone.
type MissingLedgerSpentError struct {
	OutputID       ledger.OutputID
	MilestoneIndex ledger.MilestoneIndex
}

func (e *MissingLedgerSpentError) Error() string {
	return fmt.Sprintf("missing ledger spent %s at milestone %d", e.OutputID, e.MilestoneIndex)
}

// SyncMilestoneGapError reports ingestion skipping over one or more
// milestones. Fatal for the run; needs operator intervention.
type SyncMilestoneGapError struct {
	Start, End ledger.MilestoneIndex
}

func (e *SyncMilestoneGapError) Error() string {
	return fmt.Sprintf("sync milestone gap: expected contiguous range, jumped from %d to %d", e.Start, e.End)
}

// SyncMilestoneIndexMismatchError reports the ingestion node's milestone
// index disagreeing with (behind or ahead of) the persisted analytics state.
// Fatal for the run.
type SyncMilestoneIndexMismatchError struct {
	Node, DB ledger.MilestoneIndex
}

func (e *SyncMilestoneIndexMismatchError) Error() string {
	return fmt.Sprintf("sync milestone index mismatch: node at %d, db at %d", e.Node, e.DB)
}

// NetworkChangedError reports the protocol network identifier changing
// mid-run. Fatal for the run.
type NetworkChangedError struct {
	Old, New string
}

func (e *NetworkChangedError) Error() string {
	return fmt.Sprintf("network changed: %q -> %q", e.Old, e.New)
}

// InvalidUnspentOutputIndexError reports the bootstrap snapshot not being
// taken at the expected M0. Fatal.
type InvalidUnspentOutputIndexError struct {
	Found, Expected ledger.MilestoneIndex
}

func (e *InvalidUnspentOutputIndexError) Error() string {
	return fmt.Sprintf("invalid unspent output index: snapshot at %d, expected %d", e.Found, e.Expected)
}

// SinkWriteFailureError wraps a measurement write the sink rejected. Fatal
// for the milestone; the outer orchestration is expected to retry.
type SinkWriteFailureError struct {
	Kind string
	Err  error
}

func (e *SinkWriteFailureError) Error() string {
	return fmt.Sprintf("sink write failure for %s: %v", e.Kind, e.Err)
}

func (e *SinkWriteFailureError) Unwrap() error { return e.Err }
