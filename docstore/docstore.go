// Package docstore describes the document store collaborator (spec §6):
// the out-of-scope historical-query store interval analytics read from.
// Only the read paths an interval analytic needs are modeled here.
package docstore

import (
	"context"
	"time"

	"github.com/ahratul/inx-chronicle/ledger"
)

// TransactionRecord is the slice of a stored transaction an interval
// analytic needs: the addresses it touched as input and as output.
type TransactionRecord struct {
	InputAddresses  []ledger.Address
	OutputAddresses []ledger.Address
}

// IndexerQuery is an opaque filter for OutputsAtLedgerIndex, e.g.
// restricting to outputs locked to one address.
type IndexerQuery struct {
	Address *ledger.Address
}

// Store is the read-only document store query interface (spec §6).
type Store interface {
	// TransactionsInRange lists transactions overlapping [start, end).
	TransactionsInRange(ctx context.Context, start, end time.Time) ([]TransactionRecord, error)

	// OutputsAtLedgerIndex lists outputs at ledgerIndex matching query.
	OutputsAtLedgerIndex(ctx context.Context, ledgerIndex ledger.MilestoneIndex, query IndexerQuery) ([]ledger.LedgerOutput, error)

	// BalanceOfAddress resolves addr's balance as of ledgerIndex.
	BalanceOfAddress(ctx context.Context, addr ledger.Address, ledgerIndex ledger.MilestoneIndex) (uint64, error)
}
