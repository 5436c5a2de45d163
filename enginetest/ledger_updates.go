package enginetest

import "github.com/ahratul/inx-chronicle/ledger"

// LedgerUpdateIndex is an in-memory ingest.LedgerUpdateIndex backed by two
// plain maps, for fixtures and tests.
type LedgerUpdateIndex struct {
	consumed map[ledger.OutputID]*ledger.LedgerSpent
	created  map[ledger.OutputID]*ledger.LedgerOutput
}

// NewLedgerUpdateIndex builds an empty index.
func NewLedgerUpdateIndex() *LedgerUpdateIndex {
	return &LedgerUpdateIndex{
		consumed: make(map[ledger.OutputID]*ledger.LedgerSpent),
		created:  make(map[ledger.OutputID]*ledger.LedgerOutput),
	}
}

// PutCreated registers o as resolvable by its output ID.
func (idx *LedgerUpdateIndex) PutCreated(o *ledger.LedgerOutput) {
	idx.created[o.OutputID] = o
}

// PutConsumed registers s as resolvable by its output ID.
func (idx *LedgerUpdateIndex) PutConsumed(s *ledger.LedgerSpent) {
	idx.consumed[s.OutputID] = s
}

func (idx *LedgerUpdateIndex) GetConsumed(id ledger.OutputID) (*ledger.LedgerSpent, bool) {
	s, ok := idx.consumed[id]
	return s, ok
}

func (idx *LedgerUpdateIndex) GetCreated(id ledger.OutputID) (*ledger.LedgerOutput, bool) {
	o, ok := idx.created[id]
	return o, ok
}
