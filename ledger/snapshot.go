package ledger

// UnspentOutputIterator streams the full unspent-output set as it stood at
// the bootstrap milestone M0 exactly once. Implementations may back this by
// a database cursor; the snapshot can be in the millions of outputs (spec
// §9), so analytics must not retain the iterator itself, only what each one
// needs from it.
//
// M0 is a property of the snapshot, not of the outputs in it: each output
// keeps its own Booked.Index, the milestone it was originally created at,
// which is typically long before M0 — a real unspent-output set accumulates
// outputs created across the ledger's entire history up to the point the
// snapshot was taken. Callers check the snapshot's M0 once, not per output.
type UnspentOutputIterator interface {
	// M0 returns the milestone index the snapshot itself was taken at.
	M0() MilestoneIndex

	// Next returns the next unspent output, or ok=false once exhausted.
	Next() (out *LedgerOutput, ok bool)
}

// SliceUnspentOutputIterator adapts an in-memory slice to
// UnspentOutputIterator, for tests and small fixtures.
type SliceUnspentOutputIterator struct {
	m0      MilestoneIndex
	outputs []*LedgerOutput
	pos     int
}

// NewSliceUnspentOutputIterator wraps outputs for one-shot streaming,
// declaring m0 as the snapshot's own milestone index.
func NewSliceUnspentOutputIterator(m0 MilestoneIndex, outputs []*LedgerOutput) *SliceUnspentOutputIterator {
	return &SliceUnspentOutputIterator{m0: m0, outputs: outputs}
}

func (it *SliceUnspentOutputIterator) M0() MilestoneIndex { return it.m0 }

func (it *SliceUnspentOutputIterator) Next() (*LedgerOutput, bool) {
	if it.pos >= len(it.outputs) {
		return nil, false
	}
	out := it.outputs[it.pos]
	it.pos++
	return out, true
}
