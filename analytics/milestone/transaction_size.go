package milestone

import (
	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
	"github.com/ahratul/inx-chronicle/util"
)

// sizeHistogram buckets a per-transaction count: an exact tally for 1..7,
// then four widening ranges (spec §4.2).
type sizeHistogram struct {
	single [8]uint32 // index 0 unused, 1..7 hold exact counts
	small  uint32     // 8..16
	medium uint32     // 17..32
	large  uint32     // 33..64
	huge   uint32     // 65+
}

func (h *sizeHistogram) observe(n int) {
	switch {
	case n >= 1 && n <= 7:
		h.single[n] = util.SaturatingIncUint32(h.single[n])
	case n >= 8 && n <= 16:
		h.small = util.SaturatingIncUint32(h.small)
	case n >= 17 && n <= 32:
		h.medium = util.SaturatingIncUint32(h.medium)
	case n >= 33 && n <= 64:
		h.large = util.SaturatingIncUint32(h.large)
	case n >= 65:
		h.huge = util.SaturatingIncUint32(h.huge)
	}
}

func (h *sizeHistogram) fields(prefix string) map[string]any {
	f := map[string]any{
		prefix + "_small":  h.small,
		prefix + "_medium": h.medium,
		prefix + "_large":  h.large,
		prefix + "_huge":   h.huge,
	}
	for i := 1; i <= 7; i++ {
		f[prefix+"_single_"+util.GoThousands(i)] = h.single[i]
	}
	return f
}

// TransactionSize histograms the input and output counts of every
// transaction included in one milestone. State resets every milestone.
type TransactionSize struct {
	inputBuckets  sizeHistogram
	outputBuckets sizeHistogram
}

func NewTransactionSize(ledger.ProtocolParameters) *TransactionSize {
	return &TransactionSize{}
}

func (a *TransactionSize) Kind() analytics.Kind { return analytics.KindTransactionSizeDistribution }

func (a *TransactionSize) Bootstrap(*ledger.LedgerOutput) {}

func (a *TransactionSize) HandleBlock(*ingest.BlockData, analytics.Context) {}

func (a *TransactionSize) HandleTransaction(consumed []*ledger.LedgerSpent, created []*ledger.LedgerOutput, _ analytics.Context) {
	a.inputBuckets.observe(len(consumed))
	a.outputBuckets.observe(len(created))
}

func (a *TransactionSize) EndMilestone(analytics.Context) (analytics.FieldSet, bool) {
	m := &TransactionSizeMeasurement{InputBuckets: a.inputBuckets, OutputBuckets: a.outputBuckets}
	*a = TransactionSize{}
	return m, true
}

// TransactionSizeMeasurement is the fields TransactionSize emits (spec §8
// boundary scenario 6 pins down exact values for the reference replay).
type TransactionSizeMeasurement struct {
	InputBuckets  sizeHistogram
	OutputBuckets sizeHistogram
}

func (m *TransactionSizeMeasurement) Fields() map[string]any {
	f := map[string]any{}
	for k, v := range m.InputBuckets.fields("input_bucket") {
		f[k] = v
	}
	for k, v := range m.OutputBuckets.fields("output_bucket") {
		f[k] = v
	}
	return f
}
