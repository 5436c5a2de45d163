// Package analytics defines the measurement envelope (C1), the read-only
// analytics context (C4) and the per-milestone/per-interval analytic
// contracts (C2/C3) every concrete analytic in analytics/milestone and
// analytics/interval implements.
package analytics

// Kind enumerates the closed set of selectable analytics (spec §6 config
// surface). The set is closed by design (spec §9): this is a sum type, not
// an open plugin registry.
type Kind string

const (
	KindAddressBalance              Kind = "AddressBalance"
	KindBaseTokenActivity           Kind = "BaseTokenActivity"
	KindBlockActivity               Kind = "BlockActivity"
	KindActiveAddresses             Kind = "ActiveAddresses"
	KindLedgerOutputs               Kind = "LedgerOutputs"
	KindLedgerSize                  Kind = "LedgerSize"
	KindMilestoneSize               Kind = "MilestoneSize"
	KindOutputActivity              Kind = "OutputActivity"
	KindProtocolParameters          Kind = "ProtocolParameters"
	KindTransactionSizeDistribution Kind = "TransactionSizeDistribution"
	KindUnclaimedTokens             Kind = "UnclaimedTokens"
	KindUnlockConditions            Kind = "UnlockConditions"

	// KindAddressActivity is the sole interval analytic (spec §4.3). Spec
	// §6's config surface names the interval choice "ActiveAddresses" —
	// see DESIGN.md for why this is treated as the same analytic named
	// here by its §4.3 name.
	KindAddressActivity Kind = "AddressActivity"

	// KindActiveAddressesSliding is the sliding-interval special case of
	// ActiveAddresses (spec §4.2): a milestone-driven analytic tracking a
	// duration-bounded address window rather than a milestone-bounded one.
	// Not part of the §6 config enumeration; see DESIGN.md.
	KindActiveAddressesSliding Kind = "ActiveAddressesSliding"
)

// AllMilestoneKinds lists the twelve per-milestone analytics in catalogue
// order (spec §4.2).
func AllMilestoneKinds() []Kind {
	return []Kind{
		KindAddressBalance,
		KindBaseTokenActivity,
		KindBlockActivity,
		KindLedgerOutputs,
		KindLedgerSize,
		KindMilestoneSize,
		KindOutputActivity,
		KindProtocolParameters,
		KindTransactionSizeDistribution,
		KindUnclaimedTokens,
		KindUnlockConditions,
		KindActiveAddresses,
	}
}

// IntervalKind is one of the calendar alignments an interval analytic runs
// on (spec §4.3).
type IntervalKind string

const (
	IntervalDay   IntervalKind = "day"
	IntervalWeek  IntervalKind = "week"
	IntervalMonth IntervalKind = "month"
	IntervalYear  IntervalKind = "year"
)
