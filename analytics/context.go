package analytics

import "github.com/ahratul/inx-chronicle/ledger"

// Context is the ambient, read-only capability handed to every analytic on
// every event: the current milestone stamp and protocol parameters (spec
// §4.1). It has no mutation methods and does no I/O. Implementers must
// pass the same Context to every analytic within one milestone.
type Context struct {
	Stamp          ledger.MilestoneStamp
	ProtocolParams ledger.ProtocolParameters
}
