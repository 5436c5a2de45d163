package engine

import (
	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ledger"
)

// Bootstrap checks it's declared snapshot index against expectedM0 once, up
// front, then streams it exactly once, fanning every output to every
// analytic's Bootstrap call (spec §9). A mismatch returns
// InvalidUnspentOutputIndexError before any output is read or any analytic
// touched, so callers can retry against a different snapshot without having
// to discard partially-bootstrapped analytics.
//
// Individual outputs keep their own Booked.Index (the milestone they were
// first created at), which legitimately predates M0 for any long-lived
// unspent output; Bootstrap does not reject on that, only on the snapshot's
// own M0 as reported by it.M0().
func Bootstrap(it ledger.UnspentOutputIterator, expectedM0 ledger.MilestoneIndex, milestoneAnalytics []analytics.MilestoneAnalytic) error {
	if it.M0() != expectedM0 {
		return &InvalidUnspentOutputIndexError{Found: it.M0(), Expected: expectedM0}
	}
	for {
		out, ok := it.Next()
		if !ok {
			return nil
		}
		for _, a := range milestoneAnalytics {
			a.Bootstrap(out)
		}
	}
}
