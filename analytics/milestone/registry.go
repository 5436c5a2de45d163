package milestone

import (
	"fmt"

	"github.com/ahratul/inx-chronicle/analytics"
	"github.com/ahratul/inx-chronicle/ledger"
)

// Constructor builds a fresh MilestoneAnalytic from the run's protocol
// parameters and the bootstrap snapshot's milestone index (spec §4.2's
// init(protocol_params, ...), minus the snapshot fan-out itself — see
// analytics.MilestoneAnalytic.Bootstrap). Most analytics ignore m0; only
// UnclaimedTokens needs it, to tell "present since the snapshot" apart from
// "created since" during Bootstrap.
type Constructor func(params ledger.ProtocolParameters, m0 ledger.MilestoneIndex) analytics.MilestoneAnalytic

// registry maps every selectable Kind (spec §6 config surface) to its
// constructor. ActiveAddressesSliding is intentionally absent: it takes an
// extra window-duration argument and sits outside the closed config
// enumeration (see DESIGN.md); callers that want it construct it directly.
var registry = map[analytics.Kind]Constructor{
	analytics.KindAddressBalance: func(p ledger.ProtocolParameters, _ ledger.MilestoneIndex) analytics.MilestoneAnalytic {
		return NewAddressBalance(p)
	},
	analytics.KindBaseTokenActivity: func(p ledger.ProtocolParameters, _ ledger.MilestoneIndex) analytics.MilestoneAnalytic {
		return NewBaseTokenActivity(p)
	},
	analytics.KindBlockActivity: func(p ledger.ProtocolParameters, _ ledger.MilestoneIndex) analytics.MilestoneAnalytic {
		return NewBlockActivity(p)
	},
	analytics.KindActiveAddresses: func(p ledger.ProtocolParameters, _ ledger.MilestoneIndex) analytics.MilestoneAnalytic {
		return NewActiveAddresses(p)
	},
	analytics.KindLedgerOutputs: func(p ledger.ProtocolParameters, _ ledger.MilestoneIndex) analytics.MilestoneAnalytic {
		return NewLedgerOutputs(p)
	},
	analytics.KindLedgerSize: func(p ledger.ProtocolParameters, _ ledger.MilestoneIndex) analytics.MilestoneAnalytic {
		return NewLedgerSize(p)
	},
	analytics.KindMilestoneSize: func(p ledger.ProtocolParameters, _ ledger.MilestoneIndex) analytics.MilestoneAnalytic {
		return NewMilestoneSize(p)
	},
	analytics.KindOutputActivity: func(p ledger.ProtocolParameters, _ ledger.MilestoneIndex) analytics.MilestoneAnalytic {
		return NewOutputActivity(p)
	},
	analytics.KindProtocolParameters: func(p ledger.ProtocolParameters, _ ledger.MilestoneIndex) analytics.MilestoneAnalytic {
		return NewProtocolParameters(p)
	},
	analytics.KindTransactionSizeDistribution: func(p ledger.ProtocolParameters, _ ledger.MilestoneIndex) analytics.MilestoneAnalytic {
		return NewTransactionSize(p)
	},
	analytics.KindUnclaimedTokens: func(p ledger.ProtocolParameters, m0 ledger.MilestoneIndex) analytics.MilestoneAnalytic {
		return NewUnclaimedTokens(p, m0)
	},
	analytics.KindUnlockConditions: func(p ledger.ProtocolParameters, _ ledger.MilestoneIndex) analytics.MilestoneAnalytic {
		return NewUnlockConditions(p)
	},
}

// New constructs the analytic registered under kind, or an error if kind is
// not a recognized milestone analytic.
func New(kind analytics.Kind, params ledger.ProtocolParameters, m0 ledger.MilestoneIndex) (analytics.MilestoneAnalytic, error) {
	ctor, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("milestone: unknown analytic kind %q", kind)
	}
	return ctor(params, m0), nil
}

// NewAll constructs one analytic per kind, in the given order, stopping at
// the first unrecognized kind.
func NewAll(kinds []analytics.Kind, params ledger.ProtocolParameters, m0 ledger.MilestoneIndex) ([]analytics.MilestoneAnalytic, error) {
	out := make([]analytics.MilestoneAnalytic, 0, len(kinds))
	for _, k := range kinds {
		a, err := New(k, params, m0)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
