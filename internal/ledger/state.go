// Package ledger owns the authoritative per-player economy counters
// (Power/Gold/Gems/Rebirths/inventory) and the validated persistence codec.
// All mutation goes through Ledger methods; callers must serialize access
// per player (one mutation in flight at a time), which the session layer
// enforces with a per-session lock.
package ledger

import (
	"github.com/korvess/DeepMine_Go/internal/bignum"
	"github.com/korvess/DeepMine_Go/internal/domain"
	"github.com/korvess/DeepMine_Go/internal/power"
)

// State is one player's progression record. Power is arbitrary-precision;
// Gold and Gems stay within 64-bit-safe magnitudes by design.
type State struct {
	Power       bignum.BigNumber
	Gold        int64
	Gems        int64
	Rebirths    int
	PickaxeTier int
	Inventory   map[domain.ResourceID]int64
}

// DefaultState is the freshly-created player record, also used as the
// recovery state when a persisted record fails validation.
func DefaultState() State {
	return State{
		Power:     bignum.FromInt64(power.RebirthBaseline),
		Inventory: make(map[domain.ResourceID]int64),
	}
}

// clone deep-copies the state so snapshots cannot alias live inventory.
func (s State) clone() State {
	out := s
	out.Inventory = make(map[domain.ResourceID]int64, len(s.Inventory))
	for k, v := range s.Inventory {
		out.Inventory[k] = v
	}
	return out
}
