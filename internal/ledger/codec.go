package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/korvess/DeepMine_Go/internal/bignum"
	"github.com/korvess/DeepMine_Go/internal/domain"
)

// PersistedRecord is the durable JSON shape of a player's progression.
// Field names are part of the storage contract; renaming one orphans every
// saved record.
type PersistedRecord struct {
	Power       string           `json:"power"`
	Rebirths    int              `json:"rebirths"`
	Gold        int64            `json:"gold"`
	Gems        int64            `json:"gems"`
	PickaxeTier int              `json:"currentPickaxeTier"`
	Inventory   map[string]int64 `json:"inventory"`
}

// ValidationError reports which persisted field failed and why. It unwraps
// to ErrRecordInvalid so callers can branch on the class without parsing
// the message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field %q %s", domain.ErrMsgRecordInvalid, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrRecordInvalid
}

// Serialize renders state as a persisted record document.
func Serialize(s State) ([]byte, error) {
	inv := make(map[string]int64, len(s.Inventory))
	for id, qty := range s.Inventory {
		inv[string(id)] = qty
	}
	rec := PersistedRecord{
		Power:       s.Power.String(),
		Rebirths:    s.Rebirths,
		Gold:        s.Gold,
		Gems:        s.Gems,
		PickaxeTier: s.PickaxeTier,
		Inventory:   inv,
	}
	return json.Marshal(rec)
}

// Deserialize parses and validates a persisted record. Validation failures
// on a required field return a *ValidationError and the caller should fall
// back to DefaultState. An out-of-range pickaxe tier is repaired by
// clamping to maxPickaxeTier rather than rejected, so a player is never
// locked out by a shrunk tier catalog.
func Deserialize(raw []byte, maxPickaxeTier int) (State, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return State{}, &ValidationError{Field: "(document)", Reason: "is not a JSON object"}
	}

	state := DefaultState()

	checks := []struct {
		field    string
		required bool
		apply    func(json.RawMessage) error
	}{
		{"power", true, func(v json.RawMessage) error {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("must be a string")
			}
			n, err := bignum.FromString(s)
			if err != nil {
				return fmt.Errorf("must match ^-?\\d+$")
			}
			if n.Sign() < 0 {
				return fmt.Errorf("must be non-negative")
			}
			state.Power = n
			return nil
		}},
		{"rebirths", true, func(v json.RawMessage) error {
			var n int
			if err := json.Unmarshal(v, &n); err != nil || n < 0 {
				return fmt.Errorf("must be a non-negative integer")
			}
			state.Rebirths = n
			return nil
		}},
		{"gold", true, func(v json.RawMessage) error {
			var n int64
			if err := json.Unmarshal(v, &n); err != nil || n < 0 {
				return fmt.Errorf("must be a non-negative integer")
			}
			state.Gold = n
			return nil
		}},
		{"gems", false, func(v json.RawMessage) error {
			var n int64
			if err := json.Unmarshal(v, &n); err != nil || n < 0 {
				return fmt.Errorf("must be a non-negative integer")
			}
			state.Gems = n
			return nil
		}},
		{"currentPickaxeTier", true, func(v json.RawMessage) error {
			var n int
			if err := json.Unmarshal(v, &n); err != nil || n < 0 {
				return fmt.Errorf("must be a non-negative integer")
			}
			if n > maxPickaxeTier {
				n = maxPickaxeTier
			}
			state.PickaxeTier = n
			return nil
		}},
		{"inventory", true, func(v json.RawMessage) error {
			var inv map[string]int64
			if err := json.Unmarshal(v, &inv); err != nil {
				return fmt.Errorf("must be an object of integer quantities")
			}
			parsed := make(map[domain.ResourceID]int64, len(inv))
			for id, qty := range inv {
				if qty < 0 {
					return fmt.Errorf("quantity for %q must be non-negative", id)
				}
				if qty == 0 {
					continue
				}
				parsed[domain.ResourceID(id)] = qty
			}
			state.Inventory = parsed
			return nil
		}},
	}

	for _, c := range checks {
		v, present := fields[c.field]
		if !present || string(v) == "null" {
			if c.required {
				return State{}, &ValidationError{Field: c.field, Reason: "is required"}
			}
			continue
		}
		if err := c.apply(v); err != nil {
			if c.required {
				return State{}, &ValidationError{Field: c.field, Reason: err.Error()}
			}
			// Optional fields keep their default on a malformed value.
		}
	}

	return state, nil
}
