package repository

import (
	"context"
	"time"
)

// PlayerRecord is the stored shape of one player's progression: the
// serialized ledger document plus the session position. The record bytes
// are opaque to the repository; validation happens in the ledger codec.
type PlayerRecord struct {
	World     string
	Depth     int
	Record    []byte
	UpdatedAt time.Time
}

// Player defines the interface for player progression persistence
type Player interface {
	// Load fetches a player's saved record. Returns
	// domain.ErrPlayerNotFound when the player has never been saved.
	Load(ctx context.Context, playerKey string) (*PlayerRecord, error)

	// Save upserts a player's record.
	Save(ctx context.Context, playerKey string, rec PlayerRecord) error

	// Delete removes a player's record. Used by account wipes.
	Delete(ctx context.Context, playerKey string) error
}
