// Package postgres implements the repository interfaces against
// PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/korvess/DeepMine_Go/internal/domain"
	"github.com/korvess/DeepMine_Go/internal/repository"
)

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Load fetches a player's saved record
func (r *PlayerRepository) Load(ctx context.Context, playerKey string) (*repository.PlayerRecord, error) {
	query := `
		SELECT world, depth, record, updated_at
		FROM player_records
		WHERE player_key = $1
	`

	var rec repository.PlayerRecord
	err := r.db.QueryRow(ctx, query, playerKey).Scan(&rec.World, &rec.Depth, &rec.Record, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load player record: %w", err)
	}

	return &rec, nil
}

// Save upserts a player's record
func (r *PlayerRepository) Save(ctx context.Context, playerKey string, rec repository.PlayerRecord) error {
	query := `
		INSERT INTO player_records (player_key, world, depth, record, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (player_key) DO UPDATE
		SET world = EXCLUDED.world,
		    depth = EXCLUDED.depth,
		    record = EXCLUDED.record,
		    updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, playerKey, rec.World, rec.Depth, rec.Record)
	if err != nil {
		return fmt.Errorf("failed to save player record: %w", err)
	}
	return nil
}

// Delete removes a player's record
func (r *PlayerRepository) Delete(ctx context.Context, playerKey string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM player_records WHERE player_key = $1`, playerKey)
	if err != nil {
		return fmt.Errorf("failed to delete player record: %w", err)
	}
	return nil
}
