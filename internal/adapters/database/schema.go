package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/faithfinder/backend/internal/infrastructure/clients/postgres"
)

// Coordinates are fixed-scale NUMERIC columns. lib/pq returns them as text,
// so they scan straight into the string fields with all 8 fractional digits.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS faith_groups (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		religion         TEXT NOT NULL,
		denomination     TEXT,
		description      TEXT NOT NULL,
		long_description TEXT,
		address          TEXT NOT NULL,
		city             TEXT NOT NULL,
		state            TEXT NOT NULL,
		zip_code         TEXT NOT NULL,
		latitude         NUMERIC(10, 8) NOT NULL CHECK (latitude BETWEEN -90 AND 90),
		longitude        NUMERIC(11, 8) NOT NULL CHECK (longitude BETWEEN -180 AND 180),
		phone            TEXT,
		email            TEXT,
		website          TEXT,
		rating           DOUBLE PRECISION NOT NULL DEFAULT 0,
		review_count     INTEGER NOT NULL DEFAULT 0,
		service_times    JSONB NOT NULL DEFAULT '[]'::jsonb,
		is_open          TEXT NOT NULL DEFAULT 'unknown',
		google_place_id  TEXT UNIQUE,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_faith_groups_created_at ON faith_groups (created_at, id)`,
	`CREATE TABLE IF NOT EXISTS users (
		id             TEXT PRIMARY KEY,
		email          TEXT NOT NULL UNIQUE,
		password_hash  TEXT NOT NULL,
		first_name     TEXT NOT NULL,
		last_name      TEXT NOT NULL,
		faith          TEXT NOT NULL DEFAULT '',
		location       TEXT NOT NULL DEFAULT '',
		user_type      TEXT NOT NULL DEFAULT '',
		faith_practice TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables used by the directory when they are missing
func EnsureSchema(ctx context.Context, client *postgres.Client) error {
	for i, stmt := range schemaStatements {
		if _, err := client.DB().ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	log.Info().Int("statements", len(schemaStatements)).Msg("database schema ensured")
	return nil
}
