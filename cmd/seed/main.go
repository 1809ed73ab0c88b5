package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/faithfinder/backend/internal/adapters/database"
	"github.com/faithfinder/backend/internal/adapters/memory"
	"github.com/faithfinder/backend/internal/infrastructure/clients/postgres"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
	"github.com/faithfinder/backend/pkg/config"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

// seed loads the sample directory into PostgreSQL. Rows that already exist
// are left alone, so the command can be re-run safely.
func main() {
	var schemaOnly bool
	flag.BoolVar(&schemaOnly, "schema-only", false, "create tables without inserting sample data")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	observability.InitLogger("faith-finder-seed", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	if err := database.EnsureSchema(ctx, pgClient); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}
	if schemaOnly {
		log.Info().Msg("Schema ready")
		return
	}

	repo := database.NewFaithGroupAdapter(pgClient)
	created, skipped := 0, 0
	for _, g := range memory.SampleFaithGroups() {
		err := repo.Create(ctx, g)
		switch {
		case err == nil:
			created++
		case apperrors.IsConflict(err):
			skipped++
		default:
			log.Fatal().Err(err).Str("id", g.ID).Msg("Failed to insert faith group")
		}
	}
	log.Info().Int("created", created).Int("skipped", skipped).Msg("Seed complete")
}
