package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/faithfinder/backend/internal/adapters/database"
	"github.com/faithfinder/backend/internal/adapters/memory"
	"github.com/faithfinder/backend/internal/adapters/search"
	"github.com/faithfinder/backend/internal/domain/repositories"
	"github.com/faithfinder/backend/internal/infrastructure/clients/postgres"
	"github.com/faithfinder/backend/internal/infrastructure/clients/typesense"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
	"github.com/faithfinder/backend/pkg/config"
	"github.com/faithfinder/backend/pkg/retry"
)

func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "delete existing Typesense collection before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	if intervalValue != "" {
		var err error
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatal().Err(err).Str("interval", intervalValue).Msg("Invalid interval")
		}
		if interval <= 0 {
			log.Fatal().Msg("Interval must be greater than zero")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	observability.InitLogger("faith-finder-indexer", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, cfg, reset); err != nil {
			log.Error().Err(err).Msg("Reindex failed")
		}

		if interval <= 0 {
			break
		}

		reset = false
		log.Info().Dur("next_run_in", interval).Msg("Reindex complete")

		select {
		case <-ctx.Done():
			log.Info().Msg("Reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, cfg *config.Config, reset bool) error {
	var repo repositories.FaithGroupRepository
	if cfg.Storage.Driver == config.StoragePostgres {
		pgClient, err := postgres.NewClient(ctx, &cfg.Database)
		if err != nil {
			return err
		}
		defer pgClient.Close()
		repo = database.NewFaithGroupAdapter(pgClient)
	} else {
		repo = memory.NewFaithGroupStore(memory.SampleFaithGroups()...)
	}

	tsClient, err := typesense.NewClient(ctx, &cfg.Typesense, retry.DefaultConfig())
	if err != nil {
		return err
	}

	if reset || os.Getenv("RESET_TYPESENSE") == "true" {
		log.Info().Str("collection", typesense.FaithGroupsCollection).Msg("Deleting collection before reindex")
		if _, err := tsClient.Client().Collection(typesense.FaithGroupsCollection).Delete(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to delete collection")
		}
	}

	if err := tsClient.InitSchema(ctx); err != nil {
		return err
	}

	groups, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}

	log.Info().Int("count", len(groups)).Msg("Indexing faith groups")
	indexed, err := search.NewTypesenseAdapter(tsClient).IndexAll(ctx, groups)
	if err != nil {
		return err
	}
	log.Info().Int("indexed", indexed).Msg("Indexing finished")
	return nil
}
