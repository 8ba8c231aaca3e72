// Command seed migrates the local database and fills it with demo records.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/zechsoft/new-trust-sub003/internal/config"
	"github.com/zechsoft/new-trust-sub003/internal/database"
	"github.com/zechsoft/new-trust-sub003/internal/logging"
	"github.com/zechsoft/new-trust-sub003/internal/seed"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "create tables without inserting demo data")
	flag.Parse()

	cfg := config.LoadConfig()
	log := logging.New(cfg.AppEnv)

	db, err := database.Open(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	log.Info().Msg("schema up to date")
	if *migrateOnly {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := seed.Into(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seed complete")
}
