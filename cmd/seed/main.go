package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"career-guide/internal/config"
	"career-guide/internal/database/migration"
	dbpostgres "career-guide/internal/database/postgres"
	"career-guide/internal/database/seeder"
	"career-guide/internal/pkg/logger"
	"career-guide/migrations"

	"go.uber.org/zap"
)

func main() {
	only := flag.String("only", "", "comma separated seeders to run (jobs,resources); empty runs all")
	skipMigrate := flag.Bool("skip-migrate", false, "do not apply migrations before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl := logger.New(cfg.App.LogLevel, cfg.App.LogFormat)
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database, zl)
	if err != nil {
		zl.Fatal("failed to connect database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if !*skipMigrate {
		r := migration.Runner{FS: migrations.FS, Logger: zl}
		if err := r.Run(ctx, db.SQLDB()); err != nil {
			zl.Fatal("migration failed", zap.Error(err))
		}
	}

	runner := seeder.Runner{Seeders: selectSeeders(seeder.Defaults(), *only), Logger: zl}
	if err := runner.Run(ctx, db); err != nil {
		zl.Fatal("seeding failed", zap.Error(err))
	}
	zl.Info("seeding complete")
}

func selectSeeders(all []seeder.Seeder, only string) []seeder.Seeder {
	only = strings.TrimSpace(only)
	if only == "" {
		return all
	}

	want := map[string]bool{}
	for _, name := range strings.Split(only, ",") {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			want[name] = true
		}
	}

	out := make([]seeder.Seeder, 0, len(all))
	for _, s := range all {
		if want[s.Name()] {
			out = append(out, s)
		}
	}
	return out
}
