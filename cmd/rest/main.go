package main

import (
	"context"
	"log"

	"ad-compliance-be/internal/bootstrap"
	"ad-compliance-be/internal/config"
	"ad-compliance-be/internal/server"
	"ad-compliance-be/internal/tracer"
	"ad-compliance-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewSQLiteDB(cfg.Database.Path)
	if err != nil {
		log.Panicf("Unable to open SQLite DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
