package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meikuraledutech/route"
	"github.com/meikuraledutech/route/memory"
	"github.com/meikuraledutech/route/postgres"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// DATABASE_URL selects the postgres history store; without it,
	// history lives in process memory.
	var store route.HistoryStore
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pool, err := pgxpool.New(context.Background(), dbURL)
		if err != nil {
			log.Fatalf("connect: %v", err)
		}
		defer pool.Close()

		pg := postgres.New(pool)
		if err := pg.CreateSchema(context.Background()); err != nil {
			log.Fatalf("schema: %v", err)
		}
		store = pg
		logger.Info("history store ready", "backend", "postgres")
	} else {
		store = memory.New()
		logger.Info("history store ready", "backend", "memory")
	}

	app := newApp(store, logger)

	addr := ":3000"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	log.Fatal(app.Listen(addr))
}
