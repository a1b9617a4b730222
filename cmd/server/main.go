package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/furnistore/api/internal/config"
	"github.com/furnistore/api/internal/database"
	"github.com/furnistore/api/internal/imagestore"
	"github.com/furnistore/api/internal/router"
	"github.com/furnistore/api/internal/ws"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Unable to ping database: %v", err)
	}
	log.Println("Connected to database")

	queries := database.New(pool)

	images, err := imagestore.New(cfg.ImageDir)
	if err != nil {
		log.Fatalf("Unable to prepare image directory: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	r := router.New(cfg, queries, pool, images, hub)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}
