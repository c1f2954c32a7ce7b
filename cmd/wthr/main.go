package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/swelljoe/weekly-wthr/internal/app"
	"github.com/swelljoe/weekly-wthr/internal/config"
	"github.com/swelljoe/weekly-wthr/internal/handlers"
	"github.com/swelljoe/weekly-wthr/internal/store"
	"github.com/swelljoe/weekly-wthr/internal/weather"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Initialize persistence
	backend, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		log.Printf("Warning: %s store unavailable: %v", cfg.StoreDriver, err)
		log.Println("Continuing with in-memory store...")
		backend, closeStore = store.NewMemory(), func() error { return nil }
	} else {
		log.Printf("Store %q connected successfully", cfg.StoreDriver)
	}
	defer closeStore()

	cache := store.NewCache(backend)

	client := weather.NewClient(cfg.GeocodingURL, cfg.ForecastURL, cfg.UserAgent, cfg.HTTPTimeout)
	a := app.New(ctx, weather.NewService(client), cache)
	defer a.Close()

	// Setup handlers
	h := handlers.New(a, cache)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server starting on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, h.Router()); err != nil {
		log.Fatal(err)
	}
}
