// Package store persists the last displayed location and forecast.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/swelljoe/weekly-wthr/internal/weather"
)

// Fixed keys for the two persisted values
const (
	KeyLocation = "location"
	KeyWeather  = "weather"
)

// Store is a key-value persistence backend
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Snapshot is what was persisted by the previous session
type Snapshot struct {
	Location string
	Forecast *weather.Forecast
}

// Cache reads and writes the persisted location and forecast through a Store
type Cache struct {
	store Store
}

// NewCache wraps s
func NewCache(s Store) *Cache {
	return &Cache{store: s}
}

// Load reads both persisted values. Missing keys yield zero values.
func (c *Cache) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	loc, _, err := c.store.Get(ctx, KeyLocation)
	if err != nil {
		return snap, err
	}
	snap.Location = loc

	raw, found, err := c.store.Get(ctx, KeyWeather)
	if err != nil {
		return snap, err
	}
	if !found || raw == "" {
		return snap, nil
	}

	var fc weather.Forecast
	if err := json.Unmarshal([]byte(raw), &fc); err != nil {
		return snap, fmt.Errorf("failed to decode cached forecast: %w", err)
	}
	if err := fc.Validate(); err != nil {
		return snap, fmt.Errorf("cached forecast: %w", err)
	}
	snap.Forecast = &fc
	return snap, nil
}

// SaveLocation persists the display label
func (c *Cache) SaveLocation(ctx context.Context, label string) error {
	return c.store.Set(ctx, KeyLocation, label)
}

// SaveForecast persists the forecast as JSON
func (c *Cache) SaveForecast(ctx context.Context, fc *weather.Forecast) error {
	data, err := json.Marshal(fc)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, KeyWeather, string(data))
}

// ClearForecast removes the persisted forecast
func (c *Cache) ClearForecast(ctx context.Context) error {
	return c.store.Delete(ctx, KeyWeather)
}

// Ping reports whether the backend is reachable
func (c *Cache) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// Memory is an in-process Store; nothing survives a restart
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }
