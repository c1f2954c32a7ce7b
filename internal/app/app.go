// Package app owns the UI state: the query being typed, the loading flag, and the
// persisted label and forecast. It is the only writer of that state.
package app

import (
	"context"
	"log"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/swelljoe/weekly-wthr/internal/store"
	"github.com/swelljoe/weekly-wthr/internal/weather"
)

const (
	// MinQueryLength is the shortest query that triggers a fetch
	MinQueryLength = 3
	// ClearBelowLength clears the forecast when the query shrinks under it
	ClearBelowLength = 2
)

// Fetcher resolves a query into a forecast
type Fetcher interface {
	FetchForecast(ctx context.Context, query string) (*weather.Result, error)
}

// State is a point-in-time copy of the UI state
type State struct {
	Query    string            `json:"query"`
	Loading  bool              `json:"loading"`
	Location string            `json:"location"`
	Forecast *weather.Forecast `json:"weather,omitempty"`
}

// App is the view-layer state holder
type App struct {
	fetcher Fetcher
	cache   *store.Cache

	mu     sync.Mutex
	state  State
	token  uuid.UUID
	cancel context.CancelFunc
	rev    uint64

	// wmu orders store writes outside mu; written is the newest rev persisted
	wmu     sync.Mutex
	written uint64
}

// New creates an App and restores the persisted label and forecast.
// A failed restore is logged and the app starts empty.
func New(ctx context.Context, fetcher Fetcher, cache *store.Cache) *App {
	a := &App{
		fetcher: fetcher,
		cache:   cache,
	}

	snap, err := cache.Load(ctx)
	if err != nil {
		log.Printf("Cache load error: %v", err)
	}
	a.state.Location = snap.Location
	a.state.Forecast = snap.Forecast

	return a
}

// State returns a copy of the current state
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// SetQuery records an edit to the location input and drives the fetch cycle.
// The returned channel is closed once the fetch it started has settled; it is
// nil when the edit did not start a fetch.
func (a *App) SetQuery(q string) <-chan struct{} {
	a.mu.Lock()

	a.state.Query = q
	n := utf8.RuneCountInString(q)

	if n < ClearBelowLength {
		a.supersede()
		a.state.Query = ""
		a.state.Forecast = nil
		a.state.Loading = false
		a.rev++
		rev := a.rev
		a.mu.Unlock()

		a.persist(rev, func(ctx context.Context) {
			if err := a.cache.ClearForecast(ctx); err != nil {
				log.Printf("Cache clear error: %v", err)
			}
		})
		return nil
	}
	defer a.mu.Unlock()

	if n < MinQueryLength {
		return nil
	}

	a.supersede()
	token := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())
	a.token = token
	a.cancel = cancel
	a.state.Loading = true

	done := make(chan struct{})
	go a.fetch(ctx, cancel, token, q, done)
	return done
}

// supersede cancels the in-flight fetch, if any. Caller holds a.mu.
func (a *App) supersede() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.token = uuid.Nil
}

func (a *App) fetch(ctx context.Context, cancel context.CancelFunc, token uuid.UUID, q string, done chan<- struct{}) {
	defer close(done)
	defer cancel()

	res, err := a.fetcher.FetchForecast(ctx, q)

	a.mu.Lock()
	if token != a.token {
		// A newer edit owns the state now
		a.mu.Unlock()
		return
	}
	a.cancel = nil
	a.state.Loading = false

	if err != nil {
		a.mu.Unlock()
		log.Printf("Weather error: %v", err)
		return
	}

	a.state.Location = res.Label
	a.state.Forecast = res.Forecast
	a.rev++
	rev := a.rev
	a.mu.Unlock()

	a.persist(rev, func(ctx context.Context) {
		if err := a.cache.SaveLocation(ctx, res.Label); err != nil {
			log.Printf("Cache write error: %v", err)
		}
		if err := a.cache.SaveForecast(ctx, res.Forecast); err != nil {
			log.Printf("Cache write error: %v", err)
		}
	})
}

// persist runs a store write for state revision rev without holding a.mu.
// A write whose revision is older than one already persisted is dropped, so
// the store ends up matching the newest in-memory state.
func (a *App) persist(rev uint64, write func(ctx context.Context)) {
	a.wmu.Lock()
	defer a.wmu.Unlock()

	if rev < a.written {
		return
	}
	a.written = rev
	write(context.Background())
}

// Close cancels any in-flight fetch
func (a *App) Close() {
	a.mu.Lock()
	a.supersede()
	a.mu.Unlock()
}
