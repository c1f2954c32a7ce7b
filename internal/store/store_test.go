package store

import (
	"context"
	"os"
	"reflect"
	"testing"

	"github.com/swelljoe/weekly-wthr/internal/db"
	"github.com/swelljoe/weekly-wthr/internal/weather"
)

func ints(v ...int) []*int {
	out := make([]*int, len(v))
	for i := range v {
		out[i] = &v[i]
	}
	return out
}

func floats(v ...float64) []*float64 {
	out := make([]*float64, len(v))
	for i := range v {
		out[i] = &v[i]
	}
	return out
}

func sampleForecast() *weather.Forecast {
	return &weather.Forecast{
		Time:        []string{"2024-01-15", "2024-01-16"},
		WeatherCode: ints(0, 61),
		TempMax:     floats(17.2, 15.1),
		TempMin:     floats(9.8, 10.4),
	}
}

func backends(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	stores := map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		r, err := NewRedis(context.Background(), addr, os.Getenv("REDIS_PASSWORD"), 15)
		if err != nil {
			t.Fatalf("Failed to connect to redis: %v", err)
		}
		t.Cleanup(func() {
			r.Delete(context.Background(), KeyLocation)
			r.Delete(context.Background(), KeyWeather)
			r.Close()
		})
		stores["redis"] = r
	}

	return stores
}

func TestCacheRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			c := NewCache(s)

			if err := c.SaveLocation(ctx, "Lisbon 🇵🇹"); err != nil {
				t.Fatalf("SaveLocation() error = %v", err)
			}
			if err := c.SaveForecast(ctx, sampleForecast()); err != nil {
				t.Fatalf("SaveForecast() error = %v", err)
			}

			snap, err := c.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if snap.Location != "Lisbon 🇵🇹" {
				t.Errorf("Expected location %q, got %q", "Lisbon 🇵🇹", snap.Location)
			}
			if !reflect.DeepEqual(snap.Forecast, sampleForecast()) {
				t.Errorf("Forecast mismatch: %+v", snap.Forecast)
			}

			if err := c.ClearForecast(ctx); err != nil {
				t.Fatalf("ClearForecast() error = %v", err)
			}
			snap, err = c.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if snap.Forecast != nil {
				t.Errorf("Expected forecast cleared, got %+v", snap.Forecast)
			}
			if snap.Location != "Lisbon 🇵🇹" {
				t.Errorf("Expected location kept after clearing forecast, got %q", snap.Location)
			}
		})
	}
}

func TestCacheLoadEmpty(t *testing.T) {
	snap, err := NewCache(NewMemory()).Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if snap.Location != "" || snap.Forecast != nil {
		t.Errorf("Expected empty snapshot, got %+v", snap)
	}
}

func TestCacheLoadCorrupt(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "invalid json", value: "{not json"},
		{name: "misaligned", value: `{"time":["2024-01-15"],"weathercode":[],"temperature_2m_max":[1],"temperature_2m_min":[0]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory()
			m.Set(context.Background(), KeyLocation, "Lisbon 🇵🇹")
			m.Set(context.Background(), KeyWeather, tt.value)

			snap, err := NewCache(m).Load(context.Background())
			if err == nil {
				t.Fatal("Expected error for corrupt forecast")
			}
			if snap.Forecast != nil {
				t.Errorf("Expected no forecast, got %+v", snap.Forecast)
			}
			if snap.Location != "Lisbon 🇵🇹" {
				t.Errorf("Expected location still loaded, got %q", snap.Location)
			}
		})
	}
}

func TestForecastStoredAsDailyObject(t *testing.T) {
	m := NewMemory()
	if err := NewCache(m).SaveForecast(context.Background(), sampleForecast()); err != nil {
		t.Fatal(err)
	}

	raw, _, _ := m.Get(context.Background(), KeyWeather)
	want := `{"time":["2024-01-15","2024-01-16"],"weathercode":[0,61],"temperature_2m_max":[17.2,15.1],"temperature_2m_min":[9.8,10.4]}`
	if raw != want {
		t.Errorf("Expected %s, got %s", want, raw)
	}
}
