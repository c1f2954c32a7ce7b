// Command forecast prints the weekly strip for a location to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/swelljoe/weekly-wthr/internal/config"
	"github.com/swelljoe/weekly-wthr/internal/handlers"
	"github.com/swelljoe/weekly-wthr/internal/store"
	"github.com/swelljoe/weekly-wthr/internal/weather"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("forecast", flag.ContinueOnError)
	save := fs.Bool("save", false, "persist the label and forecast to the configured store")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := strings.Join(fs.Args(), " ")
	if len([]rune(query)) < 3 {
		return fmt.Errorf("usage: forecast [-save] <location> (at least 3 characters)")
	}

	cfg := config.Load()
	ctx := context.Background()

	client := weather.NewClient(cfg.GeocodingURL, cfg.ForecastURL, cfg.UserAgent, cfg.HTTPTimeout)
	res, err := weather.NewService(client).FetchForecast(ctx, query)
	if err != nil {
		return err
	}

	printForecast(out, res)

	if !*save {
		return nil
	}

	backend, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer closeStore()

	cache := store.NewCache(backend)
	if err := cache.SaveLocation(ctx, res.Label); err != nil {
		return err
	}
	return cache.SaveForecast(ctx, res.Forecast)
}

func printForecast(out io.Writer, res *weather.Result) {
	fmt.Fprintf(out, "Weather for %s\n", res.Label)
	for _, d := range handlers.BuildDays(res.Forecast) {
		fmt.Fprintf(out, "%-6s %s  %s — %s\n", d.Label, d.Icon, degrees(d.Min), degrees(d.Max))
	}
}

func degrees(v *int) string {
	if v == nil {
		return "–"
	}
	return strconv.Itoa(*v) + "°"
}
