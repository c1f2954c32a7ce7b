package weather

import (
	"context"
	"fmt"
)

// Service resolves a location query into a forecast
type Service struct {
	client *Client
}

// NewService creates a new weather service
func NewService(client *Client) *Service {
	return &Service{
		client: client,
	}
}

// FetchForecast geocodes the query, then fetches the daily forecast for the first match.
// The two requests are sequential; the second needs the coordinates from the first.
func (s *Service) FetchForecast(ctx context.Context, query string) (*Result, error) {
	place, err := s.client.Geocode(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}

	fc, err := s.client.GetForecast(ctx, *place)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast for %s: %w", place.Name, err)
	}

	return &Result{
		Place:    *place,
		Label:    place.Label(),
		Forecast: fc,
	}, nil
}
