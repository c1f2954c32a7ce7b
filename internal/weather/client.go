package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com"
	DefaultForecastURL  = "https://api.open-meteo.com"
	DefaultUserAgent    = "weekly-wthr/1.0"

	dailySeries = "weathercode,temperature_2m_max,temperature_2m_min"
)

// ErrLocationNotFound is returned when geocoding yields no results
var ErrLocationNotFound = errors.New("location not found")

// Client handles Open-Meteo API interactions
type Client struct {
	GeocodingURL string
	ForecastURL  string
	UserAgent    string
	HTTPClient   *http.Client
}

// NewClient creates a new Open-Meteo client. Empty arguments fall back to the public endpoints.
func NewClient(geocodingURL, forecastURL, userAgent string, timeout time.Duration) *Client {
	if geocodingURL == "" {
		geocodingURL = DefaultGeocodingURL
	}
	if forecastURL == "" {
		forecastURL = DefaultForecastURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		GeocodingURL: strings.TrimRight(geocodingURL, "/"),
		ForecastURL:  strings.TrimRight(forecastURL, "/"),
		UserAgent:    userAgent,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo API error: %d %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GeocodeResponse represents the /v1/search response
type GeocodeResponse struct {
	Results []Place `json:"results"`
}

// Geocode resolves a free-text location to the first matching place
func (c *Client) Geocode(ctx context.Context, query string) (*Place, error) {
	params := url.Values{}
	params.Set("name", query)
	requestURL := c.GeocodingURL + "/v1/search?" + params.Encode()

	data, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var resp GeocodeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, ErrLocationNotFound
	}

	place := resp.Results[0]
	return &place, nil
}

// ForecastResponse represents the /v1/forecast response
type ForecastResponse struct {
	Timezone string    `json:"timezone"`
	Daily    *Forecast `json:"daily"`
}

// GetForecast fetches the daily weather code and min/max temperature series for a place
func (c *Client) GetForecast(ctx context.Context, p Place) (*Forecast, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(p.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(p.Longitude, 'f', -1, 64))
	params.Set("timezone", p.Timezone)
	params.Set("daily", dailySeries)
	requestURL := c.ForecastURL + "/v1/forecast?" + params.Encode()

	data, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var resp ForecastResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}

	if err := resp.Daily.Validate(); err != nil {
		return nil, err
	}
	return resp.Daily, nil
}
