package weather

import "fmt"

// Place is the first geocoding match for a query
type Place struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	Name        string  `json:"name"`
	CountryCode string  `json:"country_code"`
}

// Label returns the human-readable "name + flag" string for the place
func (p Place) Label() string {
	return DisplayLabel(p.Name, p.CountryCode)
}

// Forecast holds the daily series returned by the forecast endpoint.
// The field names match the Open-Meteo "daily" object so it can be stored verbatim.
// Open-Meteo reports days without data as null, so the value series are nullable.
type Forecast struct {
	Time        []string   `json:"time"`
	WeatherCode []*int     `json:"weathercode"`
	TempMax     []*float64 `json:"temperature_2m_max"`
	TempMin     []*float64 `json:"temperature_2m_min"`
}

// Len returns the number of days in the forecast
func (f *Forecast) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Time)
}

// Validate checks that all four daily series are index-aligned
func (f *Forecast) Validate() error {
	if f == nil {
		return fmt.Errorf("forecast missing daily data")
	}
	n := len(f.Time)
	if len(f.WeatherCode) != n || len(f.TempMax) != n || len(f.TempMin) != n {
		return fmt.Errorf("forecast series misaligned: time=%d weathercode=%d max=%d min=%d",
			n, len(f.WeatherCode), len(f.TempMax), len(f.TempMin))
	}
	return nil
}

// Result is everything a successful fetch produces
type Result struct {
	Place    Place     `json:"place"`
	Label    string    `json:"label"`
	Forecast *Forecast `json:"forecast"`
}
