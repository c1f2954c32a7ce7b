package handlers

import (
	"math"

	"github.com/swelljoe/weekly-wthr/internal/app"
	"github.com/swelljoe/weekly-wthr/internal/weather"
)

// DayCell is one entry in the weekly strip
type DayCell struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Min   *int   `json:"min"` // nil when the day has no data
	Max   *int   `json:"max"`
}

type pageData struct {
	State app.State
	Days  []DayCell
}

func newPage(st app.State) pageData {
	return pageData{
		State: st,
		Days:  BuildDays(st.Forecast),
	}
}

// BuildDays turns the aligned daily series into cells, min rounded down and max rounded up
func BuildDays(fc *weather.Forecast) []DayCell {
	if fc.Len() == 0 {
		return nil
	}

	days := make([]DayCell, 0, fc.Len())
	for i, date := range fc.Time {
		days = append(days, DayCell{
			Date:  date,
			Label: weather.DayLabel(i, date),
			Icon:  weather.IconFor(fc.WeatherCode[i]),
			Min:   round(fc.TempMin[i], math.Floor),
			Max:   round(fc.TempMax[i], math.Ceil),
		})
	}
	return days
}

func round(v *float64, fn func(float64) float64) *int {
	if v == nil {
		return nil
	}
	n := int(fn(*v))
	return &n
}
