package weather

import (
	"strings"
	"time"
)

// IconNotFound is returned by Icon for codes outside the WMO table
const IconNotFound = "NOT FOUND"

var iconGroups = []struct {
	codes []int
	glyph string
}{
	{[]int{0}, "☀️"},
	{[]int{1}, "🌤"},
	{[]int{2}, "⛅️"},
	{[]int{3}, "☁️"},
	{[]int{45, 48}, "🌫"},
	{[]int{51, 56, 61, 66, 80}, "🌦"},
	{[]int{53, 55, 63, 65, 57, 67, 81, 82}, "🌧"},
	{[]int{71, 73, 75, 77, 85, 86}, "🌨"},
	{[]int{95}, "🌩"},
	{[]int{96, 99}, "⛈"},
}

var icons = flattenIcons()

func flattenIcons() map[int]string {
	m := make(map[int]string)
	for _, g := range iconGroups {
		for _, c := range g.codes {
			m[c] = g.glyph
		}
	}
	return m
}

// Icon maps a WMO weather code to an emoji
func Icon(code int) string {
	if glyph, ok := icons[code]; ok {
		return glyph
	}
	return IconNotFound
}

// regional indicator 'A' (U+1F1E6) minus 'A'
const flagOffset = 127397

// Flag converts a two-letter ISO country code into its flag glyph
func Flag(countryCode string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(countryCode) {
		b.WriteRune(r + flagOffset)
	}
	return b.String()
}

// IconFor is Icon for a possibly-missing code
func IconFor(code *int) string {
	if code == nil {
		return IconNotFound
	}
	return Icon(*code)
}

// DisplayLabel combines a place name and the flag for its country.
// Places without a country code get the bare name.
func DisplayLabel(name, countryCode string) string {
	if countryCode == "" {
		return name
	}
	return name + " " + Flag(countryCode)
}

// FormatDay renders an ISO date as a short weekday name, e.g. "Mon".
// Input that doesn't parse is returned unchanged.
func FormatDay(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("Mon")
}

// DayLabel labels the i-th day of a forecast; the first day is always "Today"
func DayLabel(i int, date string) string {
	if i == 0 {
		return "Today"
	}
	return FormatDay(date)
}
