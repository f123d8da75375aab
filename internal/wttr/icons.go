package wttr

import (
	"math"
	"strconv"
	"strings"
)

const UnknownIcon = "?"

// iconRules is checked in order; the first rule with a matching keyword wins.
var iconRules = []struct {
	keywords []string
	icon     string
}{
	{[]string{"sunny"}, "☀"},
	{[]string{"clear"}, "🌙"},
	{[]string{"partly cloudy"}, "⛅"},
	{[]string{"cloudy"}, "☁"},
	{[]string{"overcast"}, "🌥"},
	{[]string{"mist", "fog"}, "🌫"},
	{[]string{"drizzle", "light rain"}, "🌦"},
	{[]string{"rain", "shower"}, "🌧"},
	{[]string{"sleet"}, "🌨"},
	{[]string{"snow"}, "❄"},
	{[]string{"thunder"}, "🌩"},
}

// Icon maps a free-text weather description to a single glyph.
func Icon(description string) string {
	d := strings.ToLower(description)
	for _, rule := range iconRules {
		for _, kw := range rule.keywords {
			if strings.Contains(d, kw) {
				return rule.icon
			}
		}
	}
	return UnknownIcon
}

// ParseCelsius converts a temperature string to whole degrees. Decimals are
// truncated toward zero; anything unparseable reads as 0.
func ParseCelsius(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.Abs(f) > math.MaxInt32 {
		return 0
	}
	return int(f)
}
