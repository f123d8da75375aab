package wttr

// Description wraps the single-field description objects wttr.in returns.
type Description struct {
	Value string `json:"value"`
}

// CurrentCondition is the observation block of a j1 response. Numeric
// fields stay as the strings the endpoint sends.
type CurrentCondition struct {
	TempC          string        `json:"temp_C"`
	FeelsLikeC     string        `json:"FeelsLikeC"`
	WindspeedKmph  string        `json:"windspeedKmph"`
	Winddir16Point string        `json:"winddir16Point"`
	PrecipMM       string        `json:"precipMM"`
	WeatherDesc    []Description `json:"weatherDesc"`
}

// Hourly is one slot of a day's forecast. Time is "0", "300", ... "2100".
type Hourly struct {
	Time        string        `json:"time"`
	TempC       string        `json:"tempC"`
	WeatherDesc []Description `json:"weatherDesc"`
}

// Day holds the hourly slots for one forecast day.
type Day struct {
	Hourly []Hourly `json:"hourly"`
}

// Report is the decoded payload for one city.
type Report struct {
	CurrentCondition []CurrentCondition `json:"current_condition"`
	Weather          []Day              `json:"weather"`
}

// ReportSet maps region names to their reports. A missing key means the
// region has no data.
type ReportSet map[string]*Report

// Current returns the first current condition, if any.
func (r *Report) Current() (CurrentCondition, bool) {
	if r == nil || len(r.CurrentCondition) == 0 {
		return CurrentCondition{}, false
	}
	return r.CurrentCondition[0], true
}

// Today returns the first forecast day's hourly slots.
func (r *Report) Today() []Hourly {
	if r == nil || len(r.Weather) == 0 {
		return nil
	}
	return r.Weather[0].Hourly
}

func (c CurrentCondition) Description() string {
	return firstDescription(c.WeatherDesc)
}

func (h Hourly) Description() string {
	return firstDescription(h.WeatherDesc)
}

func firstDescription(d []Description) string {
	if len(d) == 0 {
		return ""
	}
	return d[0].Value
}
