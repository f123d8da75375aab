package wttr

import (
	"context"
	"sync"
)

// MockProvider serves canned payloads through the same decoder as the
// live client. Payloads overrides Payload per city; Errs short-circuits.
type MockProvider struct {
	Payload  string
	Payloads map[string]string
	Errs     map[string]error

	mu    sync.Mutex
	calls []string
}

func (m *MockProvider) Fetch(ctx context.Context, city string) (*Report, error) {
	m.mu.Lock()
	m.calls = append(m.calls, city)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.Errs[city]; ok {
		return nil, err
	}
	payload := m.Payload
	if p, ok := m.Payloads[city]; ok {
		payload = p
	}
	return DecodeReport([]byte(payload))
}

// Calls returns the cities requested so far, in order.
func (m *MockProvider) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// SamplePayload builds a minimal j1 document with the given current
// temperature and description and three hourly slots.
func SamplePayload(tempC, desc string) string {
	return `{
  "current_condition": [{
    "temp_C": "` + tempC + `",
    "FeelsLikeC": "` + tempC + `",
    "windspeedKmph": "11",
    "winddir16Point": "SW",
    "precipMM": "0.1",
    "weatherDesc": [{"value": "` + desc + `"}]
  }],
  "weather": [{
    "hourly": [
      {"time": "0", "tempC": "` + tempC + `", "weatherDesc": [{"value": "Clear"}]},
      {"time": "900", "tempC": "` + tempC + `", "weatherDesc": [{"value": "` + desc + `"}]},
      {"time": "1500", "tempC": "` + tempC + `", "weatherDesc": [{"value": "Light rain"}]}
    ]
  }]
}`
}
