package metrics

import "time"

// UpstreamLatency captures how long each upstream call took for a gateway request.
type UpstreamLatency struct {
	CurrentMs  int64 `json:"currentMs"`
	ForecastMs int64 `json:"forecastMs"`
}

// Observe records the elapsed time since start for the named call.
func (u *UpstreamLatency) Observe(call string, start time.Time) {
	elapsed := time.Since(start).Milliseconds()
	switch call {
	case "current":
		u.CurrentMs = elapsed
	case "forecast":
		u.ForecastMs = elapsed
	}
}

// IsZero reports whether latency data is absent.
func (u UpstreamLatency) IsZero() bool {
	return u.CurrentMs == 0 && u.ForecastMs == 0
}
