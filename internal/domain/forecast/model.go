package forecast

// Sample is one 3-hour forecast data point as delivered by the upstream provider.
type Sample struct {
	Timestamp    int64   `json:"timestamp"`
	TemperatureC float64 `json:"temperatureC"`
	Icon         string  `json:"icon"`
	Description  string  `json:"description"`
}

// DailySummary condenses every sample that shares a day label.
type DailySummary struct {
	DayLabel            string  `json:"dayLabel"`
	AverageTemperatureC float64 `json:"averageTemperatureC"`
	Icon                string  `json:"icon"`
	Description         string  `json:"description"`
	Samples             int     `json:"samples"`
}

// HourlySummary is a labelled sample from the fixed hourly window.
type HourlySummary struct {
	TimeLabel    string  `json:"timeLabel"`
	TemperatureC float64 `json:"temperatureC"`
	Icon         string  `json:"icon"`
	Description  string  `json:"description"`
}

// Forecast is the decoded 5-day/3-hour payload.
type Forecast struct {
	City           string
	Country        string
	TimezoneOffset int
	Samples        []Sample
}

// Current holds the decoded current-conditions payload.
type Current struct {
	City         string  `json:"city"`
	Country      string  `json:"country"`
	TemperatureC float64 `json:"temperatureC"`
	FeelsLikeC   float64 `json:"feelsLikeC"`
	Humidity     int     `json:"humidity"`
	PressureHPa  int     `json:"pressureHpa"`
	WindSpeedMS  float64 `json:"windSpeedMs"`
	Icon         string  `json:"icon"`
	Description  string  `json:"description"`
	Timestamp    int64   `json:"timestamp"`
}
