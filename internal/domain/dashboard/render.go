package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/yanqian/weather-dashboard/internal/domain/forecast"
)

const (
	defaultIconBaseURL = "https://openweathermap.org/img/wn"
	longDateLayout     = "Monday, January 2, 2006"
)

// RenderOptions carries the ambient inputs of Render.
type RenderOptions struct {
	Now time.Time
	// Zone labels dates and times. Nil uses the offset reported for the forecast city.
	Zone        *time.Location
	IconBaseURL string
}

// View is everything the presentation surface needs to draw the dashboard.
type View struct {
	Unit    forecast.Unit `json:"unit"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
	Current *CurrentView  `json:"current,omitempty"`
	Daily   []DayCard     `json:"daily"`
	Hourly  []HourItem    `json:"hourly"`
}

// CurrentView is the current-conditions panel.
type CurrentView struct {
	Location    string `json:"location"`
	Date        string `json:"date"`
	Temperature int    `json:"temperature"`
	FeelsLike   string `json:"feelsLike"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
	Humidity    string `json:"humidity"`
	Wind        string `json:"wind"`
	Pressure    string `json:"pressure"`
}

// DayCard is one entry of the 5-day strip.
type DayCard struct {
	Day         string `json:"day"`
	Temperature int    `json:"temperature"`
	Text        string `json:"text"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
}

// HourItem is one entry of the hourly strip.
type HourItem struct {
	Time        string `json:"time"`
	Temperature int    `json:"temperature"`
	Text        string `json:"text"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
}

// Render is a pure projection of s. It performs no I/O, so a unit switch is just another Render call.
func Render(s State, opts RenderOptions) View {
	view := View{
		Unit:    s.Unit,
		Loading: s.Loading,
		Error:   s.Err,
		Daily:   []DayCard{},
		Hourly:  []HourItem{},
	}
	if s.Data == nil {
		return view
	}

	base := strings.TrimRight(opts.IconBaseURL, "/")
	if base == "" {
		base = defaultIconBaseURL
	}
	labeler := forecast.NewLabeler(opts.Zone)
	zone := opts.Zone
	if zone == nil {
		labeler = forecast.OffsetLabeler(s.Data.Forecast.TimezoneOffset)
		zone = time.FixedZone("", s.Data.Forecast.TimezoneOffset)
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	view.Current = renderCurrent(s.Data.Current, s.Unit, now.In(zone), base)
	for _, day := range forecast.Daily(s.Data.Forecast.Samples, labeler) {
		temp := forecast.Temperature(day.AverageTemperatureC, s.Unit)
		view.Daily = append(view.Daily, DayCard{
			Day:         day.DayLabel,
			Temperature: temp,
			Text:        degrees(temp),
			Description: day.Description,
			IconURL:     iconURL(base, day.Icon, true),
		})
	}
	for _, hour := range forecast.Hourly(s.Data.Forecast.Samples, labeler) {
		temp := forecast.Temperature(hour.TemperatureC, s.Unit)
		view.Hourly = append(view.Hourly, HourItem{
			Time:        hour.TimeLabel,
			Temperature: temp,
			Text:        degrees(temp),
			Description: hour.Description,
			IconURL:     iconURL(base, hour.Icon, false),
		})
	}
	return view
}

func renderCurrent(c forecast.Current, unit forecast.Unit, now time.Time, iconBase string) *CurrentView {
	location := c.City
	if c.Country != "" {
		location = fmt.Sprintf("%s, %s", c.City, c.Country)
	}
	speed, speedUnit := forecast.WindSpeed(c.WindSpeedMS, unit)
	return &CurrentView{
		Location:    location,
		Date:        now.Format(longDateLayout),
		Temperature: forecast.Temperature(c.TemperatureC, unit),
		FeelsLike:   degrees(forecast.Temperature(c.FeelsLikeC, unit)),
		Description: c.Description,
		IconURL:     iconURL(iconBase, c.Icon, true),
		Humidity:    fmt.Sprintf("%d%%", c.Humidity),
		Wind:        fmt.Sprintf("%d %s", speed, speedUnit),
		Pressure:    fmt.Sprintf("%d hPa", c.PressureHPa),
	}
}

func iconURL(base, icon string, large bool) string {
	if icon == "" {
		return ""
	}
	if large {
		return fmt.Sprintf("%s/%s@2x.png", base, icon)
	}
	return fmt.Sprintf("%s/%s.png", base, icon)
}

func degrees(v int) string {
	return fmt.Sprintf("%d°", v)
}
