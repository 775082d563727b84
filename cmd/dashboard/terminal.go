package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/yanqian/weather-dashboard/internal/domain/dashboard"
	"github.com/yanqian/weather-dashboard/internal/domain/forecast"
)

const helpText = "commands: search <city> | locate | unit c|f | dismiss | quit"

var errEmptyCity = errors.New("search needs a city name")

// parseCommand maps one input line onto a dashboard action.
func parseCommand(line string) (dashboard.Action, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false, nil
	}
	switch strings.ToLower(fields[0]) {
	case "search", "s":
		city := strings.TrimSpace(strings.Join(fields[1:], " "))
		if city == "" {
			return nil, false, errEmptyCity
		}
		return dashboard.Search{City: city}, false, nil
	case "locate", "l":
		return dashboard.RequestLocation{}, false, nil
	case "unit", "u":
		if len(fields) < 2 {
			return nil, false, fmt.Errorf("unit needs c or f")
		}
		unit, err := forecast.ParseUnit(fields[1])
		if err != nil {
			return nil, false, err
		}
		return dashboard.SwitchUnit{Unit: unit}, false, nil
	case "dismiss", "d":
		return dashboard.DismissError{}, false, nil
	case "quit", "q", "exit":
		return nil, true, nil
	default:
		return nil, false, fmt.Errorf("unknown command %q; %s", fields[0], helpText)
	}
}

type screen struct {
	mu   sync.Mutex
	out  io.Writer
	opts dashboard.RenderOptions
}

func newScreen(out io.Writer, opts dashboard.RenderOptions) *screen {
	return &screen{out: out, opts: opts}
}

func (s *screen) draw(state dashboard.State, now time.Time) {
	opts := s.opts
	opts.Now = now
	view := dashboard.Render(state, opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprint(s.out, format(view))
}

func format(v dashboard.View) string {
	var b strings.Builder
	b.WriteString("\n----------------------------------------\n")
	if v.Loading {
		b.WriteString("Loading...\n")
	}
	if v.Error != "" {
		fmt.Fprintf(&b, "! %s (type dismiss)\n", v.Error)
	}
	if c := v.Current; c != nil {
		fmt.Fprintf(&b, "%s  %s\n", c.Location, c.Date)
		fmt.Fprintf(&b, "%d%s  %s  (feels like %s)\n", c.Temperature, unitSuffix(v.Unit), c.Description, c.FeelsLike)
		fmt.Fprintf(&b, "humidity %s  wind %s  pressure %s\n", c.Humidity, c.Wind, c.Pressure)
	}
	if len(v.Hourly) > 0 {
		b.WriteString("\nNext hours\n")
		for _, h := range v.Hourly {
			fmt.Fprintf(&b, "  %-6s %5s  %s\n", h.Time, h.Text, h.Description)
		}
	}
	if len(v.Daily) > 0 {
		b.WriteString("\nForecast\n")
		for _, d := range v.Daily {
			fmt.Fprintf(&b, "  %-4s %5s  %s\n", d.Day, d.Text, d.Description)
		}
	}
	b.WriteString(helpText + "\n")
	return b.String()
}

func unitSuffix(u forecast.Unit) string {
	if u == forecast.Fahrenheit {
		return "°F"
	}
	return "°C"
}
