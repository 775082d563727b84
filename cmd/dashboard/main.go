package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yanqian/weather-dashboard/internal/domain/dashboard"
	"github.com/yanqian/weather-dashboard/internal/domain/forecast"
	"github.com/yanqian/weather-dashboard/internal/infra/config"
	"github.com/yanqian/weather-dashboard/internal/infra/gateway"
	"github.com/yanqian/weather-dashboard/internal/infra/geo"
	"github.com/yanqian/weather-dashboard/pkg/logger"
)

// A terminal dashboard that talks to the gateway's GET /weather.
func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("dashboard: %v", err)
	}

	gatewayURL := flag.String("gateway", cfg.Dashboard.GatewayURL, "weather gateway base URL")
	city := flag.String("city", cfg.Dashboard.DefaultCity, "city loaded on start")
	unitFlag := flag.String("unit", cfg.Dashboard.DefaultUnit, "display unit: c or f")
	lat := flag.Float64("lat", 0, "device latitude used by the locate command")
	lon := flag.Float64("lon", 0, "device longitude used by the locate command")
	flag.Parse()

	unit, err := forecast.ParseUnit(*unitFlag)
	if err != nil {
		log.Fatalf("dashboard: %v", err)
	}

	// stdout belongs to the screen; diagnostics go to stderr and stay quiet unless LOG_LEVEL asks.
	lg := logger.NewTo(os.Stderr, slog.LevelError)
	client := gateway.NewClient(*gatewayURL, cfg.Dashboard.Timeout)

	var locator dashboard.Locator
	if flagSet("lat") && flagSet("lon") {
		locator = geo.NewStaticLocator(*lat, *lon)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session := dashboard.NewSession(dashboard.Initial(*city, unit), client, locator, lg)
	screen := newScreen(os.Stdout, dashboard.RenderOptions{
		Zone:        cfg.Dashboard.Zone(),
		IconBaseURL: cfg.Weather.IconBaseURL,
	})

	go func() {
		defer cancel()
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			action, quit, err := parseCommand(scanner.Text())
			if quit {
				return
			}
			if err != nil {
				fmt.Fprintln(os.Stdout, err)
				continue
			}
			if action != nil && !session.Dispatch(ctx, action) {
				return
			}
		}
	}()

	err = session.Run(ctx, func(s dashboard.State) {
		screen.draw(s, time.Now())
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("dashboard: %v", err)
	}
}

func flagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
