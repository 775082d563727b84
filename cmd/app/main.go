package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
)

// The gateway server: GET /weather, GET /api/v1/dashboard and GET /healthz.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("weather gateway: wiring failed: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("weather gateway: stopped with error: %v", err)
	}
}
