package main

import (
	"log"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/yanqian/weather-dashboard/internal/domain/weather"
	"github.com/yanqian/weather-dashboard/internal/infra/config"
	"github.com/yanqian/weather-dashboard/internal/infra/weather/openweather"
	lambdaiface "github.com/yanqian/weather-dashboard/internal/interface/lambda"
	"github.com/yanqian/weather-dashboard/pkg/logger"
)

// The serverless deployment of GET /weather behind API Gateway.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("weather lambda: %v", err)
	}
	lg := logger.New()

	upstream := openweather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.Timeout)
	svc := weather.NewService(weather.Config{Provider: cfg.Weather.Provider}, upstream, lg)
	handler := lambdaiface.NewHandler(svc, lg)

	awslambda.Start(handler.Handle)
}
