package forecast

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

type forecastWire struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []conditionWire `json:"weather"`
	} `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

type currentWire struct {
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []conditionWire `json:"weather"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type conditionWire struct {
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// DecodeForecast parses the provider's forecast document. Entries keep their arrival order.
func DecodeForecast(raw []byte) (Forecast, error) {
	if len(raw) == 0 {
		return Forecast{}, errors.New("empty forecast payload")
	}
	var wire forecastWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return Forecast{}, fmt.Errorf("decode forecast payload: %w", err)
	}

	samples := make([]Sample, 0, len(wire.List))
	for _, item := range wire.List {
		cond := firstCondition(item.Weather)
		samples = append(samples, Sample{
			Timestamp:    item.Dt,
			TemperatureC: item.Main.Temp,
			Icon:         cond.Icon,
			Description:  cond.Description,
		})
	}
	return Forecast{
		City:           wire.City.Name,
		Country:        wire.City.Country,
		TimezoneOffset: wire.City.Timezone,
		Samples:        samples,
	}, nil
}

// DecodeCurrent parses the provider's current-weather document.
func DecodeCurrent(raw []byte) (Current, error) {
	if len(raw) == 0 {
		return Current{}, errors.New("empty current payload")
	}
	var wire currentWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return Current{}, fmt.Errorf("decode current payload: %w", err)
	}
	cond := firstCondition(wire.Weather)
	return Current{
		City:         wire.Name,
		Country:      wire.Sys.Country,
		TemperatureC: wire.Main.Temp,
		FeelsLikeC:   wire.Main.FeelsLike,
		Humidity:     int(math.Round(wire.Main.Humidity)),
		PressureHPa:  int(math.Round(wire.Main.Pressure)),
		WindSpeedMS:  wire.Wind.Speed,
		Icon:         cond.Icon,
		Description:  cond.Description,
		Timestamp:    wire.Dt,
	}, nil
}

func firstCondition(items []conditionWire) conditionWire {
	if len(items) == 0 {
		return conditionWire{}
	}
	return items[0]
}
