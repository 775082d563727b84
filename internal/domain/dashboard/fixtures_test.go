package dashboard

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yanqian/weather-dashboard/internal/domain/weather"
)

// 2024-07-01 is a Monday.
var monday = time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

type sampleFixture struct {
	offset time.Duration
	temp   float64
	icon   string
	desc   string
}

func payloadFor(city, country string, temp float64, samples ...sampleFixture) weather.Payload {
	current := fmt.Sprintf(`{"name":%q,"dt":%d,"main":{"temp":%v,"feels_like":%v,"humidity":72,"pressure":1012},"wind":{"speed":5},"weather":[{"icon":"03d","description":"scattered clouds"}],"sys":{"country":%q}}`,
		city, monday.Unix(), temp, temp-1, country)

	entries := make([]string, 0, len(samples))
	for _, s := range samples {
		entries = append(entries, fmt.Sprintf(`{"dt":%d,"main":{"temp":%v},"weather":[{"icon":%q,"description":%q}]}`,
			monday.Add(s.offset).Unix(), s.temp, s.icon, s.desc))
	}
	fc := fmt.Sprintf(`{"list":[%s],"city":{"name":%q,"country":%q,"timezone":0}}`, strings.Join(entries, ","), city, country)
	return weather.Payload{Current: json.RawMessage(current), Forecast: json.RawMessage(fc)}
}

func snapshotFor(city string, temp float64, samples ...sampleFixture) Snapshot {
	snap, err := NewSnapshot(payloadFor(city, "GB", temp, samples...))
	if err != nil {
		panic(err)
	}
	return snap
}
