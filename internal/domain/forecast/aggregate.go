package forecast

const (
	// MaxDays caps the number of distinct day buckets in the daily summary.
	MaxDays = 5
	// HourlyWindow is the number of leading samples shown in the hourly strip.
	HourlyWindow = 8
)

type bucket struct {
	label        string
	temps        []float64
	icons        []string
	descriptions []string
}

// Daily groups samples by day label and summarizes the first MaxDays labels.
// Buckets keep first-seen order; a label that reappears later still joins its original bucket.
func Daily(samples []Sample, labeler Labeler) []DailySummary {
	buckets := make([]*bucket, 0, MaxDays+1)
	index := make(map[string]*bucket)
	for _, s := range samples {
		label := labeler.Day(s.Timestamp)
		b, ok := index[label]
		if !ok {
			b = &bucket{label: label}
			index[label] = b
			buckets = append(buckets, b)
		}
		b.temps = append(b.temps, s.TemperatureC)
		b.icons = append(b.icons, s.Icon)
		b.descriptions = append(b.descriptions, s.Description)
	}

	if len(buckets) > MaxDays {
		buckets = buckets[:MaxDays]
	}
	out := make([]DailySummary, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, DailySummary{
			DayLabel:            b.label,
			AverageTemperatureC: mean(b.temps),
			Icon:                Plurality(b.icons),
			Description:         Plurality(b.descriptions),
			Samples:             len(b.temps),
		})
	}
	return out
}

// Hourly returns the first HourlyWindow samples unmodified apart from labelling.
func Hourly(samples []Sample, labeler Labeler) []HourlySummary {
	n := min(HourlyWindow, len(samples))
	out := make([]HourlySummary, 0, n)
	for _, s := range samples[:n] {
		out = append(out, HourlySummary{
			TimeLabel:    labeler.Hour(s.Timestamp),
			TemperatureC: s.TemperatureC,
			Icon:         s.Icon,
			Description:  s.Description,
		})
	}
	return out
}

// Plurality returns the most frequent value. Ties go to the value seen first.
func Plurality(values []string) string {
	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
	}

	var (
		best      string
		bestCount int
	)
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
