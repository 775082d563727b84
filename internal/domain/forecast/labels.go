package forecast

import "time"

const (
	dayLabelLayout  = "Mon"
	hourLabelLayout = "3 PM"
)

// Labeler renders sample timestamps as the short labels shown on the dashboard.
// Labels use a fixed English locale; only the zone varies.
type Labeler struct {
	loc *time.Location
}

// NewLabeler returns a labeler for the given zone; nil means UTC.
func NewLabeler(loc *time.Location) Labeler {
	if loc == nil {
		loc = time.UTC
	}
	return Labeler{loc: loc}
}

// OffsetLabeler labels in a fixed offset, as reported by the provider's city block.
func OffsetLabeler(offsetSeconds int) Labeler {
	if offsetSeconds == 0 {
		return NewLabeler(time.UTC)
	}
	return NewLabeler(time.FixedZone("", offsetSeconds))
}

// Day returns the weekday abbreviation, e.g. "Tue".
func (l Labeler) Day(ts int64) string {
	return l.time(ts).Format(dayLabelLayout)
}

// Hour returns a 12-hour clock label, e.g. "3 PM".
func (l Labeler) Hour(ts int64) string {
	return l.time(ts).Format(hourLabelLayout)
}

func (l Labeler) time(ts int64) time.Time {
	loc := l.loc
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(ts, 0).In(loc)
}
