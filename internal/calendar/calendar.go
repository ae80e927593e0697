// Package calendar holds the timezone and trading-day helpers used around
// the resampling core: zone resolution with an explicit UTC fallback,
// resolution-aware backdating that lands on weekdays, option expiry
// checks and IB-style duration strings.
package calendar

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"barflow/internal/resample"
)

// ResolveZone loads a timezone by IANA name. Empty means "no explicit
// zone" and returns nil.
func ResolveZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("calendar: unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// timestamp layouts accepted from text sources, zoned first.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
}

var nakedLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a source timestamp in two explicit steps: a
// zone-carrying layout is taken as-is; a layout without zone information
// is localized UTC. Integer values are Unix epoch (milliseconds when the
// magnitude says so, seconds otherwise). Anything else is an error.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range nakedLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromEpoch(n), nil
	}
	return time.Time{}, fmt.Errorf("calendar: unparseable timestamp %q", s)
}

// FromEpoch converts a Unix epoch value to UTC time, treating values of
// 1e12 and above as milliseconds.
func FromEpoch(n int64) time.Time {
	if n >= 1_000_000_000_000 {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}

// IsWeekday reports whether t falls Monday through Friday.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// PreviousWeekday returns the last Monday-to-Friday day strictly before t,
// keeping the time of day.
func PreviousWeekday(t time.Time) time.Time {
	d := t.AddDate(0, 0, -1)
	for !IsWeekday(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// Backdate subtracts one resolution worth of time from t and rolls the
// result back to the nearest weekday. Tick resolutions back off by
// microseconds, volume resolutions by hours (a coarse proxy for how long
// the volume takes to print).
func Backdate(resolution string, t time.Time) (time.Time, error) {
	res, err := resample.ParseResolution(resolution)
	if err != nil {
		return time.Time{}, err
	}
	var d time.Duration
	switch res.Unit {
	case resample.UnitTicks:
		d = time.Duration(res.Period) * time.Microsecond
	case resample.UnitVolume:
		d = time.Duration(res.Period) * time.Hour
	default:
		d = res.Duration()
	}
	out := t.Add(-d)
	for !IsWeekday(out) {
		out = out.AddDate(0, 0, -1)
	}
	return out, nil
}

// IsThirdFriday reports whether t is the de-facto monthly option expiry:
// the third Friday, or the Thursday evening before it.
func IsThirdFriday(t time.Time) bool {
	defactoFriday := t.Weekday() == time.Friday ||
		(t.Weekday() == time.Thursday && t.Hour() >= 17)
	return defactoFriday && t.Day() > 14 && t.Day() < 22
}

// AfterThirdFriday reports whether t is past the month's third Friday
// 16:00 cutoff.
func AfterThirdFriday(t time.Time) bool {
	cutoff := thirdFriday(t.Year(), t.Month(), t.Location())
	return t.After(cutoff)
}

func thirdFriday(year int, month time.Month, loc *time.Location) time.Time {
	d := time.Date(year, month, 1, 16, 0, 0, 0, loc)
	for d.Weekday() != time.Friday {
		d = d.AddDate(0, 0, 1)
	}
	return d.AddDate(0, 0, 14)
}

// IBDuration formats the span between start and now as an IB-compatible
// duration string for historical data requests. Empty when the span is
// negative or under a minute.
func IBDuration(start, now time.Time) string {
	diff := now.Sub(start)
	if diff < time.Minute {
		return ""
	}
	days := int(diff.Hours() / 24)
	secs := int(diff.Seconds()) - days*86400
	switch {
	case days == 0:
		return fmt.Sprintf("%d S", secs+3600)
	case days < 31:
		return fmt.Sprintf("%d D", days)
	case days < 365:
		return fmt.Sprintf("%d M", int(math.Ceil(float64(days)/30)))
	}
	return fmt.Sprintf("%d Y", int(math.Ceil(float64(days)/365)))
}
