package resample

import (
	"strconv"
	"strings"
	"time"
)

// Unit is a bucketing policy unit.
type Unit int

const (
	UnitTicks Unit = iota
	UnitVolume
	UnitSeconds
	UnitMinutes
	UnitHours
	UnitDays
	UnitWeeks
)

var unitNames = map[Unit]string{
	UnitTicks:   "ticks",
	UnitVolume:  "volume",
	UnitSeconds: "seconds",
	UnitMinutes: "minutes",
	UnitHours:   "hours",
	UnitDays:    "days",
	UnitWeeks:   "weeks",
}

func (u Unit) String() string { return unitNames[u] }

var unitLetters = map[rune]Unit{
	'K': UnitTicks,
	'V': UnitVolume,
	'S': UnitSeconds,
	'T': UnitMinutes,
	'H': UnitHours,
	'D': UnitDays,
	'W': UnitWeeks,
}

// Resolution is a parsed bucketing policy: an integer period of one unit.
type Resolution struct {
	Period int
	Unit   Unit
}

// ParseResolution parses strings like "3K", "500V", "30S", "1T", "4H",
// "1D", "1W": digits form the period, the first recognized letter picks
// the unit. Anything else is a *ConfigError.
func ParseResolution(s string) (Resolution, error) {
	var digits strings.Builder
	unit := Unit(-1)
	for _, c := range s {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
			continue
		}
		if u, ok := unitLetters[c]; ok && unit < 0 {
			unit = u
		}
	}
	if unit < 0 {
		return Resolution{}, &ConfigError{Resolution: s, Reason: "unrecognized unit"}
	}
	if digits.Len() == 0 {
		return Resolution{}, &ConfigError{Resolution: s, Reason: "missing period"}
	}
	period, err := strconv.Atoi(digits.String())
	if err != nil || period < 1 {
		return Resolution{}, &ConfigError{Resolution: s, Reason: "period must be a positive integer"}
	}
	return Resolution{Period: period, Unit: unit}, nil
}

// IsCount reports whether the resolution buckets by event count rather
// than calendar time.
func (r Resolution) IsCount() bool {
	return r.Unit == UnitTicks || r.Unit == UnitVolume
}

// Duration returns the calendar length of one bucket. Zero for count units.
func (r Resolution) Duration() time.Duration {
	p := time.Duration(r.Period)
	switch r.Unit {
	case UnitSeconds:
		return p * time.Second
	case UnitMinutes:
		return p * time.Minute
	case UnitHours:
		return p * time.Hour
	case UnitDays:
		return p * 24 * time.Hour
	case UnitWeeks:
		return p * 7 * 24 * time.Hour
	}
	return 0
}
