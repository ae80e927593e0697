package calendar

import (
	"testing"
	"time"
)

func TestParseTimestampZoned(t *testing.T) {
	got, err := ParseTimestamp("2024-06-03T10:00:00+02:00")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	want := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want instant %v", got, want)
	}
}

func TestParseTimestampNakedLocalizesUTC(t *testing.T) {
	got, err := ParseTimestamp("2024-06-03 10:00:00")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	want := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Errorf("got %v in %v, want %v UTC", got, got.Location(), want)
	}
}

func TestParseTimestampEpoch(t *testing.T) {
	want := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	got, err := ParseTimestamp("1717408800000") // milliseconds
	if err != nil {
		t.Fatalf("ParseTimestamp(ms): %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("ms: got %v, want %v", got, want)
	}
	got, err = ParseTimestamp("1717408800") // seconds
	if err != nil {
		t.Fatalf("ParseTimestamp(s): %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("s: got %v, want %v", got, want)
	}
}

func TestParseTimestampGarbage(t *testing.T) {
	if _, err := ParseTimestamp("not-a-time"); err == nil {
		t.Error("want error for garbage input")
	}
}

func TestResolveZone(t *testing.T) {
	loc, err := ResolveZone("")
	if err != nil || loc != nil {
		t.Errorf("empty zone: got %v, %v", loc, err)
	}
	if _, err := ResolveZone("Mars/Olympus"); err == nil {
		t.Error("want error for unknown zone")
	}
	loc, err = ResolveZone("UTC")
	if err != nil || loc == nil {
		t.Errorf("UTC: got %v, %v", loc, err)
	}
}

func TestPreviousWeekday(t *testing.T) {
	monday := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	got := PreviousWeekday(monday)
	if got.Weekday() != time.Friday || got.Day() != 31 {
		t.Errorf("got %v, want Friday May 31", got)
	}
	wednesday := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)
	if got := PreviousWeekday(wednesday); got.Weekday() != time.Tuesday {
		t.Errorf("got %v, want Tuesday", got)
	}
}

func TestBackdateLandsOnWeekday(t *testing.T) {
	// Monday minus one day is Sunday; it must roll back to Friday
	monday := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	got, err := Backdate("1D", monday)
	if err != nil {
		t.Fatalf("Backdate: %v", err)
	}
	if got.Weekday() != time.Friday {
		t.Errorf("got %v (%v), want a Friday", got, got.Weekday())
	}
	if _, err := Backdate("XYZ", monday); err == nil {
		t.Error("want error for bad resolution")
	}
}

func TestThirdFriday(t *testing.T) {
	expiry := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC) // third Friday
	if !IsThirdFriday(expiry) {
		t.Error("2024-06-21 should be a third Friday")
	}
	if IsThirdFriday(time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)) {
		t.Error("2024-06-14 is the second Friday")
	}
	if !AfterThirdFriday(time.Date(2024, 6, 28, 12, 0, 0, 0, time.UTC)) {
		t.Error("2024-06-28 is after the third Friday")
	}
	if AfterThirdFriday(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Error("2024-06-01 is before the third Friday")
	}
}

func TestIBDuration(t *testing.T) {
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		start time.Time
		want  string
	}{
		{now.Add(-30 * time.Second), ""},
		{now.Add(-2 * time.Hour), "10800 S"},
		{now.AddDate(0, 0, -5), "5 D"},
		{now.AddDate(0, 0, -60), "2 M"},
		{now.AddDate(0, 0, -400), "2 Y"},
	}
	for _, c := range cases {
		if got := IBDuration(c.start, now); got != c.want {
			t.Errorf("IBDuration(%v) = %q, want %q", c.start, got, c.want)
		}
	}
}
