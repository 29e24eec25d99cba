package calendar

import (
	"errors"
	"strings"
	"testing"
	"time"

	cderrors "countdown/internal/errors"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{in: "21-3-2133", want: New(2133, time.March, 21)},
		{in: "01-01-2020", want: New(2020, time.January, 1)},
		{in: "29-02-2024", want: New(2024, time.February, 29)},
		{in: "29-2-2000", want: New(2000, time.February, 29)},
		{in: "31-12-1999", want: New(1999, time.December, 31)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("parse %q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestParseDateRejectsInvalid(t *testing.T) {
	inputs := []string{
		"",
		"31-02-2025",
		"29-02-2025",
		"29-02-1900",
		"31-04-2030",
		"0-1-2030",
		"1-13-2030",
		"1-0-2030",
		"10-06-30",
		"10/06/2030",
		"10-06-2030-1",
		"+1-06-2030",
		"a-06-2030",
		"10-06-20300",
		"2030-06-10",
	}
	for _, in := range inputs {
		_, err := ParseDate(in)
		if err == nil {
			t.Fatalf("expected error for %q", in)
		}
		if !errors.Is(err, cderrors.ErrInvalidArgument) {
			t.Fatalf("expected invalid argument for %q, got %v", in, err)
		}
	}
}

func TestParseDateRejectsYearZero(t *testing.T) {
	_, err := ParseDate("1-1-0000")
	if !errors.Is(err, cderrors.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if !strings.Contains(err.Error(), "year must be at least 1") {
		t.Fatalf("expected year bound message, got %q", err.Error())
	}
}

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{1900: false, 2000: true, 2024: true, 2025: false, 2100: false, 2400: true}
	for year, want := range cases {
		if got := IsLeapYear(year); got != want {
			t.Fatalf("year %d: expected leap=%v, got %v", year, want, got)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	now := New(2030, time.June, 1)
	if got := now.DaysUntil(New(2030, time.June, 10)); got != 9 {
		t.Fatalf("expected 9 days, got %d", got)
	}
	if got := now.DaysUntil(now); got != 0 {
		t.Fatalf("expected 0 days, got %d", got)
	}
	if got := now.DaysUntil(New(2030, time.May, 31)); got != -1 {
		t.Fatalf("expected -1 days, got %d", got)
	}
	if got := New(2024, time.February, 28).DaysUntil(New(2024, time.March, 1)); got != 2 {
		t.Fatalf("expected 2 days across leap day, got %d", got)
	}
}

func TestFromTimeIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("test", -7*60*60)
	late := time.Date(2030, time.June, 1, 23, 59, 0, 0, loc)
	if got := FromTime(late); got != New(2030, time.June, 1) {
		t.Fatalf("expected local calendar day, got %v", got)
	}
}

func TestDateString(t *testing.T) {
	if got := New(2133, time.March, 21).String(); got != "21-03-2133" {
		t.Fatalf("expected 21-03-2133, got %q", got)
	}
}
