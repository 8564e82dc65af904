package dates

import (
	"testing"
	"time"
)

var fixedNow = time.Date(2020, time.June, 15, 12, 30, 0, 0, time.Local)

func newTestParser(timeformat string) *Parser {
	p := New(timeformat)
	p.Now = func() time.Time { return fixedNow }
	return p
}

func at(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.Local)
}

func TestParse(t *testing.T) {
	p := newTestParser("%Y-%m-%d %H:%M")

	tests := []struct {
		name string
		text string
		opts []Option
		want time.Time
	}{
		{"journal format", "2020-01-05 14:20", nil, at(2020, 1, 5, 14, 20, 0)},
		{"day with default time", "2020-01-05", []Option{DefaultTime(9, 0)}, at(2020, 1, 5, 9, 0, 0)},
		{"day inclusive", "2020-01-05", []Option{Inclusive()}, at(2020, 1, 5, 23, 59, 59)},
		{"month", "2020-01", nil, at(2020, 1, 1, 0, 0, 0)},
		{"month inclusive", "2020-01", []Option{Inclusive()}, at(2020, 1, 31, 23, 59, 59)},
		{"leap february inclusive", "2020-02", []Option{Inclusive()}, at(2020, 2, 29, 23, 59, 59)},
		{"year inclusive", "2019", []Option{Inclusive()}, at(2019, 12, 31, 23, 59, 59)},
		{"month name", "March 2019", nil, at(2019, 3, 1, 0, 0, 0)},
		{"now", "now", nil, fixedNow},
		{"today", "Today", []Option{DefaultTime(9, 0)}, at(2020, 6, 15, 9, 0, 0)},
		{"yesterday inclusive", "yesterday", []Option{Inclusive()}, at(2020, 6, 14, 23, 59, 59)},
		{"window ago", "3 days ago", []Option{DefaultTime(9, 0)}, at(2020, 6, 12, 9, 0, 0)},
		{"compact window ago", "1w2d ago", []Option{Inclusive()}, at(2020, 6, 6, 23, 59, 59)},
		{"article window ago", "a week ago", nil, at(2020, 6, 8, 0, 0, 0)},
		{"month window ago", "two months ago", nil, at(2020, 4, 15, 0, 0, 0)},
		{"clock window ago", "an hour ago", nil, fixedNow.Add(-time.Hour)},
		{"in window", "in 2h", nil, fixedNow.Add(2 * time.Hour)},
		{"no year in the past", "Jan 5", nil, at(2020, 1, 5, 0, 0, 0)},
		{"no year in the future", "Dec 25", nil, at(2019, 12, 25, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Parse(tt.text, tt.opts...)
			if !ok {
				t.Fatalf("expected %q to parse", tt.text)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseNaturalLanguage(t *testing.T) {
	p := newTestParser("%Y-%m-%d %H:%M")

	tests := []struct {
		name string
		text string
		opts []Option
		want time.Time
	}{
		{"weekday with default time", "last friday", []Option{DefaultTime(9, 0)}, at(2020, 6, 12, 9, 0, 0)},
		{"weekday inclusive", "last friday", []Option{Inclusive()}, at(2020, 6, 12, 23, 59, 59)},
		{"bare weekday is in the past", "friday", []Option{DefaultTime(9, 0)}, at(2020, 6, 12, 9, 0, 0)},
		{"bare weekday today", "monday", []Option{DefaultTime(9, 0)}, at(2020, 6, 15, 9, 0, 0)},
		{"next weekday stays ahead", "next friday", []Option{DefaultTime(9, 0)}, at(2020, 6, 19, 9, 0, 0)},
		{"explicit time kept", "last friday at 6pm", []Option{DefaultTime(9, 0), Inclusive()}, at(2020, 6, 12, 18, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Parse(tt.text, tt.opts...)
			if !ok {
				t.Fatalf("expected %q to parse", tt.text)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	p := newTestParser("%Y-%m-%d %H:%M")
	for _, text := range []string{"", "   ", "meeting @bob", "not a date", "x", "todo list"} {
		if got, ok := p.Parse(text); ok {
			t.Fatalf("expected %q to be rejected, got %v", text, got)
		}
	}
}

func TestParseCustomTimeformat(t *testing.T) {
	p := newTestParser("%d.%m.%Y")
	got, ok := p.Parse("05.01.2020", DefaultTime(8, 15))
	if !ok {
		t.Fatalf("expected custom format to parse")
	}
	if want := at(2020, 1, 5, 8, 15, 0); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseWindowComposite(t *testing.T) {
	tests := []struct {
		in   string
		want Window
	}{
		{"1w2d6h30m", Window{Days: 9, Clock: 6*time.Hour + 30*time.Minute}},
		{"3 days", Window{Days: 3}},
		{"a week", Window{Days: 7}},
		{"an hour and 5 mins", Window{Clock: time.Hour + 5*time.Minute}},
		{"a couple of weeks", Window{Days: 14}},
		{"1 year, 2 months", Window{Years: 1, Months: 2}},
	}
	for _, tt := range tests {
		got, err := ParseWindow(tt.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("%q: expected %+v, got %+v", tt.in, tt.want, got)
		}
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"", "noop", "3 fortnights", "0 days"} {
		if _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
