package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Window is a relative span such as "3 days", "a week" or "1w2d6h".
// Calendar parts move by calendar arithmetic; Clock is added as a duration.
type Window struct {
	Years, Months, Days int
	Clock               time.Duration
}

type windowUnit struct {
	years, months, days int
	clock               time.Duration
}

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+|[a-z]+)\s*([a-z]+)`)

	counts = map[string]int{
		"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11,
		"twelve": 12,
	}

	windowPhrases = strings.NewReplacer("a couple of ", "2 ", "couple of ", "2 ", "a few ", "3 ", " and ", " ")

	windowUnits = map[string]windowUnit{
		"s":      {clock: time.Second},
		"sec":    {clock: time.Second},
		"second": {clock: time.Second},
		"m":      {clock: time.Minute},
		"min":    {clock: time.Minute},
		"minute": {clock: time.Minute},
		"h":      {clock: time.Hour},
		"hr":     {clock: time.Hour},
		"hour":   {clock: time.Hour},
		"d":      {days: 1},
		"day":    {days: 1},
		"w":      {days: 7},
		"wk":     {days: 7},
		"week":   {days: 7},
		"mo":     {months: 1},
		"month":  {months: 1},
		"y":      {years: 1},
		"yr":     {years: 1},
		"year":   {years: 1},
	}
)

func lookupUnit(name string) (windowUnit, bool) {
	if u, ok := windowUnits[name]; ok {
		return u, true
	}
	// Plurals: "days", "hrs", "mins".
	if trimmed, ok := strings.CutSuffix(name, "s"); ok {
		u, ok := windowUnits[trimmed]
		return u, ok
	}
	return windowUnit{}, false
}

func parseCount(s string) (int, error) {
	if n, ok := counts[s]; ok {
		return n, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid window count %q", s)
	}
	return n, nil
}

// ParseWindow parses a relative span such as "1w", "3 days", "an hour",
// "a couple of weeks" or "1w2d6h".
func ParseWindow(input string) (Window, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return Window{}, fmt.Errorf("empty window")
	}

	remaining = windowPhrases.Replace(remaining)

	w := Window{}
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Window{}, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		n, err := parseCount(matches[1])
		if err != nil {
			return Window{}, err
		}
		u, ok := lookupUnit(matches[2])
		if !ok {
			return Window{}, fmt.Errorf("unsupported window unit %q", matches[2])
		}
		w.Years += n * u.years
		w.Months += n * u.months
		w.Days += n * u.days
		w.Clock += time.Duration(n) * u.clock

		remaining = strings.TrimLeft(remaining[len(matches[0]):], " ,")
	}

	if w.IsZero() {
		return Window{}, fmt.Errorf("window must be greater than zero")
	}
	return w, nil
}

// IsZero reports whether the window spans nothing.
func (w Window) IsZero() bool {
	return w.Years <= 0 && w.Months <= 0 && w.Days <= 0 && w.Clock <= 0
}

// Before returns t moved back by the window.
func (w Window) Before(t time.Time) time.Time {
	return t.AddDate(-w.Years, -w.Months, -w.Days).Add(-w.Clock)
}

// After returns t moved forward by the window.
func (w Window) After(t time.Time) time.Time {
	return t.AddDate(w.Years, w.Months, w.Days).Add(w.Clock)
}

func (w Window) granularity() granularity {
	if w.Clock != 0 {
		return granTime
	}
	return granDay
}
