// Package dates resolves free-text date fragments ("yesterday", "2020-01",
// "3 days ago", "last friday at 6pm") to naive local times.
package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

type granularity int

const (
	granYear granularity = iota
	granMonth
	granDay
	granTime
)

type layout struct {
	value  string
	gran   granularity
	noYear bool
}

// Ordered most specific first.
var layouts = []layout{
	{value: "2006-01-02 15:04:05", gran: granTime},
	{value: "2006-01-02 15:04", gran: granTime},
	{value: "2006-01-02T15:04:05", gran: granTime},
	{value: "2006-01-02T15:04", gran: granTime},
	{value: time.RFC3339, gran: granTime},
	{value: "2006/01/02 15:04", gran: granTime},
	{value: "Jan 2 2006 15:04", gran: granTime},
	{value: "January 2 2006 15:04", gran: granTime},
	{value: "2006-01-02", gran: granDay},
	{value: "2006/01/02", gran: granDay},
	{value: "01/02/2006", gran: granDay},
	{value: "1/2/2006", gran: granDay},
	{value: "Jan 2 2006", gran: granDay},
	{value: "Jan 2, 2006", gran: granDay},
	{value: "January 2 2006", gran: granDay},
	{value: "January 2, 2006", gran: granDay},
	{value: "2 Jan 2006", gran: granDay},
	{value: "2 January 2006", gran: granDay},
	{value: "2006-01", gran: granMonth},
	{value: "2006/01", gran: granMonth},
	{value: "Jan 2006", gran: granMonth},
	{value: "January 2006", gran: granMonth},
	{value: "2006", gran: granYear},
	{value: "Jan 2", gran: granDay, noYear: true},
	{value: "January 2", gran: granDay, noYear: true},
	{value: "2 Jan", gran: granDay, noYear: true},
	{value: "2 January", gran: granDay, noYear: true},
	{value: "01/02", gran: granDay, noYear: true},
	{value: "1/2", gran: granDay, noYear: true},
}

// Parser resolves date fragments. The zero value is usable and reads the
// wall clock.
type Parser struct {
	// Timeformat is the strftime layout of the journal, tried first.
	Timeformat string
	// Now returns the reference time; nil means time.Now.
	Now func() time.Time

	rules *when.Parser
}

// New returns a Parser that also understands the given strftime layout.
func New(timeformat string) *Parser {
	return &Parser{Timeformat: timeformat}
}

type options struct {
	hour, minute int
	inclusive    bool
}

// Option tunes a single Parse call.
type Option func(*options)

// DefaultTime sets the time of day used when the fragment names a day only.
func DefaultTime(hour, minute int) Option {
	return func(o *options) {
		o.hour = hour
		o.minute = minute
	}
}

// Inclusive resolves a fragment to the end of the period it names, so
// "2020-01" becomes the last second of January 2020.
func Inclusive() Option {
	return func(o *options) {
		o.inclusive = true
	}
}

func (p *Parser) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Parse resolves text to a date. It reports false when the fragment is not
// a date; it never fails otherwise.
func (p *Parser) Parse(text string, opts ...Option) (time.Time, bool) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	now := p.now()

	if t, g, ok := p.absolute(text, now); ok {
		return fill(t, g, o), true
	}
	if t, g, ok := casual(strings.ToLower(text), now); ok {
		return fill(t, g, o), true
	}
	if t, g, ok := p.naturalLanguage(text, now); ok {
		return fill(t, g, o), true
	}
	return time.Time{}, false
}

func (p *Parser) absolute(text string, now time.Time) (time.Time, granularity, bool) {
	if p.Timeformat != "" {
		if t, err := timefmt.ParseInLocation(text, p.Timeformat, time.Local); err == nil {
			return t, formatGranularity(p.Timeformat), true
		}
	}
	for _, l := range layouts {
		t, err := time.ParseInLocation(l.value, text, time.Local)
		if err != nil {
			continue
		}
		if l.noYear {
			t = time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
			// A day without a year that lies ahead of us meant last year.
			if t.After(now) {
				t = t.AddDate(-1, 0, 0)
			}
		}
		return t, l.gran, true
	}
	return time.Time{}, 0, false
}

func formatGranularity(format string) granularity {
	for _, directive := range []string{"%H", "%I", "%M", "%R", "%T", "%c", "%k", "%l"} {
		if strings.Contains(format, directive) {
			return granTime
		}
	}
	for _, directive := range []string{"%d", "%e", "%j", "%F", "%D", "%x"} {
		if strings.Contains(format, directive) {
			return granDay
		}
	}
	if strings.Contains(format, "%m") || strings.Contains(format, "%b") || strings.Contains(format, "%B") {
		return granMonth
	}
	return granYear
}

func casual(text string, now time.Time) (time.Time, granularity, bool) {
	switch text {
	case "now", "right now":
		return now, granTime, true
	case "today":
		return now, granDay, true
	case "yesterday":
		return now.AddDate(0, 0, -1), granDay, true
	case "tomorrow":
		return now.AddDate(0, 0, 1), granDay, true
	}

	if rest, ok := strings.CutSuffix(text, " ago"); ok {
		if w, err := ParseWindow(rest); err == nil {
			return w.Before(now), w.granularity(), true
		}
	}
	if rest, ok := strings.CutPrefix(text, "in "); ok {
		if w, err := ParseWindow(rest); err == nil {
			return w.After(now), w.granularity(), true
		}
	}
	return time.Time{}, 0, false
}

var (
	bareWeekday = regexp.MustCompile(`^(?:on\s+)?(?:mon|tues?|wed(?:nes)?|thu(?:rs?)?|fri|sat(?:ur)?|sun)(?:day)?\.?$`)
	futureWords = regexp.MustCompile(`\b(?:next|this|in|tomorrow)\b`)
)

// naturalLanguage hands the fragment to the rule based parser and accepts
// the result only when the whole fragment was understood. A fragment that
// names no time of day resolves at day granularity.
func (p *Parser) naturalLanguage(text string, now time.Time) (time.Time, granularity, bool) {
	t, ok := p.natural(text, now)
	if !ok {
		return time.Time{}, 0, false
	}

	// Rules that name a time overwrite the reference clock, so a second
	// reference on the same day with another clock tells them apart.
	alt := time.Date(now.Year(), now.Month(), now.Day(), 3, 17, 41, 0, now.Location())
	if sameClock(alt, now) {
		alt = alt.Add(time.Hour)
	}
	other, ok := p.natural(text, alt)
	if !ok || !sameClock(t, now) || !sameClock(other, alt) {
		return t, granTime, true
	}

	if lower := strings.ToLower(text); dayAfter(t, now) && !futureWords.MatchString(lower) {
		if bareWeekday.MatchString(lower) {
			t = t.AddDate(0, 0, -7)
		} else {
			t = t.AddDate(-1, 0, 0)
		}
	}
	return t, granDay, true
}

func (p *Parser) natural(text string, ref time.Time) (time.Time, bool) {
	if p.rules == nil {
		p.rules = when.New(nil)
		p.rules.Add(en.All...)
		p.rules.Add(common.All...)
	}
	r, err := p.rules.Parse(text, ref)
	if err != nil || r == nil {
		return time.Time{}, false
	}
	if r.Index != 0 || len(strings.TrimSpace(r.Text)) != len(text) {
		return time.Time{}, false
	}
	return r.Time.In(time.Local), true
}

func sameClock(a, b time.Time) bool {
	return a.Hour() == b.Hour() && a.Minute() == b.Minute() && a.Second() == b.Second()
}

// dayAfter reports whether t falls on a later calendar day than now.
func dayAfter(t, now time.Time) bool {
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	return time.Date(ty, tm, td, 0, 0, 0, 0, time.Local).After(time.Date(ny, nm, nd, 0, 0, 0, 0, time.Local))
}

func fill(t time.Time, g granularity, o options) time.Time {
	y, m, d := t.Date()
	switch g {
	case granTime:
		return t
	case granYear:
		if o.inclusive {
			m, d = time.December, 31
		} else {
			m, d = time.January, 1
		}
	case granMonth:
		if o.inclusive {
			d = daysIn(y, m)
		} else {
			d = 1
		}
	}
	if o.inclusive {
		return time.Date(y, m, d, 23, 59, 59, 0, time.Local)
	}
	return time.Date(y, m, d, o.hour, o.minute, 0, 0, time.Local)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
