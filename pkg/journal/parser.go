package journal

import (
	"regexp"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"

	"tableflip.dev/jrnl/pkg/dates"
	"tableflip.dev/jrnl/pkg/entry"
)

// DateParser resolves the date fragment of an entry marker.
type DateParser interface {
	Parse(text string, opts ...dates.Option) (time.Time, bool)
}

// dateBlob is an entry marker: "[<date>] " at the start of the text or of a line.
var dateBlob = regexp.MustCompile(`(?:^|\n)\[([^\]]+)\] `)

// Parse splits journal text into entries. A marker only opens an entry when
// its fragment resolves to a date; otherwise it stays part of the body.
// Text without any marker yields no entries.
func Parse(text string, dp DateParser) []*entry.Entry {
	entries := make([]*entry.Entry, 0)
	last := 0
	for _, m := range dateBlob.FindAllStringSubmatchIndex(text, -1) {
		date, ok := dp.Parse(text[m[2]:m[3]])
		if !ok {
			continue
		}
		if len(entries) > 0 {
			entries[len(entries)-1].Text = text[last:m[0]]
		}
		last = m[1]
		entries = append(entries, &entry.Entry{Date: date})
	}
	if len(entries) > 0 {
		entries[len(entries)-1].Text = text[last:]
	}

	for _, e := range entries {
		e.DetectStar()
	}
	return entries
}

// ParseLegacy reads the fixed-width format where every entry starts with a
// date written in timeformat, a separator, and the title. Lines that do not
// start with a date continue the current entry; lines before the first
// entry are dropped.
func ParseLegacy(text, timeformat string, now time.Time) []*entry.Entry {
	width := len(timefmt.Format(now, timeformat))

	entries := make([]*entry.Entry, 0)
	var current *entry.Entry
	for _, line := range strings.Split(strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n"), "\n") {
		line = strings.TrimRight(line, " \t\r")
		if date, ok := legacyDate(line, width, timeformat); ok {
			if current != nil {
				entries = append(entries, current)
			}
			rest := ""
			if len(line) > width {
				rest = line[width+1:]
			}
			starred := false
			if strings.HasSuffix(rest, "*") {
				starred = true
				rest = strings.TrimRight(rest[:len(rest)-1], " ")
			}
			current = &entry.Entry{Date: date, Text: rest + "\n", Starred: starred}
			continue
		}
		if current != nil {
			current.Text += line + "\n"
		}
	}
	if current != nil {
		entries = append(entries, current)
	}

	for _, e := range entries {
		e.DetectStar()
	}
	return entries
}

func legacyDate(line string, width int, timeformat string) (time.Time, bool) {
	if len(line) < width {
		return time.Time{}, false
	}
	date, err := timefmt.ParseInLocation(line[:width], timeformat, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
