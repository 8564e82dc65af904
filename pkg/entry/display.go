package entry

import (
	"strings"
	"unicode/utf8"

	"github.com/itchyny/timefmt-go"
	"github.com/muesli/reflow/wordwrap"
)

// DefaultTimeformat is the strftime layout dates are written with.
const DefaultTimeformat = "%Y-%m-%d %H:%M"

// Render returns the entry the way it is written to a journal file:
//
//	[<date>] <title>[ *]
//	<body>
func (e *Entry) Render(timeformat string) string {
	if timeformat == "" {
		timeformat = DefaultTimeformat
	}
	title := "[" + timefmt.Format(e.Date, timeformat) + "] " + strings.TrimRight(e.Title(), "\n ")
	if e.Starred {
		title += " *"
	}
	body := strings.TrimRight(e.Body(), "\n ")
	sep := ""
	if body != "" {
		sep = "\n"
	}
	return title + sep + body + "\n"
}

// Format controls how Pretty lays an entry out for reading.
type Format struct {
	Timeformat string
	Short      bool
	Linewrap   int
	Indent     string
}

// Pretty renders the entry for the terminal. Short prints the date and
// title only; otherwise the title is wrapped at Linewrap and body lines are
// wrapped and prefixed with the indent character.
func (e *Entry) Pretty(f Format) string {
	if f.Timeformat == "" {
		f.Timeformat = DefaultTimeformat
	}
	indent := ""
	if f.Indent != "" {
		indent = strings.TrimRight(f.Indent, " ") + " "
	}

	date := timefmt.Format(e.Date, f.Timeformat)
	title := date + " " + strings.TrimRight(e.Title(), "\n ")
	if f.Short {
		return title
	}

	body := strings.TrimRight(e.Body(), " \n")
	if f.Linewrap > 0 {
		title = wrapTitle(date, strings.TrimRight(e.Title(), "\n "), f.Linewrap)
		lines := strings.Split(body, "\n")
		for i, line := range lines {
			lines[i] = wrapIndented(line, f.Linewrap, indent)
		}
		body = strings.Join(lines, "\n")
	}

	if strings.TrimSpace(e.Body()) == "" {
		return title + "\n"
	}
	return title + "\n" + body + "\n"
}

// wrapTitle wraps the title after the date, which is never split.
func wrapTitle(date, title string, width int) string {
	placeholder := strings.Repeat("x", utf8.RuneCountInString(date))
	wrapped := wordwrap.String(placeholder+" "+title, width)
	return date + strings.TrimPrefix(wrapped, placeholder)
}

func wrapIndented(line string, width int, indent string) string {
	if strings.TrimSpace(line) == "" {
		return indent
	}
	limit := width - len(indent)
	if limit < 1 {
		limit = 1
	}
	wrapped := strings.Split(wordwrap.String(strings.TrimSpace(line), limit), "\n")
	for i, w := range wrapped {
		wrapped[i] = indent + strings.TrimRight(w, " ")
	}
	return strings.Join(wrapped, "\n")
}
